package pkgconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetStringSlice(key string) []string
	GetDuration(key string) time.Duration
	Close() error
}

type Viper struct {
	v *viper.Viper
}

// NewViper reads the YAML file at path. Every key can be overridden by an
// environment variable named after the key with dots and dashes replaced by
// underscores, e.g. MODULES_AMVIAJES_STORAGE_DRIVER.
func NewViper(path string) (*Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return &Viper{v: v}, nil
}

func (c *Viper) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Viper) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Viper) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Viper) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

func (c *Viper) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

func (c *Viper) Close() error {
	return nil
}
