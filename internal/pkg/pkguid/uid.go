package pkguid

import "github.com/google/uuid"

type StringID interface {
	Generate() string
}

type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (u *UUID) Generate() string {
	return uuid.NewString()
}

// Valid reports whether value is a canonical UUID string.
func Valid(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}
