// Package app wires configuration, the HTTP server and the enabled modules
// into one process.
package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/goamviajes/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkglog"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkguid"
)

type App struct {
	configPath string
	config     pkgconfig.Config
	uuid       pkguid.StringID
	router     *pkgrouter.Router
	httpServer *http.Server
	closerFn   map[string]func(context.Context) error
}

// New builds the application. An empty configPath uses /config/config.yaml,
// or ./config/config.yaml when LOCAL=true.
func New(configPath string) *App {
	app := &App{configPath: configPath}
	pkglog.InitLogging()
	app.initConfig()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()
	return app
}
