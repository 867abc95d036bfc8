package metrics

import (
	"github.com/gorilla/mux"
	"github.com/newrelic/go-agent/v3/integrations/nrgorilla"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// NewRelicConfig represents configuration options for the newrelic agent.
type NewRelicConfig struct {
	Enabled    bool   `yaml:"enabled" mapstructure:"enabled" default:"false"`
	AppName    string `yaml:"appname" mapstructure:"appname" default:"meridian"`
	LicenseKey string `yaml:"licensekey" mapstructure:"licensekey" default:""`
}

type NewRelicMonitor struct {
	app *newrelic.Application
}

func NewNewRelicMonitor(app *newrelic.Application) *NewRelicMonitor {
	return &NewRelicMonitor{
		app: app,
	}
}

func (mon *NewRelicMonitor) MonitorRouter(router *mux.Router) {
	router.Use(nrgorilla.Middleware(mon.app))

	// below handlers still have to be manually wrapped by newrelic core library
	_, router.NotFoundHandler = newrelic.WrapHandle(mon.app, "NotFoundHandler", router.NotFoundHandler)
	_, router.MethodNotAllowedHandler = newrelic.WrapHandle(mon.app, "MethodNotAllowedHandler", router.MethodNotAllowedHandler)
}
