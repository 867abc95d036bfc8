package postgres

import (
	"net"
	"net/url"
	"strconv"
)

// Config represents the postgres connection options.
type Config struct {
	Host     string `yaml:"host" mapstructure:"host" default:"localhost"`
	Port     int    `yaml:"port" mapstructure:"port" default:"5432"`
	Name     string `yaml:"name" mapstructure:"name" default:"meridian"`
	User     string `yaml:"user" mapstructure:"user" default:"postgres"`
	Password string `yaml:"password" mapstructure:"password" default:""`
	SSLMode  string `yaml:"sslmode" mapstructure:"sslmode" default:"disable"`
}

// ConnectionURL assembles the postgres connection string.
func (c *Config) ConnectionURL() *url.URL {
	pgURL := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		User:   url.UserPassword(c.User, c.Password),
		Path:   c.Name,
	}
	q := pgURL.Query()
	q.Add("sslmode", c.SSLMode)
	pgURL.RawQuery = q.Encode()

	return pgURL
}
