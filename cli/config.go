package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/goto/salt/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/meridianhq/meridian/identity"
	"github.com/meridianhq/meridian/internal/client"
	"github.com/meridianhq/meridian/metrics"
	"github.com/meridianhq/meridian/store/mongodb"
	"github.com/meridianhq/meridian/store/postgres"
)

const configFlag = "config"

func configCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage server and client configurations",
		Example: heredoc.Doc(`
			$ meridian config init
			$ meridian config list`),
	}

	cmd.AddCommand(configInitCommand())
	cmd.AddCommand(configListCommand(cfg))

	return cmd
}

func configInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new server and client configuration",
		Example: heredoc.Doc(`
			$ meridian config init
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmdx.SetConfig("meridian")

			if err := cfg.Init(&Config{}); err != nil {
				return err
			}

			fmt.Printf("config created: %v\n", cfg.File())
			return nil
		},
	}
}

func configListCommand(cfg *Config) *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "list",
		Short: "List server and client configuration settings",
		Example: heredoc.Doc(`
			$ meridian config list
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = yaml.NewEncoder(os.Stdout).Encode(*cfg)
			return nil
		},
	}
	return cmd
}

// ServiceConfig holds the HTTP listen options together with the
// identity settings the middleware needs.
type ServiceConfig struct {
	Host string `yaml:"host" mapstructure:"host" default:"0.0.0.0"`
	Port int    `yaml:"port" mapstructure:"port" default:"8080"`

	// User Identity
	Identity identity.Config `mapstructure:"identity"`
}

func (cfg ServiceConfig) addr() string { return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port) }

// StorageConfig selects the asset repository backing the register.
type StorageConfig struct {
	Provider string `yaml:"provider" mapstructure:"provider" default:"inmemory"`
}

type Config struct {
	// Log
	LogLevel string `yaml:"log_level" mapstructure:"log_level" default:"info"`

	// StatsD
	StatsD metrics.StatsdConfig `mapstructure:"statsd"`

	// NewRelic
	NewRelic metrics.NewRelicConfig `mapstructure:"newrelic"`

	// Storage
	Storage StorageConfig `mapstructure:"storage"`

	// Database
	DB postgres.Config `mapstructure:"db"`

	// Mongo
	Mongo mongodb.Config `mapstructure:"mongo"`

	// Service
	Service ServiceConfig `mapstructure:"service"`

	// Client
	Client client.Config `mapstructure:"client"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := cmdx.SetConfig("meridian").Load(&cfg)
	if err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return LoadFromCurrentDir()
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadFromCurrentDir() (*Config, error) {
	var cfg Config
	var opts []config.LoaderOption

	opts = append(opts,
		config.WithPath("./"),
		config.WithName("meridian.yaml"),
		config.WithEnvKeyReplacer(".", "_"),
		config.WithEnvPrefix("MERIDIAN"),
	)

	if err := config.NewLoader(opts...).Load(&cfg); err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return &cfg, ErrConfigNotFound
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadConfigFromFlag(cfgFile string, cfg *Config) error {
	var opts []config.LoaderOption
	opts = append(opts, config.WithFile(cfgFile))

	return config.NewLoader(opts...).Load(cfg)
}
