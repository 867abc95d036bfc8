package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

func New(cfg *Config) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "meridian <command> <subcommand> [flags]",
		Short:         "Geospatial Asset Register Service",
		Long:          "Register, inspect and export geolocated asset records.",
		SilenceErrors: true,
		SilenceUsage:  false,
		Example: heredoc.Doc(`
		$ meridian serve
		$ meridian asset list
		$ meridian quality issues
		$ meridian export csv
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'meridian <command> --help' for info about a command.
			`),
			"help:feedback": heredoc.Doc(`
				Open an issue here https://github.com/meridianhq/meridian/issues
			`),
		},
	}

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		configCommand(cfg),
		assetsCommand(cfg),
		qualityCommand(cfg),
		exportCommand(cfg),
		versionCommand(),
	)

	// Help topics
	rootCmd.AddCommand(cmdx.SetCompletionCmd("meridian"))
	rootCmd.AddCommand(cmdx.SetRefCmd(rootCmd))
	rootCmd.AddCommand(cmdx.SetHelpTopicCmd("environment", envHelp))
	cmdx.SetHelp(rootCmd)

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Override config file")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfgFile, _ := cmd.Flags().GetString(configFlag); cfgFile != "" {
			if err := LoadConfigFromFlag(cfgFile, cfg); err != nil {
				return err
			}
		}
		if cfg.Client.IdentityHeaderKey == "" {
			cfg.Client.IdentityHeaderKey = cfg.Service.Identity.HeaderKey
		}
		return nil
	}

	return rootCmd
}

var envHelp = map[string]string{
	"short": "List of supported environment variables",
	"long": heredoc.Doc(`
		Every config entry can be overridden through the environment using
		the MERIDIAN prefix, with dots replaced by underscores.

		MERIDIAN_LOG_LEVEL:          logging level (default "info")
		MERIDIAN_SERVICE_HOST:       network interface to bind to
		MERIDIAN_SERVICE_PORT:       port to listen on
		MERIDIAN_STORAGE_PROVIDER:   one of inmemory, postgres, mongodb
		MERIDIAN_DB_HOST:            postgres host
		MERIDIAN_MONGO_URI:          mongodb connection string
		MERIDIAN_CLIENT_HOST:        server url used by client commands
	`),
}
