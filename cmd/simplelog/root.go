package main

import (
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/philipp01105/simplelog/logconf"
	"github.com/philipp01105/simplelog/logger"
)

var (
	cfgFile string
	envFile string
	v       = logconf.NewViper()
)

var rootCmd = &cobra.Command{
	Use:   "simplelog",
	Short: "Emit log records through a configured simplelog handler tree",
	Long: `simplelog reads a YAML/JSON/TOML logging configuration (plus SIMPLELOG_*
environment overrides and an optional .env file), installs it as the
process-wide logger and writes records through it.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default ./simplelog.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")
	rootCmd.PersistentFlags().String("level", "", "override the level of every sink")
	_ = v.BindPFlag("cli.level", rootCmd.PersistentFlags().Lookup("level"))

	rootCmd.AddCommand(emitCmd, serveCmd)
}

// setupLogger loads the configuration and installs the global logger.
func setupLogger(cmd *cobra.Command, _ []string) error {
	// a missing .env file is not an error
	_ = godotenv.Load(envFile)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", cfgFile)
		}
	} else {
		v.SetConfigName("simplelog")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return errors.Wrap(err, "read config")
			}
		}
	}

	settings, err := logconf.Load(v)
	if err != nil {
		return err
	}
	if level := v.GetString("cli.level"); level != "" {
		for i := range settings.Sinks {
			settings.Sinks[i].Level = level
		}
	}

	h, err := settings.Build()
	if err != nil {
		return err
	}
	return logger.Init(h)
}
