package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"propmeta/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "PROPMETA"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "propmeta",
		Short:   "Property metadata extraction and validation for task types",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newExtractCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newInspectCommand())
	return cmd
}

func newAppService() app.Service {
	return app.NewService()
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("propmeta")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/propmeta")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeFailedPrecondition:
		return 3
	case errbuilder.CodeNotFound:
		return 4
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
