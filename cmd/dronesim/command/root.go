// Package command implements the dronesim command line.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/go-drones/logger"
)

const envPrefix = "DRONESIM"

// ErrInvalidFlag indicates a flag or config value out of its allowed set.
var ErrInvalidFlag = errors.New("invalid flag value")

// Commandline holds the state shared by the dronesim commands.
type Commandline struct {
	v       *viper.Viper
	log     logger.Logger
	output  string
	workers int
}

// NewCommand returns the root dronesim command.
func NewCommand() *cobra.Command {
	cl := &Commandline{v: viper.New(), log: logger.GetLogger()}

	cmd := &cobra.Command{
		Use:               "dronesim",
		Short:             "Schedule sword cleaning and item retrieval drones",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cl.configure,
	}
	cl.setupFlags(cmd)
	cmd.AddCommand(cl.swordsCommand(), cl.itemsCommand())

	return cmd
}

func (cl *Commandline) setupFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "config file (yaml, toml or json)")
	cmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	cmd.PersistentFlags().String("log-format", string(logger.FormatJSON), "log format: json or console")
	cmd.PersistentFlags().StringP("output", "o", outputPlain, "output format: plain or table")
	cmd.PersistentFlags().IntP("workers", "w", 4, "number of input files processed concurrently")

	_ = cl.v.BindPFlags(cmd.PersistentFlags())
	cl.v.SetEnvPrefix(envPrefix)
	cl.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cl.v.AutomaticEnv()
}

// configure loads the optional config file and applies logging and output
// settings. Flags take precedence over DRONESIM_* environment variables,
// which take precedence over the config file.
func (cl *Commandline) configure(cmd *cobra.Command, _ []string) error {
	if cfgFile := cl.v.GetString("config"); cfgFile != "" {
		cl.v.SetConfigFile(cfgFile)
		if err := cl.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	level, err := logger.ParseLevel(cl.v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFlag, err)
	}

	format := logger.Format(cl.v.GetString("log-format"))
	if format != logger.FormatJSON && format != logger.FormatConsole {
		return fmt.Errorf("%w: log-format %q", ErrInvalidFlag, format)
	}

	cl.output = cl.v.GetString("output")
	if cl.output != outputPlain && cl.output != outputTable {
		return fmt.Errorf("%w: output %q", ErrInvalidFlag, cl.output)
	}

	cl.workers = cl.v.GetInt("workers")
	if cl.workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidFlag, cl.workers)
	}

	cl.log = logger.New(logger.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})
	logger.SetDefault(cl.log)

	return nil
}
