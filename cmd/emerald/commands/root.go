package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	cfg "github.com/1Money-Co/emerald/config"
	"github.com/1Money-Co/emerald/libs/log"
)

var (
	config = cfg.DefaultConfig()
	logger = log.NewLogger(os.Stdout, slog.LevelInfo)
)

func init() {
	RootCmd.PersistentFlags().String("home", defaultHome(), "directory for config and data")
}

func defaultHome() string {
	if home := os.Getenv("EMERALDHOME"); home != "" {
		return home
	}
	return os.ExpandEnv(filepath.Join("$HOME", ".emerald"))
}

// ConfigHome returns the node home directory from the environment or the
// --home flag.
func ConfigHome(cmd *cobra.Command) (string, error) {
	if home := os.Getenv("EMERALDHOME"); home != "" {
		return home, nil
	}
	return cmd.Flags().GetString("home")
}

// ParseConfig sets up the emerald root directory, ensures it exists, and
// loads the configuration from it.
func ParseConfig(cmd *cobra.Command) (*cfg.Config, error) {
	home, err := ConfigHome(cmd)
	if err != nil {
		return nil, err
	}

	cfg.EnsureRoot(home)
	conf, err := cfg.LoadConfig(home)
	if err != nil {
		return nil, fmt.Errorf("error in config file: %w", err)
	}
	return conf, nil
}

// RootCmd is the root command for emerald.
var RootCmd = &cobra.Command{
	Use:   "emerald",
	Short: "BFT consensus driver for an Ethereum execution layer",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
		if cmd.Name() == VersionCmd.Name() {
			return nil
		}

		config, err = ParseConfig(cmd)
		if err != nil {
			return err
		}

		level, err := log.ParseLevel(config.Log.Level)
		if err != nil {
			return err
		}
		if config.Log.Format == cfg.LogFormatJSON {
			logger = log.NewJSONLogger(os.Stdout, level)
		} else {
			logger = log.NewLogger(os.Stdout, level)
		}

		return nil
	},
}
