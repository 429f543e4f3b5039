// SPDX-License-Identifier: MIT

// Command saju reads four-pillar charts from the command line: it lists a
// chart's interactions, derives a profile, scores single days and ranks the
// days of a window for an event.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pppaal/saju-astro-chat-sub036/internal/config"
	"github.com/pppaal/saju-astro-chat-sub036/internal/logging"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	cfg    config.Config
	loc    *time.Location
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "saju",
		Short: "Four-pillar chart relations, profiles and auspicious-day windows",
		Long: `saju works on four-pillar (사주) charts.

Settings come from saju.yaml (working directory or $HOME/.config/saju),
SAJU_* environment variables and flags, flags winning.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default saju.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().String("tz", "", "time zone for dates (default from config)")
	_ = a.v.BindPFlag("timezone", root.PersistentFlags().Lookup("tz"))

	root.AddCommand(
		newRelationsCmd(a),
		newChartCmd(a),
		newAnalyzeCmd(a),
		newWindowCmd(a),
		newEventsCmd(a),
	)
	return root
}

// init loads the configuration and builds the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, a.verbose, cfg.Log.Development)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg, a.loc, a.logger = cfg, loc, logger
	a.logger.Debug("configuration loaded",
		zap.String("file", a.v.ConfigFileUsed()),
		zap.String("timezone", cfg.Timezone),
	)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
