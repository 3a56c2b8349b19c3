// Package cli implements the tabbar demo command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xqrs/tabbar"
	"github.com/xqrs/tabbar/internal/logging"
)

var (
	version = "v0.1.0"
	commit  = ""
	date    = ""
)

// terminalItemWidth is the item width in columns when the config leaves it
// unset. The library default is sized for pixels.
const terminalItemWidth = 14

type rootOptions struct {
	configPath string
	items      int
	itemWidth  float64
	infinite   bool
	animated   bool
	logFile    string
	logLevel   string
}

func Execute() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	return opts.command()
}

func (o *rootOptions) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tabbardemo",
		Short:         "Play with an infinite tab bar in the terminal",
		Args:          cobra.NoArgs,
		SilenceErrors: false,
		SilenceUsage:  true,
		Version:       buildVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config(cmd)
			if err != nil {
				return err
			}
			return runDemo(cfg, o)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.configPath, "config", "", "TOML file with tab bar settings")
	flags.IntVar(&o.items, "items", 3, "Number of items to start with (1-7)")
	flags.Float64Var(&o.itemWidth, "item-width", 0, "Item width in columns (default: config, or 14)")
	flags.BoolVar(&o.infinite, "infinite", true, "Wrap around when the items do not fit")
	flags.BoolVar(&o.animated, "animated", true, "Fade between item sets")
	flags.StringVar(&o.logFile, "log-file", "", "Write JSON logs to this file")
	flags.StringVar(&o.logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	return cmd
}

// config loads the config file and applies the flags the user set on top.
func (o *rootOptions) config(cmd *cobra.Command) (tabbar.Config, error) {
	cfg, err := tabbar.LoadConfig(o.configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("infinite") {
		cfg.InfiniteScrolling = o.infinite
	}
	switch {
	case o.itemWidth > 0:
		cfg.ItemWidth = o.itemWidth
	case o.itemWidth < 0:
		return cfg, fmt.Errorf("%w: item width must be positive, got %v", tabbar.ErrInvalidConfig, o.itemWidth)
	case cfg.ItemWidth <= 0:
		cfg.ItemWidth = terminalItemWidth
	}
	if o.items < 1 || o.items > len(demoTitles) {
		return cfg, fmt.Errorf("items must be between 1 and %d, got %d", len(demoTitles), o.items)
	}
	return cfg, nil
}

func runDemo(cfg tabbar.Config, opts *rootOptions) error {
	logger, err := logging.New(logging.Options{Path: opts.logFile, Level: opts.logLevel})
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Info("starting demo",
		"version", buildVersion(),
		"items", opts.items,
		"item_width", cfg.EffectiveItemWidth(),
		"infinite", cfg.InfiniteScrolling,
	)

	app := tabbar.NewApplication()
	root := newDemo(app, cfg, opts.items, opts.animated, logger.Logger)
	if err := app.SetRoot(root).Run(); err != nil {
		logger.Error("demo stopped", "err", err)
		return err
	}
	logger.Info("demo stopped")
	return nil
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
