package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"escaperoom/pkg/engine/config"
	"escaperoom/pkg/engine/logging"
	"escaperoom/pkg/engine/terminal"
	"escaperoom/pkg/game/devtools"
	"escaperoom/pkg/game/gameplay"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/renderer/tui"
	"escaperoom/pkg/game/setup"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "escaperoom",
		Short:         "A text adventure: find the keys, solve the riddles, reach the exit",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.Language, "lang", cfg.Language, "message catalog language")
	flags.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file instead of stderr")
	flags.IntVar(&cfg.Wrap, "wrap", cfg.Wrap, "wrap messages at this width (0 follows the terminal)")

	root.AddCommand(&cobra.Command{
		Use:   "dump-map [path]",
		Short: "Write the full map of a new game to a file (default map.txt)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return dumpMap(cfg, path)
		},
	})

	return root
}

// prepare applies the language and color settings and sets up logging
func prepare(cfg *config.Config) (*slog.Logger, func(), error) {
	if err := i18n.Load(cfg.Language); err != nil {
		return nil, nil, err
	}
	if cfg.NoColor || !terminal.IsTerminal(os.Stdout) {
		color.Disable()
	}

	logger, closer, err := logging.Setup(cfg)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { closer.Close() }, nil
}

func play(cfg *config.Config) error {
	logger, cleanup, err := prepare(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	g, err := setup.BuildWorld()
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	g.SetLogger(logger)

	r := tui.New(os.Stdin, os.Stdout, cfg.Wrap)
	r.Init()
	r.Clear()

	if err := gameplay.Run(g, r); err != nil {
		logging.WithError(g.Logger, err).Error("game stopped")
		return err
	}
	return nil
}

func dumpMap(cfg *config.Config, path string) error {
	_, cleanup, err := prepare(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	g, err := setup.BuildWorld()
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}

	written, err := devtools.DumpMapToFile(g, path)
	if err != nil {
		return err
	}
	fmt.Println(i18n.T("MAP_DUMPED", written))
	return nil
}
