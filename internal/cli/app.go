package cli

import (
	"github.com/arthur-debert/phint/pkg/config"
	"github.com/arthur-debert/phint/pkg/logging"
	"github.com/arthur-debert/phint/pkg/paths"
	"github.com/arthur-debert/phint/pkg/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app is what commands share once the global flags are parsed
type app struct {
	helper   *paths.Helper
	format   ui.Format
	renderer ui.Renderer
	logger   zerolog.Logger
}

func (a *app) setup(cmd *cobra.Command, configFile, formatName string) error {
	format, err := ui.ParseFormat(formatName)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	a.format = ui.ResolveFormat(format, cmd.OutOrStdout())
	a.renderer, err = ui.NewRenderer(a.format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	a.logger = logging.GetLogger("cli")
	a.helper = paths.New(paths.WithConfig(cfg), paths.WithLogger(logging.GetLogger("paths")))

	a.logger.Debug().
		Str("format", a.format.String()).
		Str("home", cfg.Paths.Home).
		Msg("Application ready")
	return nil
}

// renderList renders items, an empty list rather than null when there are none
func (a *app) renderList(items []string) error {
	if items == nil {
		items = []string{}
	}
	return a.renderer.RenderResult(items)
}
