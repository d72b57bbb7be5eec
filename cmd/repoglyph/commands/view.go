package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/repoglyph/internal/app"
	"github.com/Sumatoshi-tech/repoglyph/internal/config"
	"github.com/Sumatoshi-tech/repoglyph/internal/engine"
	"github.com/Sumatoshi-tech/repoglyph/pkg/observability"
)

// ViewCommand holds the configuration for the view command.
type ViewCommand struct {
	sources sourceFlags
	style   string
	width   int
	height  int
	metrics string
}

// NewViewCommand creates and configures the view command.
func NewViewCommand() *cobra.Command {
	vc := &ViewCommand{}

	cobraCmd := &cobra.Command{
		Use:   "view [descriptor.json]",
		Short: "Open a window and animate the repository visualization",
		Long: `Open a window and animate the deterministic visualization for a
repository. The repository can come from a descriptor JSON file, a local git
repository (--git), a plain source directory (--dir), or be synthesized from
a name alone (--name).

Examples:
  repoglyph view repo.json
  repoglyph view --git ~/src/linux
  repoglyph view --name acme/widgets --style weave`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return vc.run(cmd, args)
		},
	}

	vc.sources.register(cobraCmd)
	cobraCmd.Flags().StringVar(&vc.style, "style", "", "force a style from the catalog")
	cobraCmd.Flags().IntVar(&vc.width, "width", 0, "surface width in pixels")
	cobraCmd.Flags().IntVar(&vc.height, "height", 0, "surface height in pixels")
	cobraCmd.Flags().StringVar(&vc.metrics, "metrics", "", "serve prometheus metrics on this address")

	return cobraCmd
}

func (vc *ViewCommand) run(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	vc.applyOverrides(cfg)

	validateErr := cfg.Validate()
	if validateErr != nil {
		return validateErr
	}

	src, err := vc.sources.provider(args, cfg.Engine.ParticleCap)
	if err != nil {
		return err
	}

	repo, err := src.Describe(cmd.Context())
	if err != nil {
		return fmt.Errorf("describe repository: %w", err)
	}

	metrics := observability.NewMetrics()
	if cfg.Metrics.Addr != "" {
		go func() {
			serveErr := metrics.Serve(cfg.Metrics.Addr)
			if serveErr != nil {
				logger.Error("metrics server stopped", "addr", cfg.Metrics.Addr, "error", serveErr)
			}
		}()
	}

	eng := engine.New(cfg.Window.Width, cfg.Window.Height,
		engine.WithLogger(logger),
		engine.WithMetrics(metrics),
		engine.WithStyleOverride(cfg.Engine.Style),
	)
	eng.Visualize(repo)

	sig := eng.Signature()
	logger.Info("starting visualization",
		"repo", repo.Name,
		"style", sig.StyleID,
		"commits", len(repo.Commits),
	)

	ebiten.SetWindowSize(cfg.Window.Width*cfg.Window.Scale, cfg.Window.Height*cfg.Window.Scale)
	ebiten.SetWindowTitle("repoglyph - " + repo.Name)

	runErr := ebiten.RunGame(app.New(eng))
	if runErr != nil {
		return fmt.Errorf("run window: %w", runErr)
	}

	return nil
}

// applyOverrides folds command-line flags over the loaded config.
func (vc *ViewCommand) applyOverrides(cfg *config.Config) {
	if vc.style != "" {
		cfg.Engine.Style = vc.style
	}

	if vc.width > 0 {
		cfg.Window.Width = vc.width
	}

	if vc.height > 0 {
		cfg.Window.Height = vc.height
	}

	if vc.metrics != "" {
		cfg.Metrics.Addr = vc.metrics
	}
}

// loadRuntime loads the config honoring the root --config flag and builds
// the logger from it and the root verbosity flags.
func loadRuntime(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Log.Level

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		level = "debug"
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	if quiet {
		level = "error"
	}

	logger := observability.NewLogger(os.Stderr, level, cfg.Log.Format)

	return cfg, logger, nil
}
