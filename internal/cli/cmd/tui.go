package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockit/internal/app/docking"
	"github.com/bnema/dockit/internal/cli/model"
	"github.com/bnema/dockit/internal/domain/repository"
	"github.com/bnema/dockit/internal/infrastructure/config"
	"github.com/bnema/dockit/internal/infrastructure/snapshot"
	"github.com/bnema/dockit/internal/logging"
)

var tuiNoStore bool

var tuiCmd = &cobra.Command{
	Use:   "tui [STATE]",
	Short: "Host a layout in the terminal",
	Long: `Open an interactive host for a dock layout. When STATE is given its
widgets are created and the layout restored; the write key saves back to it
and changes are autosaved unless state.autosave_interval_ms is zero.

Stored perspectives are loaded on start and saved perspectives are written
back to the database unless --no-store is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().BoolVar(&tuiNoStore, "no-store", false, "keep perspectives in memory only")
}

func runTUI(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	app.UseQuietLogger()

	m, err := app.NewManager(hostEngineConfig)
	if err != nil {
		return err
	}
	m.Show()

	var statePath string
	if len(args) == 1 {
		statePath = args[0]
		data, err := os.ReadFile(statePath)
		if err != nil {
			return fmt.Errorf("read state: %w", err)
		}
		if _, err := app.RestoreUC.Execute(app.Ctx(), m, data, app.Config.State.UserVersion); err != nil {
			return err
		}
	}

	var repo repository.PerspectiveRepository
	if !tuiNoStore {
		if repo, _, err = app.Perspectives(); err != nil {
			logging.FromContext(app.Ctx()).Warn().Err(err).Msg("perspective store unavailable")
			repo = nil
		}
	}

	hostCfg := model.LayoutModelConfig{
		Manager:     m,
		Repo:        repo,
		StatePath:   statePath,
		UserVersion: app.Config.State.UserVersion,
	}
	if statePath != "" && app.Config.State.AutosaveIntervalMs > 0 {
		autosave := snapshot.NewService(snapshot.FileSink{Path: statePath}, app.Config.State.AutosaveIntervalMs)
		autosave.Start(app.Ctx())
		defer func() {
			if err := autosave.Stop(app.Ctx()); err != nil {
				logging.FromContext(app.Ctx()).Error().Err(err).Msg("final autosave failed")
			}
		}()
		hostCfg.Autosave = autosave
	}

	host := model.NewLayoutModel(app.Ctx(), app.Theme, hostCfg)
	p := tea.NewProgram(host, tea.WithAltScreen())
	watchConfig(app.Ctx(), p)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// hostEngineConfig enables what the terminal host needs on top of the
// configured flags.
func hostEngineConfig(cfg *docking.EngineConfig) {
	cfg.SetFlag(docking.FocusHighlighting, true)
	cfg.SetAutoHideFlag(docking.AutoHideFeatureEnabled, true)
}

// watchConfig forwards config file changes to the running host.
func watchConfig(ctx context.Context, p *tea.Program) {
	log := logging.FromContext(ctx)
	config.OnConfigChange(func(cfg *config.Config) {
		engine, err := cfg.EngineConfig()
		if err != nil {
			log.Warn().Err(err).Msg("ignoring invalid docking config")
			return
		}
		hostEngineConfig(engine)
		p.Send(model.EngineConfigMsg{Config: engine})
	})
	if err := config.Watch(); err != nil {
		log.Debug().Err(err).Msg("config watch unavailable")
	}
}
