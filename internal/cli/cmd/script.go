package cmd

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/dockit/internal/cli/styles"
	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/bnema/dockit/internal/infrastructure/script"
)

var (
	scriptOut         string
	scriptPerspective string
	scriptTimeout     time.Duration
	scriptWidth       int
	scriptHeight      int
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Build layouts from JavaScript",
}

var scriptRunCmd = &cobra.Command{
	Use:   "run SCRIPT",
	Short: "Run a layout script and print the resulting layout",
	Long: `Run a JavaScript file against a fresh dock manager. The script sees a
'dock' object for creating and placing widgets and a 'console' object that
writes to the log.

Example:
  dock.widget("files", {title: "Files"});
  dock.add("left", "files");
  dock.widget("log");
  dock.add("bottom", "log");
  dock.autoHide("log", "bottom");

The resulting state can be written with --out and stored as a perspective
with --perspective. Perspectives saved by the script are stored as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.AddCommand(scriptRunCmd)
	scriptRunCmd.Flags().StringVarP(&scriptOut, "out", "o", "", "write the resulting state to this file")
	scriptRunCmd.Flags().StringVarP(&scriptPerspective, "perspective", "p", "", "store the resulting state as this perspective")
	scriptRunCmd.Flags().DurationVar(&scriptTimeout, "timeout", script.DefaultTimeout, "abort the script after this long")
	scriptRunCmd.Flags().IntVar(&scriptWidth, "width", 1280, "main container width")
	scriptRunCmd.Flags().IntVar(&scriptHeight, "height", 800, "main container height")
}

func runScript(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewStateRenderer(app.Theme)

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	m, err := app.NewManager(nil)
	if err != nil {
		return err
	}
	m.MainContainer().SetGeometry(entity.Rect{W: scriptWidth, H: scriptHeight})

	if err := script.NewRunner(scriptTimeout).Run(app.Ctx(), m, filepath.Base(args[0]), string(src)); err != nil {
		return err
	}

	state, err := m.SaveStateErr(app.Config.State.UserVersion)
	if err != nil {
		return err
	}
	report, err := app.InspectUC.Execute(app.Ctx(), state, nil)
	if err != nil {
		return err
	}
	fmt.Println(renderer.RenderReport(args[0], report))

	if scriptOut != "" {
		if err := os.WriteFile(scriptOut, state, outputFilePerm); err != nil {
			return fmt.Errorf("write state: %w", err)
		}
		fmt.Println(renderer.RenderDone("state written to %s", scriptOut))
	}

	// perspectives saved by the script are stored next to --perspective
	pending := make(map[string][]byte)
	for _, name := range m.PerspectiveNames() {
		pending[name], _ = m.Perspective(name)
	}
	if scriptPerspective != "" {
		pending[scriptPerspective] = state
	}
	if len(pending) == 0 {
		return nil
	}

	_, uc, err := app.Perspectives()
	if err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(pending)) {
		if err := uc.Import(app.Ctx(), name, pending[name]); err != nil {
			return err
		}
		fmt.Println(renderer.RenderDone("perspective %s stored", name))
	}
	return nil
}
