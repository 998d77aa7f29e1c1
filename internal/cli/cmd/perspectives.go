package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockit/internal/cli/styles"
	"github.com/bnema/dockit/internal/infrastructure/settings"
)

var perspectivesYes bool

var perspectivesCmd = &cobra.Command{
	Use:     "perspectives",
	Aliases: []string{"persp"},
	Short:   "Manage stored perspectives",
	Long: `Perspectives are named layout states kept in the dockit database.
They can be exchanged as single state files or as a settings file holding
the whole set.`,
}

var perspectivesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored perspectives",
	Args:  cobra.NoArgs,
	RunE:  runPerspectivesList,
}

var perspectivesExportCmd = &cobra.Command{
	Use:   "export NAME FILE",
	Short: "Write a perspective state to FILE",
	Args:  cobra.ExactArgs(2),
	RunE:  runPerspectivesExport,
}

var perspectivesImportCmd = &cobra.Command{
	Use:   "import NAME FILE",
	Short: "Store the state in FILE as perspective NAME",
	Args:  cobra.ExactArgs(2),
	RunE:  runPerspectivesImport,
}

var perspectivesDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a stored perspective",
	Args:  cobra.ExactArgs(1),
	RunE:  runPerspectivesDelete,
}

var perspectivesSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Exchange the whole perspective set through a settings file",
}

var perspectivesSettingsExportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Write every stored perspective to a settings file",
	Long:  `Write every stored perspective to FILE, or to docking.settings_file when omitted.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPerspectivesSettingsExport,
}

var perspectivesSettingsImportCmd = &cobra.Command{
	Use:   "import [FILE]",
	Short: "Replace the stored perspectives with a settings file",
	Long:  `Replace the stored perspectives with the ones in FILE, or in docking.settings_file when omitted.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPerspectivesSettingsImport,
}

func init() {
	rootCmd.AddCommand(perspectivesCmd)
	perspectivesCmd.AddCommand(perspectivesListCmd, perspectivesExportCmd, perspectivesImportCmd, perspectivesDeleteCmd, perspectivesSettingsCmd)
	perspectivesSettingsCmd.AddCommand(perspectivesSettingsExportCmd, perspectivesSettingsImportCmd)
	perspectivesDeleteCmd.Flags().BoolVarP(&perspectivesYes, "yes", "y", false, "skip confirmation prompt")
}

func runPerspectivesList(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	_, uc, err := app.Perspectives()
	if err != nil {
		return err
	}

	items, err := uc.List(app.Ctx())
	if err != nil {
		return err
	}
	fmt.Println(styles.NewStateRenderer(app.Theme).RenderPerspectives(items))
	return nil
}

func runPerspectivesExport(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	_, uc, err := app.Perspectives()
	if err != nil {
		return err
	}

	state, err := uc.Export(app.Ctx(), args[0])
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[1], state, outputFilePerm); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	fmt.Println(styles.NewStateRenderer(app.Theme).RenderDone("perspective %s written to %s", args[0], args[1]))
	return nil
}

func runPerspectivesImport(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	_, uc, err := app.Perspectives()
	if err != nil {
		return err
	}

	state, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read state: %w", err)
	}
	if err := uc.Import(app.Ctx(), args[0], state); err != nil {
		return err
	}
	fmt.Println(styles.NewStateRenderer(app.Theme).RenderDone("perspective %s imported", args[0]))
	return nil
}

func runPerspectivesDelete(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	_, uc, err := app.Perspectives()
	if err != nil {
		return err
	}

	name := args[0]
	if !perspectivesYes {
		ok, err := confirm(app.Theme, fmt.Sprintf("Delete perspective %s?", name),
			"removes the stored layout from "+app.DatabasePath())
		if err != nil || !ok {
			return err
		}
	}
	if err := uc.Delete(app.Ctx(), name); err != nil {
		return err
	}
	fmt.Println(styles.NewStateRenderer(app.Theme).RenderDone("perspective %s deleted", name))
	return nil
}

// settingsPath returns args[0] or the configured settings file.
func settingsPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	app, err := requireApp()
	if err != nil {
		return "", err
	}
	return app.Config.Docking.SettingsFile, nil
}

func runPerspectivesSettingsExport(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	_, uc, err := app.Perspectives()
	if err != nil {
		return err
	}
	path, err := settingsPath(args)
	if err != nil {
		return err
	}

	store, err := settings.Open(app.Ctx(), path)
	if err != nil {
		return err
	}
	n, err := uc.ExportSettings(app.Ctx(), store)
	if err != nil {
		return err
	}
	fmt.Println(styles.NewStateRenderer(app.Theme).RenderDone("%d perspective(s) written to %s", n, path))
	return nil
}

func runPerspectivesSettingsImport(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	_, uc, err := app.Perspectives()
	if err != nil {
		return err
	}
	path, err := settingsPath(args)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("settings file: %w", err)
	}

	store, err := settings.Open(app.Ctx(), path)
	if err != nil {
		return err
	}
	n, err := uc.ImportSettings(app.Ctx(), store)
	if err != nil {
		return err
	}
	fmt.Println(styles.NewStateRenderer(app.Theme).RenderDone("%d perspective(s) imported from %s", n, path))
	return nil
}

// confirmModel wraps styles.ConfirmModel as a standalone program.
type confirmModel struct {
	confirm styles.ConfirmModel
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if m.confirm.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m confirmModel) View() string {
	if m.confirm.Done() {
		return ""
	}
	return m.confirm.View() + "\n"
}

// confirm asks a yes/no question on the terminal.
func confirm(theme *styles.Theme, message string, details ...string) (bool, error) {
	final, err := tea.NewProgram(confirmModel{confirm: styles.NewConfirm(theme, message, details...)}).Run()
	if err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}
	return final.(confirmModel).confirm.Result(), nil
}
