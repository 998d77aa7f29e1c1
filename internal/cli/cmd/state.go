package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bnema/dockit/internal/application/usecase"
	"github.com/bnema/dockit/internal/cli/styles"
	"github.com/bnema/dockit/internal/infrastructure/statexml"
)

const outputFilePerm = 0o644

var (
	stateUserVersion int
	stateCentral     string
	stateJobs        int
	stateCompress    bool
	statePretty      bool
	stateOut         string
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect and convert saved layout states",
}

var stateInspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Render the layout tree of a state file",
	Long: `Decode a state file, compressed or not, and render its containers,
splitters, dock areas and sidebars.

With --user-version or --central the header is checked the way a restore
would check it.`,
	Args: cobra.ExactArgs(1),
	RunE: runStateInspect,
}

var stateValidateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate one or more state files",
	Long:  `Validate state files concurrently. Exits non-zero when any file is invalid.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStateValidate,
}

var stateFormatCmd = &cobra.Command{
	Use:   "format FILE",
	Short: "Re-encode a state file",
	Long: `Decode a state file and encode it again, compressed with --compress or
indented with --pretty. Without either flag the [state] config section decides.`,
	Args: cobra.ExactArgs(1),
	RunE: runStateFormat,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateInspectCmd, stateValidateCmd, stateFormatCmd)

	for _, c := range []*cobra.Command{stateInspectCmd, stateValidateCmd} {
		c.Flags().IntVar(&stateUserVersion, "user-version", 0, "expected user version")
		c.Flags().StringVar(&stateCentral, "central", "", "expected central widget name")
	}
	stateValidateCmd.Flags().IntVarP(&stateJobs, "jobs", "j", runtime.NumCPU(), "files validated in parallel")

	stateFormatCmd.Flags().BoolVar(&stateCompress, "compress", false, "write a compressed state")
	stateFormatCmd.Flags().BoolVar(&statePretty, "pretty", false, "write indented XML")
	stateFormatCmd.Flags().StringVarP(&stateOut, "out", "o", "", "output file (default stdout)")
	stateFormatCmd.MarkFlagsMutuallyExclusive("compress", "pretty")
}

// expectations returns the header checks requested on the command line.
// The user version falls back to the configured one.
func expectations(cmd *cobra.Command, userVersion int) *statexml.Expectations {
	versionSet := cmd.Flags().Changed("user-version")
	centralSet := cmd.Flags().Changed("central")
	if !versionSet && !centralSet {
		return nil
	}
	exp := &statexml.Expectations{UserVersion: stateUserVersion, CentralWidget: stateCentral}
	if !centralSet {
		exp.IgnoreCentralWidget = true
	}
	if !versionSet {
		exp.UserVersion = userVersion
	}
	return exp
}

func runStateInspect(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewStateRenderer(app.Theme)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read state: %w", err)
	}

	report, err := app.InspectUC.Execute(app.Ctx(), data, expectations(cmd, app.Config.State.UserVersion))
	if report != nil {
		fmt.Println(renderer.RenderReport(args[0], report))
	}
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		if errors.Is(err, usecase.ErrDuplicateDockWidget) {
			return nil
		}
		return err
	}
	return nil
}

func runStateValidate(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewStateRenderer(app.Theme)

	inputs := make([]usecase.StateInput, 0, len(args))
	for _, path := range args {
		inputs = append(inputs, usecase.StateInput{
			Name: path,
			Load: func(context.Context) ([]byte, error) {
				return os.ReadFile(path)
			},
		})
	}

	results, err := app.InspectUC.ValidateAll(app.Ctx(), inputs, expectations(cmd, app.Config.State.UserVersion), stateJobs)
	if err != nil {
		return err
	}
	fmt.Println(renderer.RenderValidation(results))

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d invalid state(s)", failed)
	}
	return nil
}

func runStateFormat(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read state: %w", err)
	}

	opts := statexml.EncodeOptions{
		AutoFormat: app.Config.State.AutoFormatting,
		Compress:   app.Config.State.Compression,
	}
	switch {
	case cmd.Flags().Changed("compress"):
		opts = statexml.EncodeOptions{Compress: stateCompress}
	case cmd.Flags().Changed("pretty"):
		opts = statexml.EncodeOptions{AutoFormat: statePretty}
	}

	out, err := app.InspectUC.Reformat(app.Ctx(), data, opts)
	if err != nil {
		return err
	}
	if stateOut == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(stateOut, out, outputFilePerm); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	fmt.Println(styles.NewStateRenderer(app.Theme).RenderDone("state written to %s", stateOut))
	return nil
}
