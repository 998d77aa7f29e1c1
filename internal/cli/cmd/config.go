package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockit/internal/cli/styles"
	"github.com/bnema/dockit/internal/infrastructure/config"
)

var configSchemaDir string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View the effective configuration and its JSON schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the config file path and effective values",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of config.toml. With --dir the schema is written
to config.schema.json in that directory for editor integration.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSchemaCmd)
	configSchemaCmd.Flags().StringVar(&configSchemaDir, "dir", "", "write the schema file into this directory")
}

// runConfigShow shows config file path and the effective values.
func runConfigShow(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		fmt.Println(renderer.RenderNoConfigFile(configFile))
	}

	body, err := config.EncodeTOML(app.Config)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderConfig(configFile, body))
	return nil
}

// runConfigSchema prints or writes the config JSON schema.
func runConfigSchema(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if configSchemaDir != "" {
		path, err := config.GenerateSchemaFile(configSchemaDir)
		if err != nil {
			return err
		}
		fmt.Println(styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(path))
		return nil
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(schema))
	return nil
}
