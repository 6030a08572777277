package cmd

import (
	"fmt"
	"jobaudit/config"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// editorEnvVars are consulted in order; the first non-blank one wins.
var editorEnvVars = []string{"VISUAL", "EDITOR"}

const fallbackEditor = "vi"

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the active config in an editor and validate it afterwards.",
	Long: `Open the active jobaudit config file in $VISUAL, $EDITOR or vi.

A missing config file is created from the example template first. Once the
editor exits the file is validated; validation errors are reported but the
edited file is kept so it can be fixed with another "config edit".`,
	Example: `
  # Edit active config
  jobaudit config edit

  # Edit with a specific editor
  EDITOR="code --wait" jobaudit config edit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := resolveConfigEditPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}

		created, err := writeConfigTemplate(configPath, false)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "Created example config at: %s\n", configPath)
		}

		editor, err := editorCommand(editorFromEnv(os.Getenv), configPath)
		if err != nil {
			return err
		}
		editor.Stdin, editor.Stdout, editor.Stderr = cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()
		if err := editor.Run(); err != nil {
			return fmt.Errorf("run editor %s: %w", editor.Args[0], err)
		}

		return validateEditedConfig(cmd, configPath)
	},
}

func validateEditedConfig(cmd *cobra.Command, configPath string) error {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", configPath, err)
	}

	cfg, err := config.ValidateYAMLContent(content)
	if err != nil {
		return fmt.Errorf("%s is invalid, run \"jobaudit config edit\" again to fix it: %w", configPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config %s is valid.\n", configPath)
	printConfig(cmd.OutOrStdout(), cfg)
	return nil
}

func editorFromEnv(getenv func(string) string) string {
	for _, name := range editorEnvVars {
		if value := strings.TrimSpace(getenv(name)); value != "" {
			return value
		}
	}
	return fallbackEditor
}

// editorCommand splits editor on whitespace so values like "code --wait"
// work, and appends the file to edit.
func editorCommand(editor, path string) (*exec.Cmd, error) {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no editor configured")
	}
	return exec.Command(parts[0], append(parts[1:], path)...), nil
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
