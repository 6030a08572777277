package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage jobaudit configuration file values.",
	Long: `Create, edit, display, and delete the jobaudit configuration file.

The configuration stores the defaults for every report flag:
- file / recursive / pattern / format
- time_format
- warning_threshold / error_threshold (minutes)
- continue_on_error
- report.output / report.color / report.summary
- log.level / log.format

Command-line flags override the file, and JOBAUDIT_* environment variables
(for example JOBAUDIT_WARNING_THRESHOLD) override it as well.`,
	Example: `
  # Create default config in $HOME/.jobaudit.yaml
  jobaudit config create

  # Show active config and source file
  jobaudit config show

  # Open active config in editor (creates example if missing)
  jobaudit config edit

  # Delete active config file
  jobaudit config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
