package cmd

import (
	"fmt"
	"io"
	"jobaudit/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

Values include flag and environment overrides. This command validates the
configuration before printing values.`,
	Example: `
  # Show active configuration
  jobaudit config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Fprintln(out, "Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Fprintln(out, "Config file loaded from:", configPath)
		} else {
			fmt.Fprintln(out, "No config file loaded, using defaults.")
		}
		printConfig(out, cfg)
	},
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "file: %s\n", cfg.File)
	fmt.Fprintf(out, "time_format: %s\n", cfg.TimeFormat)
	fmt.Fprintf(out, "warning_threshold: %d\n", cfg.WarningThreshold)
	fmt.Fprintf(out, "error_threshold: %d\n", cfg.ErrorThreshold)
	fmt.Fprintf(out, "recursive: %s\n", cfg.Recursive)
	fmt.Fprintf(out, "pattern: %s\n", cfg.Pattern)
	fmt.Fprintf(out, "format: %s\n", cfg.Format)
	fmt.Fprintf(out, "continue_on_error: %t\n", cfg.ContinueOnError)
	fmt.Fprintf(out, "report.output: %s\n", cfg.Report.Output)
	fmt.Fprintf(out, "report.color: %t\n", cfg.Report.Color)
	fmt.Fprintf(out, "report.summary: %t\n", cfg.Report.Summary)
	fmt.Fprintf(out, "log.level: %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "log.format: %s\n", cfg.Log.Format)
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
