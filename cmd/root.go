/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"jobaudit/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jobaudit",
	Short: "Report jobs whose START/END log entries show they ran too long.",
	Long: `
**********************************************
*              JOB AUDIT                     *
**********************************************

Reads a job event log, pairs START and END rows by process id, and prints a
WARNING or ERROR line for every completed job whose duration exceeds the
configured thresholds.

Log rows have four comma-separated fields without a header:
  timestamp, description, START|END, pid

Rows with the wrong number of fields are skipped with a notice. A timestamp
that does not match --time-format stops the run.
`,
	Example: `
  # Report on ./logs.log with the default 5/10 minute thresholds
  jobaudit

  # Custom file, time format and thresholds
  jobaudit -f jobs.log -t "%Y-%m-%d %H:%M:%S" -w 2 -e 4

  # Every .log file in a directory, continuing past broken files
  jobaudit -r ./logs --continue-on-error --summary

  # Export all completed jobs to Excel
  jobaudit export -f jobs.log -o ./jobs.xlsx

  # Classify a previous job export
  jobaudit classify -i ./jobs.csv
`,
	SilenceUsage: true,
	RunE:         runReport,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.jobaudit.yaml, then ./.jobaudit.yaml)")
	flags.StringP("file", "f", "logs.log", "Path to the log file")
	flags.StringP("time-format", "t", "%H:%M:%S", "strftime-style format of log timestamps")
	flags.IntP("warning-threshold", "w", 5, "Warning threshold in minutes")
	flags.IntP("error-threshold", "e", 10, "Error threshold in minutes")
	flags.StringP("recursive", "r", "", "Process every matching log file in this directory instead of --file")
	flags.String("pattern", "*.log", "File pattern used with --recursive (supports **)")
	flags.String("format", "", "Input format: csv|excel (optional, inferred from extension when omitted)")
	flags.Bool("continue-on-error", false, "In directory mode, report a failing file and continue with the next one")
	flags.String("output-format", "text", "Report format: text|json")
	flags.Bool("color", false, "Color WARNING/ERROR tags in text reports")
	flags.Bool("summary", false, "Print a per-file summary after the report")
	flags.String("log-level", "warn", "Log level: debug|info|warn|error")
	flags.String("log-format", "text", "Log format: text|json")

	bindFlags(rootCmd, map[string]string{
		config.KeyFile:             "file",
		config.KeyTimeFormat:       "time-format",
		config.KeyWarningThreshold: "warning-threshold",
		config.KeyErrorThreshold:   "error-threshold",
		config.KeyRecursive:        "recursive",
		config.KeyPattern:          "pattern",
		config.KeyFormat:           "format",
		config.KeyContinueOnError:  "continue-on-error",
		config.KeyReportOutput:     "output-format",
		config.KeyReportColor:      "color",
		config.KeyReportSummary:    "summary",
		config.KeyLogLevel:         "log-level",
		config.KeyLogFormat:        "log-format",
	})
}

func bindFlags(cmd *cobra.Command, keys map[string]string) {
	for key, flagName := range keys {
		cobra.CheckErr(viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flagName)))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".jobaudit" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".jobaudit")
	}

	viper.SetEnvPrefix("JOBAUDIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// The config file is optional; flags and defaults cover every key.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Reading config file failed:", err)
		}
	}
}
