package config

import (
	"bytes"
	"fmt"
	"jobaudit/importer"
	"jobaudit/internal/timeutil"
	"jobaudit/joblog"
	"jobaudit/report"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyFile             = "file"
	KeyTimeFormat       = "time_format"
	KeyWarningThreshold = "warning_threshold"
	KeyErrorThreshold   = "error_threshold"
	KeyRecursive        = "recursive"
	KeyPattern          = "pattern"
	KeyFormat           = "format"
	KeyContinueOnError  = "continue_on_error"
	KeyReportOutput     = "report.output"
	KeyReportColor      = "report.color"
	KeyReportSummary    = "report.summary"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
)

type Config struct {
	File       string `mapstructure:"file" validate:"required_without=Recursive"`
	TimeFormat string `mapstructure:"time_format" validate:"required,strftime"`
	// Thresholds are whole minutes.
	WarningThreshold int    `mapstructure:"warning_threshold" validate:"gte=0"`
	ErrorThreshold   int    `mapstructure:"error_threshold" validate:"gte=0"`
	Recursive        string `mapstructure:"recursive"`
	Pattern          string `mapstructure:"pattern" validate:"required,globpattern"`
	Format           string `mapstructure:"format" validate:"omitempty,oneof=csv log txt excel xlsx xlsm xls"`
	ContinueOnError  bool   `mapstructure:"continue_on_error"`

	Report ReportConfig `mapstructure:"report"`
	Log    LogConfig    `mapstructure:"log"`
}

type ReportConfig struct {
	Output  string `mapstructure:"output" validate:"oneof=text json"`
	Color   bool   `mapstructure:"color"`
	Summary bool   `mapstructure:"summary"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// Thresholds converts the configured minutes into report thresholds.
func (c Config) Thresholds() report.Thresholds {
	return report.Thresholds{
		Warning: timeutil.Minutes(c.WarningThreshold),
		Error:   timeutil.Minutes(c.ErrorThreshold),
	}
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# jobaudit configuration
file: "logs.log"
time_format: "%H:%M:%S"

# minutes
warning_threshold: 5
error_threshold: 10

# set to a directory to process every matching file in it
recursive: ""
pattern: "*.log"
continue_on_error: false

report:
  output: "text"
  color: false
  summary: false

log:
  level: "warn"
  format: "text"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := newValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("strftime", func(fl validator.FieldLevel) bool {
		return importer.ValidateTimeFormat(fl.Field().String()) == nil
	})
	_ = validate.RegisterValidation("globpattern", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	})
	return validate
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyFile, "logs.log")
	v.SetDefault(KeyTimeFormat, joblog.DefaultTimeFormat)
	v.SetDefault(KeyWarningThreshold, 5)
	v.SetDefault(KeyErrorThreshold, 10)
	v.SetDefault(KeyRecursive, "")
	v.SetDefault(KeyPattern, importer.DefaultPattern)
	v.SetDefault(KeyFormat, "")
	v.SetDefault(KeyContinueOnError, false)
	v.SetDefault(KeyReportOutput, "text")
	v.SetDefault(KeyReportColor, false)
	v.SetDefault(KeyReportSummary, false)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
}
