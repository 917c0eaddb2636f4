package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/thoshino/wardroster/pkg/core/scheduler"
)

// StaffEntry defines one roster member in the config file. ID may be left
// empty for file-only workflows; the services layer assigns one on import.
type StaffEntry struct {
	ID             string   `yaml:"id,omitempty"`
	Name           string   `yaml:"name" validate:"required"`
	Shifts         []string `yaml:"shifts" validate:"required,min=1,dive,oneof=EA DA DB LA NA NB NC"`
	RestWeekdays   []string `yaml:"restWeekdays,omitempty" validate:"dive,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
	MinMonthlyDays int      `yaml:"minMonthlyDays,omitempty" validate:"omitempty,min=1"`
	MaxMonthlyDays int      `yaml:"maxMonthlyDays,omitempty" validate:"omitempty,min=1"`
	MinWeeklyDays  int      `yaml:"minWeeklyDays,omitempty" validate:"omitempty,min=1,max=7"`
	MaxWeeklyDays  int      `yaml:"maxWeeklyDays,omitempty" validate:"omitempty,min=1,max=7"`

	// RecurringOff holds RRULE strings expanded into concrete day-off
	// requests for the scheduled month, e.g. "FREQ=WEEKLY;BYDAY=MO".
	RecurringOff []string `yaml:"recurringOff,omitempty"`
}

// Config represents the application configuration
type Config struct {
	// ScheduleSheetID is the Google spreadsheet the generated roster is
	// published to. Optional; publishing is skipped without it.
	ScheduleSheetID string `yaml:"scheduleSheetID,omitempty"`

	// Roster lets small deployments run entirely from the config file
	// instead of the database.
	Roster []StaffEntry `yaml:"roster,omitempty" validate:"dive"`

	// Coverage and Weights override the engine defaults when present.
	Coverage *scheduler.CoverageTable `yaml:"coverage,omitempty"`
	Weights  *scheduler.Weights       `yaml:"weights,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from wardroster_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, entry := range cfg.Roster {
		for j, rule := range entry.RecurringOff {
			if _, err := rrule.StrToRRule(rule); err != nil {
				return fmt.Errorf("invalid rrule in roster[%d].recurringOff[%d]: %w", i, j, err)
			}
		}
	}

	return nil
}

// ParseWeekday converts a config weekday name to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if wd.String() == name {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

// findConfigFile searches for wardroster_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "wardroster_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
