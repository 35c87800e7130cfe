package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/moatteya/Turning-worksheet/internal/machining"
)

// Defaults applied when neither flags, environment variables, nor a config
// file provide a value. The numeric ones seed the interactive prompts.
const (
	DefaultSheetPath          = "turning_sheet.csv"
	DefaultVariant            = string(machining.VariantPerOperation)
	DefaultPower              = 5.0
	DefaultWearExponent       = 0.2
	DefaultSetupHours         = 0.25
	DefaultLoadUnloadSeconds  = 45.0
	DefaultPositioningSeconds = 10.0
	DefaultDensity            = 0.283
	DefaultCuttingEnergy      = 1.0
	DefaultBatchSize          = 1
)

// Config holds the application configuration assembled by viper.
type Config struct {
	App      App
	Logger   Logger
	Sheet    Sheet
	Formulas Formulas
	Defaults Defaults
}

// App identifies the application.
type App struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// Logger configures log output.
type Logger struct {
	Level       string
	Development bool
	Encoding    string
}

// Sheet locates the pass worksheet.
type Sheet struct {
	Path string
}

// Formulas selects the cut geometry formula family.
type Formulas struct {
	Variant string
}

// Defaults seeds the interactive prompts.
type Defaults struct {
	Power              float64
	WearExponent       float64
	SetupHours         float64
	LoadUnloadSeconds  float64
	PositioningSeconds float64
	Density            float64
	CuttingEnergy      float64
	BatchSize          int
}

// Load reads the configuration out of viper and validates it. Unset values
// fall back to the package defaults, so Load works even when no config file
// or environment is present.
func Load() (*Config, error) {
	cfg := &Config{
		App: App{
			Name:        viper.GetString("app.name"),
			Version:     viper.GetString("app.version"),
			Environment: viper.GetString("app.environment"),
			Debug:       viper.GetBool("app.debug"),
		},
		Logger: Logger{
			Level:       viper.GetString("logger.level"),
			Development: viper.GetBool("logger.development"),
			Encoding:    viper.GetString("logger.encoding"),
		},
		Sheet: Sheet{
			Path: viper.GetString("sheet.path"),
		},
		Formulas: Formulas{
			Variant: viper.GetString("formulas.variant"),
		},
		Defaults: Defaults{
			Power:              viper.GetFloat64("defaults.power"),
			WearExponent:       viper.GetFloat64("defaults.wear_exponent"),
			SetupHours:         viper.GetFloat64("defaults.setup_hours"),
			LoadUnloadSeconds:  viper.GetFloat64("defaults.load_unload_seconds"),
			PositioningSeconds: viper.GetFloat64("defaults.positioning_seconds"),
			Density:            viper.GetFloat64("defaults.density"),
			CuttingEnergy:      viper.GetFloat64("defaults.cutting_energy"),
			BatchSize:          viper.GetInt("defaults.batch_size"),
		},
	}

	cfg.applyFallbacks()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Variant returns the validated formula variant.
func (c *Config) Variant() machining.Variant {
	v, err := machining.ParseVariant(c.Formulas.Variant)
	if err != nil {
		return machining.VariantPerOperation
	}
	return v
}

// applyFallbacks fills zero values with the package defaults.
func (c *Config) applyFallbacks() {
	if c.App.Name == "" {
		c.App.Name = "turning-sheet"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Encoding == "" {
		c.Logger.Encoding = "console"
	}
	if c.Sheet.Path == "" {
		c.Sheet.Path = DefaultSheetPath
	}
	if c.Formulas.Variant == "" {
		c.Formulas.Variant = DefaultVariant
	}

	d := &c.Defaults
	if d.Power == 0 {
		d.Power = DefaultPower
	}
	if d.WearExponent == 0 {
		d.WearExponent = DefaultWearExponent
	}
	if d.SetupHours == 0 {
		d.SetupHours = DefaultSetupHours
	}
	if d.LoadUnloadSeconds == 0 {
		d.LoadUnloadSeconds = DefaultLoadUnloadSeconds
	}
	if d.PositioningSeconds == 0 {
		d.PositioningSeconds = DefaultPositioningSeconds
	}
	if d.Density == 0 {
		d.Density = DefaultDensity
	}
	if d.CuttingEnergy == 0 {
		d.CuttingEnergy = DefaultCuttingEnergy
	}
	if d.BatchSize == 0 {
		d.BatchSize = DefaultBatchSize
	}
}

// Validate checks that the configuration can drive a session.
func (c *Config) Validate() error {
	if c.Sheet.Path == "" {
		return errors.New("sheet path must not be empty")
	}
	if _, err := machining.ParseVariant(c.Formulas.Variant); err != nil {
		return err
	}

	d := c.Defaults
	if d.WearExponent <= 0 || d.WearExponent >= 1 {
		return fmt.Errorf("%w: got %g", machining.ErrWearExponent, d.WearExponent)
	}
	positives := []struct {
		key   string
		value float64
	}{
		{"defaults.power", d.Power},
		{"defaults.setup_hours", d.SetupHours},
		{"defaults.load_unload_seconds", d.LoadUnloadSeconds},
		{"defaults.positioning_seconds", d.PositioningSeconds},
		{"defaults.density", d.Density},
		{"defaults.cutting_energy", d.CuttingEnergy},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %g", p.key, p.value)
		}
	}
	if d.BatchSize < 1 {
		return fmt.Errorf("defaults.batch_size must be at least 1, got %d", d.BatchSize)
	}
	return nil
}
