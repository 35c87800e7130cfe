// Package cmd implements the command-line interface for the turning sheet
// estimator. It provides the root command and subcommands for running
// estimation sessions and inspecting the saved worksheet.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moatteya/Turning-worksheet/cmd/catalog"
	"github.com/moatteya/Turning-worksheet/cmd/run"
	cmdsheet "github.com/moatteya/Turning-worksheet/cmd/sheet"
	"github.com/moatteya/Turning-worksheet/internal/config"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug mode for all commands
	Debug bool

	// rootCmd represents the root command for the turning-sheet CLI.
	rootCmd = &cobra.Command{
		Use:   "turning-sheet",
		Short: "A machining time and cost estimator",
		Long:  `An interactive estimator for turning, facing, boring, drilling, and milling passes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command
func Execute() error {
	// Load .env file early so environment variables are available
	_ = godotenv.Load()

	// Parse flags early to get debug flag before creating logger
	_ = rootCmd.ParseFlags(os.Args[1:])

	// Initialize configuration
	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	// Execute the root command with a fresh context
	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug mode")

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "turning-sheet version %s\n", viper.GetString("app.version"))
		},
	})

	// Add subcommands
	rootCmd.AddCommand(run.Command())
	rootCmd.AddCommand(catalog.Command())
	rootCmd.AddCommand(cmdsheet.Command())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	// Set config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	// Enable automatic environment variable reading BEFORE setting defaults
	// This ensures environment variables take precedence over defaults
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults (only used if environment variables or config file don't provide values)
	setDefaults()

	// Read config file
	// Note: the config file is optional unless --config names one explicitly.
	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}

	// Bind command-line flags to Viper
	if err := bindCommandLineFlags(); err != nil {
		return err
	}

	// Map environment variables to config keys
	if err := bindEnvVars(); err != nil {
		return err
	}

	// Set development logging settings
	setupDevelopmentLogging()

	return nil
}

// bindCommandLineFlags binds command-line flags to Viper.
func bindCommandLineFlags() error {
	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}
	return nil
}

// bindEnvVars binds well-known environment variables to config keys.
func bindEnvVars() error {
	if err := viper.BindEnv("app.environment", "APP_ENV"); err != nil {
		return fmt.Errorf("failed to bind APP_ENV: %w", err)
	}
	if err := viper.BindEnv("app.debug", "APP_DEBUG"); err != nil {
		return fmt.Errorf("failed to bind APP_DEBUG: %w", err)
	}
	if err := viper.BindEnv("logger.level", "LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := viper.BindEnv("logger.encoding", "LOG_FORMAT"); err != nil {
		return fmt.Errorf("failed to bind LOG_FORMAT: %w", err)
	}
	if err := viper.BindEnv("sheet.path", "SHEET_PATH"); err != nil {
		return fmt.Errorf("failed to bind SHEET_PATH: %w", err)
	}
	if err := viper.BindEnv("formulas.variant", "FORMULA_VARIANT"); err != nil {
		return fmt.Errorf("failed to bind FORMULA_VARIANT: %w", err)
	}
	return nil
}

// setupDevelopmentLogging configures development logging settings based on environment and debug flag.
func setupDevelopmentLogging() {
	// Check both the flag variable and Viper to ensure we catch the debug flag
	debugFlag := Debug || viper.GetBool("app.debug")

	if debugFlag {
		viper.Set("logger.level", "debug")
	}

	// Development environments get the human-readable encoder. The log
	// level stays at its configured value unless debug was requested.
	if viper.GetString("app.environment") == "development" {
		viper.Set("logger.development", true)
		viper.Set("logger.encoding", "console")
	}

	Debug = debugFlag
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("app", map[string]any{
		"name":        "turning-sheet",
		"version":     "1.0.0",
		"environment": "production",
		"debug":       false,
	})

	viper.SetDefault("logger", map[string]any{
		"level":       "info",
		"development": false,
		"encoding":    "console",
	})

	viper.SetDefault("sheet", map[string]any{
		"path": config.DefaultSheetPath,
	})

	viper.SetDefault("formulas", map[string]any{
		"variant": config.DefaultVariant,
	})

	// Prompt seeds. Each one backs a "[default ...]" answer in the session.
	viper.SetDefault("defaults", map[string]any{
		"power":               config.DefaultPower,
		"wear_exponent":       config.DefaultWearExponent,
		"setup_hours":         config.DefaultSetupHours,
		"load_unload_seconds": config.DefaultLoadUnloadSeconds,
		"positioning_seconds": config.DefaultPositioningSeconds,
		"density":             config.DefaultDensity,
		"cutting_energy":      config.DefaultCuttingEnergy,
		"batch_size":          config.DefaultBatchSize,
	})
}
