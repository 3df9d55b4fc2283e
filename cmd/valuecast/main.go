// Package main provides the valuecast CLI.
//
// valuecast binds loosely-typed YAML documents onto registered Go
// destination types at runtime: enums resolve by name or literal, numbers
// convert under configurable categories, structs fill by member name or
// by position.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"valuecast/bind"
	"valuecast/descriptor"
	"valuecast/options"
	"valuecast/store"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// categoryFlags is set by the --category flag, overriding config.
	categoryFlags []string

	// binder is the global engine instance, initialized on startup.
	binder *bind.Binder

	// service holds the registered destination descriptors.
	service *descriptor.Service
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "valuecast",
	Short: "valuecast binds YAML documents onto typed Go destinations",
	Long: `valuecast is a runtime value-coercion engine. It reads a YAML document,
picks a registered destination type, and binds the document onto it:
strictly, all-or-nothing, with failure codes and paths when the input
does not fit.`,
	PersistentPreRunE: initBinder,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: .valuecast.yaml)")
	rootCmd.PersistentFlags().StringSliceVar(&categoryFlags, "category", nil, "enabled conversion categories, overrides config")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(bindCmd)
	rootCmd.AddCommand(typesCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("valuecast v0.1.0")
	},
}

// initBinder loads config, registers the store types and builds the engine.
func initBinder(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	categories, err := resolveCategories(cfg, categoryFlags)
	if err != nil {
		return err
	}

	service = descriptor.NewService()
	if err := store.RegisterTypes(service); err != nil {
		return fmt.Errorf("register types: %w", err)
	}

	converters, err := bind.NewConverters(store.Converters()...)
	if err != nil {
		return fmt.Errorf("register converters: %w", err)
	}

	binder = bind.New(service, converters, options.Options{
		Categories: categories,
		MaxDepth:   cfg.GetInt(cfgKeyMaxDepth),
	})

	return nil
}
