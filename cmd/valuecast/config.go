// Config loading for the valuecast CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"valuecast/options"
	"valuecast/primitive"
)

const (
	configFileName = ".valuecast"
	configFileType = "yaml"

	// Config keys.
	cfgKeyCategories = "categories"
	cfgKeyMaxDepth   = "max_depth"
)

// loadConfig reads the optional CLI configuration using Viper. A missing
// config file is not an error; defaults apply.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyCategories, []string{"none"})
	v.SetDefault(cfgKeyMaxDepth, options.DefaultMaxDepth)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// resolveCategories combines the configured category names with any
// command line overrides into a category set.
func resolveCategories(cfg *viper.Viper, overrides []string) (primitive.CategoryEnum, error) {
	names := cfg.GetStringSlice(cfgKeyCategories)
	if len(overrides) > 0 {
		names = overrides
	}

	var out primitive.CategoryEnum
	for _, name := range names {
		c, ok := primitive.CategoryByName(name)
		if !ok {
			return 0, fmt.Errorf("unknown conversion category %q (valid: %s)",
				name, strings.Join(primitive.CategoryNames(), ", "))
		}
		out |= c
	}

	return out, nil
}
