package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "align"
	configFileFlag = "config"
)

// applyDefaults sets every flag the user left alone from the ALIGN_<FLAG>
// environment variable or, failing that, from the key of the same name in
// the YAML config file. Dashes in flag names become underscores.
func applyDefaults(command *cobra.Command, configFile string) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	var errs []string
	command.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == configFileFlag {
			return
		}
		configName := strings.ReplaceAll(f.Name, "-", "_")
		if !f.Changed && v.IsSet(configName) {
			val := v.Get(configName)
			if err := command.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", configName, err))
			}
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("error mapping environment variables and config file to flags: %s", strings.Join(errs, "; "))
}
