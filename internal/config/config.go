package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix    = "MONADS"
	logLevel  = "log_level"
	output    = "output"
	precision = "precision"
)

const (
	OutputText = "text"
	OutputJSON = "json"

	DefaultLogLevel  = "warn"
	DefaultOutput    = OutputText
	DefaultPrecision = 6
)

var v *viper.Viper

func InitConfiguration(cmd *cobra.Command, configFile string) error {
	v = viper.New()

	v.SetEnvPrefix(prefix)
	v.AutomaticEnv() // read in environment variables that match

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)

		err := v.ReadInConfig()
		if err != nil {
			zap.S().Errorw("cannot read config file", "error", err, "config file", configFile)
			return fmt.Errorf("fail to read config file %q: %w", configFile, err)
		}
		zap.S().Infof("using config file: %v", v.ConfigFileUsed())
	}

	// Bind the current command's flags to viper
	bindFlags(cmd, v)

	return validate()
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// replace - with _ to match yaml format
		flagName := f.Name
		if strings.Contains(f.Name, "-") {
			// Environment variables can't have dashes in them, so bind them to their equivalent
			// keys with underscores.
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			flagName = strings.ReplaceAll(f.Name, "-", "_")
			_ = v.BindEnv(flagName, fmt.Sprintf("%s_%s", prefix, envVarSuffix))
		}

		// An explicit flag wins; otherwise the flag takes the config/env value.
		if f.Changed {
			v.Set(flagName, f.Value.String())
		} else if v.IsSet(flagName) {
			_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(flagName)))
		}
	})
}

func validate() error {
	switch GetOutput() {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q, expected %q or %q", GetOutput(), OutputText, OutputJSON)
	}

	if p := GetPrecision(); p < 0 {
		return fmt.Errorf("precision must not be negative, got %d", p)
	}
	return nil
}

func GetLogLevel() string {
	if v == nil || !v.IsSet(logLevel) {
		return DefaultLogLevel
	}
	return v.GetString(logLevel)
}

func GetOutput() string {
	if v == nil || !v.IsSet(output) {
		return DefaultOutput
	}
	return strings.ToLower(v.GetString(output))
}

// GetPrecision is the number of decimal places used when printing ratios.
func GetPrecision() int32 {
	if v == nil || !v.IsSet(precision) {
		return DefaultPrecision
	}
	return v.GetInt32(precision)
}
