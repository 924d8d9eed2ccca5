// Copyright 2021 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/juju/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	OutputTable = "table"
	OutputPlain = "plain"
)

// Config is the configuration of a scenario run.
type Config struct {
	// Seed of the random generator. Zero seeds from the wall clock.
	Seed int64 `mapstructure:"seed"`
	// Include runs only the named scenarios.
	Include []string `mapstructure:"include" validate:"dive,alphanum"`
	// Exclude skips the named scenarios.
	Exclude []string `mapstructure:"exclude" validate:"dive,alphanum"`
	// WithFailing also runs the scenario that always fails.
	WithFailing bool   `mapstructure:"with_failing"`
	Output      string `mapstructure:"output" validate:"oneof=table plain"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Include: []string{},
		Exclude: []string{},
		Output:  OutputTable,
	}
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"seed":         "seed",
	"include":      "include",
	"exclude":      "exclude",
	"with-failing": "with_failing",
	"output":       "output",
}

func setDefault(v *viper.Viper) {
	defaultConfig := GetDefaultConfig()
	v.SetDefault("seed", defaultConfig.Seed)
	v.SetDefault("include", defaultConfig.Include)
	v.SetDefault("exclude", defaultConfig.Exclude)
	v.SetDefault("with_failing", defaultConfig.WithFailing)
	v.SetDefault("output", defaultConfig.Output)
}

// LoadConfig loads configuration from defaults, an optional file, environment
// variables prefixed with COLLECTION_ and changed flags, in increasing priority.
func LoadConfig(path string, flagSet *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefault(v)

	// bind environment variables
	v.SetEnvPrefix("collection")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// bind flags
	if flagSet != nil {
		for name, key := range flagKeys {
			if flag := flagSet.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, errors.Trace(err)
				}
			}
		}
	}

	// read configuration file
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Annotatef(err, "read config %s", path)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		trimSpaceHook,
	))); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}

// trimSpaceHook trims names split from comma separated lists.
func trimSpaceHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Slice {
		return data, nil
	}
	if values, ok := data.([]string); ok {
		trimmed := make([]string, 0, len(values))
		for _, value := range values {
			if value = strings.TrimSpace(value); value != "" {
				trimmed = append(trimmed, value)
			}
		}
		return trimmed, nil
	}
	return data, nil
}
