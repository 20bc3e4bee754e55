/*
Copyright 2025.

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

package config

import (
	"fmt"
	"os"
	"path"
	"reflect"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Default options for configuration loading.
const (
	DefaultConfigType     = "yaml"
	DefaultConfigDir      = "./appconfig"
	DefaultConfigFileName = "default"
	WorkDirEnv            = "WORKDIR"
	EnvPrefix             = "env|"
	FilePrefix            = "file|"
)

// Options is config options.
type Options struct {
	configType            string
	configPath            string
	defaultConfigFileName string
}

// Config is a wrapper over the underlying config loader implementation.
type Config struct {
	opts  Options
	viper *viper.Viper
}

func NewDefaultOptions() Options {
	var configPath string
	workDir := os.Getenv(WorkDirEnv)
	if workDir != "" {
		configPath = path.Join(workDir, DefaultConfigDir)
	} else {
		_, thisFile, _, _ := runtime.Caller(1)
		configPath = path.Join(path.Dir(thisFile), "../../"+DefaultConfigDir)
	}
	return NewOptions(DefaultConfigType, configPath, DefaultConfigFileName)
}

// NewOptions returns a new Options struct.
func NewOptions(configType string, configPath string, defaultConfigFileName string) Options {
	return Options{configType, configPath, defaultConfigFileName}
}

// NewDefaultConfig returns a new config struct with default options.
func NewDefaultConfig() *Config {
	return NewConfig(NewDefaultOptions())
}

// NewConfig returns a new config struct.
func NewConfig(opts Options) *Config {
	return &Config{opts, viper.New()}
}

// Load reads environment specific configuration layered over the defaults
// and unmarshalls into config.
func (c *Config) Load(env string, config interface{}) error {
	if err := c.loadByConfigName(c.opts.defaultConfigFileName, config); err != nil {
		return err
	}
	if env != c.opts.defaultConfigFileName {
		if err := c.loadByConfigName(env, config); err != nil {
			return err
		}
	}
	substituteConfigValues(reflect.ValueOf(config))
	return nil
}

// substituteConfigValues walks the config struct and replaces string values
// of the form 'env|VAR' or 'file|/path' with the referenced value.
func substituteConfigValues(v reflect.Value) {
	if !v.IsValid() {
		return
	}
	switch v.Kind() {
	case reflect.Ptr:
		if !v.IsNil() {
			substituteConfigValues(v.Elem())
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			substituteConfigValues(v.Field(i))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			substituteConfigValues(v.Index(i))
		}
	case reflect.Map:
		for _, key := range v.MapKeys() {
			val := v.MapIndex(key)
			if val.Kind() == reflect.Interface && !val.IsNil() {
				val = val.Elem()
			}
			// map entries are not addressable, replace by re-setting
			if val.Kind() == reflect.String {
				v.SetMapIndex(key, reflect.ValueOf(substituteString(val.String())))
			}
		}
	case reflect.String:
		if v.CanSet() {
			v.SetString(substituteString(v.String()))
		}
	}
}

// substituteString replaces 'env|VAR' and 'file|/path' patterns with their values
func substituteString(s string) string {
	if strings.HasPrefix(s, EnvPrefix) {
		return os.Getenv(strings.TrimPrefix(s, EnvPrefix))
	}
	if strings.HasPrefix(s, FilePrefix) {
		b, err := os.ReadFile(strings.TrimPrefix(s, FilePrefix))
		if err != nil {
			panic(fmt.Sprintf("ERROR: %v", err))
		}
		return strings.TrimSpace(string(b))
	}
	return s
}

// loadByConfigName reads configuration from file and unmarshalls into config.
func (c *Config) loadByConfigName(configName string, config interface{}) error {
	c.viper.SetConfigName(configName)
	c.viper.SetConfigType(c.opts.configType)
	c.viper.AddConfigPath(c.opts.configPath)
	c.viper.AutomaticEnv()
	c.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := c.viper.ReadInConfig(); err != nil {
		return err
	}
	return c.viper.Unmarshal(config)
}
