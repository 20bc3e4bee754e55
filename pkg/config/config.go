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
	"os"

	"github.com/sumitmcc/webexteamssdk/pkg/cache"
)

// AppConfig represents the top-level configuration structure
type AppConfig struct {
	App    App          `yaml:"app"`
	Cache  cache.Config `yaml:"cache"`
	Output Output       `yaml:"output"`
}

// App represents the application configuration
type App struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
}

// Output holds the defaults for rendering serialized resources
type Output struct {
	// Indent is the number of spaces used when pretty-printing JSON
	Indent int `yaml:"indent"`

	// Debug raises the log level to debug
	Debug bool `yaml:"debug"`
}

var config *AppConfig

func LoadConfig(env string) (*AppConfig, error) {
	config = &AppConfig{}
	if err := NewDefaultConfig().Load(env, config); err != nil {
		return nil, err
	}
	return config, nil
}

func getOrDefaultEnv() string {
	env := os.Getenv("APP_ENV")
	if len(env) == 0 {
		return "default"
	}
	return env
}

func GetConfig() (*AppConfig, error) {
	var err error
	if config == nil {
		config, err = LoadConfig(getOrDefaultEnv())
	}

	return config, err
}
