package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/questboard/api-contract-tests/apitests"

	"gopkg.in/yaml.v3"
)

const defaultBaseURL = "http://localhost:8000"
const defaultRequestTimeout = time.Second * 10
const baseURLEnvVar = "API_BASE_URL"

type fileConfig struct {
	BaseURL        string            `yaml:"baseUrl"`
	RequestTimeout string            `yaml:"requestTimeout"`
	Identity       apitests.Identity `yaml:"identity"`
}

type runConfig struct {
	baseURL        string
	requestTimeout time.Duration
	identity       apitests.Identity
}

// resolveConfig merges the configuration sources. Precedence, highest first:
// command-line flags, the API_BASE_URL environment variable, the config file,
// built-in defaults.
func resolveConfig(params commandParams) (runConfig, error) {
	cfg := runConfig{
		baseURL:        defaultBaseURL,
		requestTimeout: defaultRequestTimeout,
		identity:       apitests.DefaultIdentity(),
	}

	if params.configPath != "" {
		data, err := ioutil.ReadFile(params.configPath)
		if err != nil {
			return cfg, err
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("invalid config file %s: %w", params.configPath, err)
		}
		if fc.BaseURL != "" {
			cfg.baseURL = fc.BaseURL
		}
		if fc.RequestTimeout != "" {
			d, err := time.ParseDuration(fc.RequestTimeout)
			if err != nil {
				return cfg, fmt.Errorf("invalid requestTimeout in %s: %w", params.configPath, err)
			}
			cfg.requestTimeout = d
		}
		if fc.Identity.Email != "" {
			cfg.identity.Email = fc.Identity.Email
		}
		if fc.Identity.Username != "" {
			cfg.identity.Username = fc.Identity.Username
		}
		if fc.Identity.Password != "" {
			cfg.identity.Password = fc.Identity.Password
		}
	}

	if env := os.Getenv(baseURLEnvVar); env != "" {
		cfg.baseURL = env
	}
	if params.baseURL != "" {
		cfg.baseURL = params.baseURL
	}
	if params.requestTimeout != 0 {
		cfg.requestTimeout = params.requestTimeout
	}
	return cfg, nil
}
