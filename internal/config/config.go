package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	CurrentVersion = 1

	defaultSchemaPath    = "td_api.tl"
	defaultHeaderLines   = 9
	defaultSentinel      = "---functions---"
	defaultClassesPath   = "classes.ts"
	defaultClientPath    = "client.ts"
	defaultBaseClient    = "./base_client.ts"
	defaultClassesImport = "./classes.ts"
)

type Config struct {
	Version    int        `yaml:"version"`
	Schema     Schema     `yaml:"schema"`
	TypeScript TypeScript `yaml:"typescript"`
	Go         Go         `yaml:"go"`
}

type Schema struct {
	Path        string `yaml:"path"`
	HeaderLines *int   `yaml:"headerLines"`
	Sentinel    string `yaml:"sentinel"`
}

type TypeScript struct {
	Enabled       *bool  `yaml:"enabled"`
	Classes       string `yaml:"classes"`
	Client        string `yaml:"client"`
	BaseClient    string `yaml:"baseClient"`
	ClassesImport string `yaml:"classesImport"`
}

type Go struct {
	Enabled bool      `yaml:"enabled"`
	Types   GoPackage `yaml:"types"`
	Client  GoPackage `yaml:"client"`
}

type GoPackage struct {
	Path    string `yaml:"path"`
	Package string `yaml:"package"`
}

func (t TypeScript) IsEnabled() bool {
	return t.Enabled == nil || *t.Enabled
}

func Read(configPath string) (*Config, error) {
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read config file "%s": %w`, configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(fileData, &config); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal config file "%s": %w`, configPath, err)
	}

	return &config, nil
}

// Load reads, defaults and validates the config at configPath. A missing file
// yields the default config unless required is set.
func Load(configPath string, required bool) (*Config, error) {
	config, err := Read(configPath)
	if errors.Is(err, fs.ErrNotExist) && !required {
		config = &Config{}
	} else if err != nil {
		return nil, err
	}

	ApplyDefaults(config)

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf(`invalid config "%s": %w`, configPath, err)
	}

	return config, nil
}

func ApplyDefaults(c *Config) {
	if c.Version == 0 {
		c.Version = CurrentVersion
	}

	if c.Schema.Path == "" {
		c.Schema.Path = defaultSchemaPath
	}
	if c.Schema.HeaderLines == nil {
		headerLines := defaultHeaderLines
		c.Schema.HeaderLines = &headerLines
	}
	if c.Schema.Sentinel == "" {
		c.Schema.Sentinel = defaultSentinel
	}

	if c.TypeScript.Classes == "" {
		c.TypeScript.Classes = defaultClassesPath
	}
	if c.TypeScript.Client == "" {
		c.TypeScript.Client = defaultClientPath
	}
	if c.TypeScript.BaseClient == "" {
		c.TypeScript.BaseClient = defaultBaseClient
	}
	if c.TypeScript.ClassesImport == "" {
		c.TypeScript.ClassesImport = defaultClassesImport
	}
}

func Validate(c *Config) error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported version %d", c.Version)
	}

	if c.Schema.HeaderLines != nil && *c.Schema.HeaderLines < 0 {
		return fmt.Errorf("schema.headerLines must not be negative")
	}

	if !c.TypeScript.IsEnabled() && !c.Go.Enabled {
		return fmt.Errorf("no target enabled")
	}

	if c.Go.Enabled {
		for name, p := range map[string]GoPackage{"types": c.Go.Types, "client": c.Go.Client} {
			if p.Path == "" || p.Package == "" {
				return fmt.Errorf("go.%s needs both path and package", name)
			}
		}
	}

	return nil
}
