package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"oxide/internal/parser"
)

// EnvVar names the environment variable holding an explicit config path.
const EnvVar = "OXIDE_CONFIG"

// Config holds the tool configuration shared by the CLI, the REPL and the
// language server.
type Config struct {
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	REPL   REPLConfig   `toml:"repl" yaml:"repl"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// ParserConfig holds parser limits
type ParserConfig struct {
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
}

// REPLConfig holds interactive settings
type REPLConfig struct {
	Prompt string `toml:"prompt" yaml:"prompt"`
}

// OutputConfig holds terminal output settings. Color is a pointer so an
// explicit false survives applyDefaults.
type OutputConfig struct {
	Color *bool `toml:"color" yaml:"color"`
}

// LogConfig holds commonlog settings
type LogConfig struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	File      string `toml:"file" yaml:"file"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv loads configuration from the OXIDE_CONFIG environment variable,
// then from the default locations. Finding no file is not an error.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{
		"./oxide.toml",
		"./oxide.yaml",
		"./oxide.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "oxide", "config.toml"))
	}
	return paths
}

func (c *Config) validate() error {
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("parser.max_depth must not be negative, got %d", c.Parser.MaxDepth)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must not be negative, got %d", c.Log.Verbosity)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = parser.DefaultMaxDepth
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = ">> "
	}
	if c.Output.Color == nil {
		enabled := true
		c.Output.Color = &enabled
	}
}

func (c *Config) expandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
}

// ColorEnabled reports whether colored output is on.
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// LogFile returns the log path for commonlog.Configure, or nil for stderr.
func (c *Config) LogFile() *string {
	if c.Log.File == "" {
		return nil
	}
	return &c.Log.File
}

// ParserOptions returns the parser options this configuration implies.
func (c *Config) ParserOptions() []parser.Option {
	return []parser.Option{parser.WithMaxDepth(c.Parser.MaxDepth)}
}
