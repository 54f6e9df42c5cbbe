package mcpserver

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

// Config governs invocation behavior and the HTTP body cap. Mutate only
// between construction and the first dispatch.
type Config struct {
	// ToolTimeout bounds a single tool execution. ENV: MCP_TOOL_TIMEOUT
	ToolTimeout time.Duration `yaml:"-" env:"MCP_TOOL_TIMEOUT,default=30s"`
	// ResourceTimeout bounds a single resource read. ENV: MCP_RESOURCE_TIMEOUT
	ResourceTimeout time.Duration `yaml:"-" env:"MCP_RESOURCE_TIMEOUT,default=30s"`
	// PromptTimeout bounds a single prompt render. ENV: MCP_PROMPT_TIMEOUT
	PromptTimeout time.Duration `yaml:"-" env:"MCP_PROMPT_TIMEOUT,default=30s"`
	// MaxBodySize caps request bodies in bytes. ENV: MCP_MAX_BODY_SIZE
	MaxBodySize int64 `yaml:"max_body_size" env:"MCP_MAX_BODY_SIZE,default=10485760"`

	// Raw duration strings for YAML unmarshaling.
	ToolTimeoutRaw     string `yaml:"tool_timeout"`
	ResourceTimeoutRaw string `yaml:"resource_timeout"`
	PromptTimeoutRaw   string `yaml:"prompt_timeout"`
}

// DefaultConfig returns the stock configuration: 30 second per-kind timeouts
// and a 10 MiB body cap.
func DefaultConfig() Config {
	return Config{
		ToolTimeout:     30 * time.Second,
		ResourceTimeout: 30 * time.Second,
		PromptTimeout:   30 * time.Second,
		MaxBodySize:     10 * 1024 * 1024,
	}
}

// FromEnv builds a Config from MCP_* environment variables; unset variables
// keep their defaults.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration file. ${VAR_NAME} references are
// expanded from the environment before parsing, and duration fields accept Go
// duration strings ("30s", "1m30s"). Fields absent from the file keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.parseDurations(); err != nil {
		return Config{}, fmt.Errorf("parsing durations: %w", err)
	}
	return cfg, nil
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding
// environment variable values; unset variables expand to the empty string.
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envPattern.FindStringSubmatch(match)[1])
	})
}

// parseDurations converts the raw duration strings into time.Duration values.
func (c *Config) parseDurations() error {
	var err error
	if c.ToolTimeoutRaw != "" {
		if c.ToolTimeout, err = time.ParseDuration(c.ToolTimeoutRaw); err != nil {
			return fmt.Errorf("parsing tool_timeout %q: %w", c.ToolTimeoutRaw, err)
		}
	}
	if c.ResourceTimeoutRaw != "" {
		if c.ResourceTimeout, err = time.ParseDuration(c.ResourceTimeoutRaw); err != nil {
			return fmt.Errorf("parsing resource_timeout %q: %w", c.ResourceTimeoutRaw, err)
		}
	}
	if c.PromptTimeoutRaw != "" {
		if c.PromptTimeout, err = time.ParseDuration(c.PromptTimeoutRaw); err != nil {
			return fmt.Errorf("parsing prompt_timeout %q: %w", c.PromptTimeoutRaw, err)
		}
	}
	return nil
}
