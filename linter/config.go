package linter

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the configuration file name looked up from the project root
const ConfigFile = ".swiftcheck.yml"

// RuleConfig holds the per-rule options recognized by the linter
type RuleConfig struct {
	// Severity of emitted violations, warning by default
	Severity Severity `yaml:"severity"`
	// FinalClassModifier is the literal replacement keyword used when
	// autocorrecting a redundant class modifier: "final" or "static".
	FinalClassModifier string `yaml:"final_class_modifier"`
}

// Config is the top-level linter configuration
type Config struct {
	Rules map[string]RuleConfig `yaml:"rules"`
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() *Config {
	return &Config{Rules: map[string]RuleConfig{}}
}

// DefaultRuleConfig returns the option defaults applied when a rule has no
// explicit configuration entry.
func DefaultRuleConfig() RuleConfig {
	return RuleConfig{
		Severity:           SeverityWarning,
		FinalClassModifier: "final",
	}
}

// LoadConfig reads and validates a YAML configuration from the given URL
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", URL, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", URL, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return config, nil
}

// Validate checks every configured rule option
func (c *Config) Validate() error {
	for name, rule := range c.Rules {
		if rule.Severity != "" {
			if err := rule.Severity.Validate(); err != nil {
				return fmt.Errorf("rule %s: %w", name, err)
			}
		}
		switch rule.FinalClassModifier {
		case "", "final", "static":
		default:
			return fmt.Errorf("rule %s: unknown final_class_modifier %q", name, rule.FinalClassModifier)
		}
	}
	return nil
}

// Rule returns the effective configuration for a rule, filling unset
// options with defaults.
func (c *Config) Rule(name string) RuleConfig {
	rule := DefaultRuleConfig()
	configured, ok := c.Rules[name]
	if !ok {
		return rule
	}
	if configured.Severity != "" {
		rule.Severity = configured.Severity
	}
	if configured.FinalClassModifier != "" {
		rule.FinalClassModifier = configured.FinalClassModifier
	}
	return rule
}
