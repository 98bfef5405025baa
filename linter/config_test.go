package linter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `rules:
  final_class_member:
    severity: error
    final_class_modifier: static
`)
	config, err := LoadConfig(context.Background(), path)
	require.NoError(t, err)

	rule := config.Rule("final_class_member")
	assert.Equal(t, SeverityError, rule.Severity)
	assert.Equal(t, "static", rule.FinalClassModifier)
}

func TestLoadConfig_InvalidSeverity(t *testing.T) {
	path := writeConfig(t, `rules:
  final_class_member:
    severity: fatal
`)
	_, err := LoadConfig(context.Background(), path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidModifier(t *testing.T) {
	path := writeConfig(t, `rules:
  final_class_member:
    final_class_modifier: open
`)
	_, err := LoadConfig(context.Background(), path)
	assert.Error(t, err)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(context.Background(), filepath.Join(t.TempDir(), ConfigFile))
	assert.Error(t, err)
}

func TestConfig_RuleDefaults(t *testing.T) {
	config := DefaultConfig()
	rule := config.Rule("final_class_member")
	assert.Equal(t, SeverityWarning, rule.Severity)
	assert.Equal(t, "final", rule.FinalClassModifier)

	// Partial configuration keeps defaults for unset options.
	config.Rules = map[string]RuleConfig{
		"final_class_member": {Severity: SeverityError},
	}
	rule = config.Rule("final_class_member")
	assert.Equal(t, SeverityError, rule.Severity)
	assert.Equal(t, "final", rule.FinalClassModifier)
}

func TestSeverity_Validate(t *testing.T) {
	assert.NoError(t, SeverityWarning.Validate())
	assert.NoError(t, SeverityError.Validate())
	assert.Error(t, Severity("fatal").Validate())
}
