package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/arthur-debert/snippet/pkg/paths"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPaths points the home and config directories at temp dirs
func testPaths(t *testing.T) (paths.Paths, string, string) {
	t.Helper()
	home := t.TempDir()
	configDir := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(paths.EnvConfigDir, configDir)
	t.Setenv("SNIPPET_OUTPUT_FORMAT", "")
	t.Setenv("SNIPPET_OUTPUT_SEPARATOR", "")
	t.Setenv("SNIPPET_LOGGING_VERBOSITY", "")
	os.Unsetenv("SNIPPET_OUTPUT_FORMAT")
	os.Unsetenv("SNIPPET_OUTPUT_SEPARATOR")
	os.Unsetenv("SNIPPET_LOGGING_VERBOSITY")
	return paths.New(), home, configDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Logging.Verbosity)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "\n", cfg.Output.Separator)

	commit, err := cfg.Template("commit")
	require.NoError(t, err)
	assert.Equal(t, "<type=feat>[(<scope>)]: <message>", commit.Template)
	assert.Empty(t, commit.Arguments)
}

func TestLoadLayers(t *testing.T) {
	p, home, configDir := testPaths(t)

	writeFile(t, filepath.Join(home, ".snippet.toml"), `
[output]
format = "json"

[templates.greet]
template = "hello <name=world>"
arguments = ["name=home"]
`)
	writeFile(t, filepath.Join(configDir, "config.toml"), `
[templates.greet]
arguments = ["name=app"]

[templates.stub]
description = "go stub"
template = "func <name>() {}"
`)

	cfg, err := Load(p, "")
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format, "home config overrides defaults")
	greet, err := cfg.Template("greet")
	require.NoError(t, err)
	assert.Equal(t, "hello <name=world>", greet.Template, "keys merge across layers")
	assert.Equal(t, []string{"name=app"}, greet.Arguments, "app config overrides home config")

	assert.Equal(t, []string{"commit", "greet", "stub"}, cfg.TemplateNames())
}

func TestLoadYAMLAppConfig(t *testing.T) {
	p, _, configDir := testPaths(t)

	writeFile(t, filepath.Join(configDir, "config.yaml"), `
output:
  format: yaml
templates:
  issue:
    template: "fix #<id>"
`)

	cfg, err := Load(p, "")
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	issue, err := cfg.Template("issue")
	require.NoError(t, err)
	assert.Equal(t, "fix #<id>", issue.Template)
}

func TestLoadExplicit(t *testing.T) {
	p, _, _ := testPaths(t)

	explicit := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, explicit, `
[output]
separator = "---"
`)

	cfg, err := Load(p, explicit)
	require.NoError(t, err)
	assert.Equal(t, "---", cfg.Output.Separator)

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(p, filepath.Join(t.TempDir(), "nope.toml"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad), "got %v", err)
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	p, _, _ := testPaths(t)
	t.Setenv("SNIPPET_OUTPUT_FORMAT", "yaml")
	t.Setenv("SNIPPET_LOGGING_VERBOSITY", "2")

	cfg, err := Load(p, "")
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 2, cfg.Logging.Verbosity)
}

func TestLoadWithOverrides(t *testing.T) {
	p, _, _ := testPaths(t)
	t.Setenv("SNIPPET_OUTPUT_FORMAT", "yaml")

	cfg, err := LoadWithOverrides(p, "", map[string]interface{}{
		"output.format":    "json",
		"output.separator": ",",
	})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format, "overrides win over env")
	assert.Equal(t, ",", cfg.Output.Separator)
}

func TestLoadErrors(t *testing.T) {
	t.Run("invalid toml", func(t *testing.T) {
		p, home, _ := testPaths(t)
		writeFile(t, filepath.Join(home, ".snippet.toml"), "[output\nformat=")
		_, err := Load(p, "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
	})

	t.Run("empty template", func(t *testing.T) {
		p, home, _ := testPaths(t)
		writeFile(t, filepath.Join(home, ".snippet.toml"), "[templates.blank]\ndescription = \"nothing\"\n")
		_, err := Load(p, "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
		assert.Equal(t, "blank", errors.GetErrorDetails(err)["name"])
	})

	t.Run("negative verbosity", func(t *testing.T) {
		p, home, _ := testPaths(t)
		writeFile(t, filepath.Join(home, ".snippet.toml"), "[logging]\nverbosity = -1\n")
		_, err := Load(p, "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
	})
}

func TestTemplateNotFound(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	_, err = cfg.Template("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
}

func TestGenerateConfigContent(t *testing.T) {
	content, err := GenerateConfigContent()
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(content, generatedHeader))
	assert.Contains(t, content, "[output]")
	assert.Contains(t, content, "# format = ")
	assert.Contains(t, content, "[templates.commit]")

	// uncommenting the value lines gives back the defaults
	body := strings.TrimPrefix(content, generatedHeader)
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "# ")
	}
	var cfg Config
	require.NoError(t, toml.Unmarshal([]byte(strings.Join(lines, "\n")), &cfg))
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "\n", cfg.Output.Separator)
	assert.Equal(t, "<type=feat>[(<scope>)]: <message>", cfg.Templates["commit"].Template)
}

func TestCommentOutConfigValues(t *testing.T) {
	in := "# note\n\n[output]\nformat = 'json'\n  separator = ' '\n"
	want := "# note\n\n[output]\n# format = 'json'\n#   separator = ' '\n"
	assert.Equal(t, want, commentOutConfigValues(in))
}
