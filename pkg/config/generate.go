package config

import (
	"strings"

	"github.com/arthur-debert/snippet/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# snippet configuration
#
# Uncomment and edit the values you want to change. Save as
# ~/.snippet.toml or $XDG_CONFIG_HOME/snippet/config.toml.

`

// GenerateConfigContent renders the default configuration as TOML with
// every value line commented out
func GenerateConfigContent() (string, error) {
	cfg, err := Default()
	if err != nil {
		return "", err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal default configuration")
	}

	return generatedHeader + commentOutConfigValues(string(data)), nil
}

// commentOutConfigValues comments out every line that is not blank, a
// comment or a section header
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			result = append(result, line)
		case strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
