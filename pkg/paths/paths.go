// Package paths provides centralized path handling for snippet.
// It follows the XDG Base Directory specification for the app config
// and state locations, and knows about the legacy home config file.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for snippet
	EnvConfigDir = "SNIPPET_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for snippet
	EnvStateDir = "SNIPPET_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under the XDG roots
	AppDirName = "snippet"

	// HomeConfigFile is the config file looked up in the home directory
	HomeConfigFile = ".snippet.toml"

	// LogFileName is the name of the log file
	LogFileName = "snippet.log"
)

// AppConfigFiles are the file names tried, in order, inside the config directory
var AppConfigFiles = []string{"config.toml", "config.yaml", "config.yml"}

// Paths provides the locations snippet reads from and writes to
type Paths interface {
	HomeDir() string
	HomeConfigPath() string
	ConfigDir() string
	AppConfigPaths() []string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	homeDir   string
	configDir string
	stateDir  string
}

// New creates a Paths instance from the current environment
func New() Paths {
	p := &paths{}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
	}
	p.homeDir = homeDir

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.configDir = ExpandHome(configDir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// xdg resolves StateHome once at init, so re-check the variable here
	switch {
	case os.Getenv(EnvStateDir) != "":
		p.stateDir = ExpandHome(os.Getenv(EnvStateDir))
	case os.Getenv("XDG_STATE_HOME") != "":
		p.stateDir = filepath.Join(os.Getenv("XDG_STATE_HOME"), AppDirName)
	default:
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

func (p *paths) HomeDir() string {
	return p.homeDir
}

// HomeConfigPath returns ~/.snippet.toml
func (p *paths) HomeConfigPath() string {
	return filepath.Join(p.homeDir, HomeConfigFile)
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

// AppConfigPaths returns every candidate app config file in lookup order
func (p *paths) AppConfigPaths() []string {
	candidates := make([]string, 0, len(AppConfigFiles))
	for _, name := range AppConfigFiles {
		candidates = append(candidates, filepath.Join(p.configDir, name))
	}
	return candidates
}

func (p *paths) StateDir() string {
	return p.stateDir
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user forms are left alone
	return path
}
