package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		envSetup map[string]string
		validate func(t *testing.T, p Paths)
	}{
		{
			name: "config dir override",
			envSetup: map[string]string{
				EnvConfigDir: "/custom/config",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/custom/config", p.ConfigDir())
				assert.Equal(t, []string{
					"/custom/config/config.toml",
					"/custom/config/config.yaml",
					"/custom/config/config.yml",
				}, p.AppConfigPaths())
			},
		},
		{
			name: "state dir override",
			envSetup: map[string]string{
				EnvStateDir: "/custom/state",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/custom/state", p.StateDir())
				assert.Equal(t, "/custom/state/snippet.log", p.LogFilePath())
			},
		},
		{
			name: "XDG_STATE_HOME",
			envSetup: map[string]string{
				"XDG_STATE_HOME": "/xdg/state",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/xdg/state/snippet", p.StateDir())
			},
		},
		{
			name: "home config",
			envSetup: map[string]string{
				EnvHome: "/home/tester",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/home/tester", p.HomeDir())
				assert.Equal(t, "/home/tester/.snippet.toml", p.HomeConfigPath())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, "")
			t.Setenv(EnvStateDir, "")
			t.Setenv("XDG_STATE_HOME", "")
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}
			tt.validate(t, New())
		})
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv(EnvHome, "/home/tester")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", "/home/tester"},
		{"~/templates", filepath.Join("/home/tester", "templates")},
		{"~other/x", "~other/x"},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}
