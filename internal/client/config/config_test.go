package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cli"}

	cfg := LoadConfig()
	require.Equal(t, "http://127.0.0.1:8080", cfg.ServerEndpointAddr)
	require.Equal(t, "mealplanner.db", cfg.SessionDBPath)
}

func TestLoadConfig_Flags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cli", "-a", "http://api.example.com", "-f", "/tmp/session.db"}

	cfg := LoadConfig()
	require.Equal(t, "http://api.example.com", cfg.ServerEndpointAddr)
	require.Equal(t, "/tmp/session.db", cfg.SessionDBPath)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	file := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(JsonConfig{ServerEndpointAddr: "http://json.example.com"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, data, 0o600))

	os.Args = []string{"cli", "-c", file}

	cfg := LoadConfig()
	require.Equal(t, "http://json.example.com", cfg.ServerEndpointAddr)
	// fields absent from the JSON keep their defaults
	require.Equal(t, "mealplanner.db", cfg.SessionDBPath)
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	file := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(JsonConfig{ServerEndpointAddr: "http://json.example.com"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, data, 0o600))

	os.Args = []string{"cli", "-c", file, "-a", "http://flag.example.com"}

	cfg := LoadConfig()
	require.Equal(t, "http://flag.example.com", cfg.ServerEndpointAddr)
}
