// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestLoadConfig focuses on verifying main functionality (e.g. rejection of invalid input),
and *shouldn't* need exhaustive scenarios.

The tests in this file use t.Setenv and therefore cannot run in parallel.
*/

// TestLoadConfig is a test function that verifies the behavior of the LoadConfig function.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string            // Description of the test case
		env     map[string]string // Name of the environment variable and its value
		wantErr bool              // Whether an error is expected
	}{
		{
			name: "Valid configuration",
			env: map[string]string{
				"FOODGRAM_HOST": "localhost",
				"FOODGRAM_PORT": "8080",
			},
			wantErr: false,
		},
		{
			name: "Unix socket together with host and port",
			env: map[string]string{
				"FOODGRAM_HOST":       "localhost",
				"FOODGRAM_PORT":       "8080",
				"FOODGRAM_UNIXSOCKET": "/tmp/foodgram.sock",
			},
			wantErr: true,
		},
		{
			name: "Invalid FOODGRAM_SITE_LANGUAGE",
			env: map[string]string{
				"FOODGRAM_HOST":          "localhost",
				"FOODGRAM_PORT":          "8080",
				"FOODGRAM_SITE_LANGUAGE": "not a language",
			},
			wantErr: true,
		},
		{
			name: "Invalid FOODGRAM_REPO_URL",
			env: map[string]string{
				"FOODGRAM_HOST":     "localhost",
				"FOODGRAM_PORT":     "8080",
				"FOODGRAM_REPO_URL": "invalid-repo-url",
			},
			wantErr: true,
		},
		{
			name: "Invalid FOODGRAM_LOG_LEVEL",
			env: map[string]string{
				"FOODGRAM_HOST":      "localhost",
				"FOODGRAM_PORT":      "8080",
				"FOODGRAM_LOG_LEVEL": "verbose",
			},
			wantErr: true,
		},
		{
			name: "Limiter enabled with zero burst",
			env: map[string]string{
				"FOODGRAM_HOST":          "localhost",
				"FOODGRAM_PORT":          "8080",
				"FOODGRAM_LIMITER":       "true",
				"FOODGRAM_LIMITER_BURST": "0",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			config := &ServerConfig{}

			err := config.LoadConfig()

			if (err != nil) != tt.wantErr {
				t.Errorf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)

				return
			}

			if !tt.wantErr {
				if config.Basic.Host != tt.env["FOODGRAM_HOST"] {
					t.Errorf("LoadConfig() Host = %v, want %v", config.Basic.Host, tt.env["FOODGRAM_HOST"])
				}

				if config.Basic.Port != tt.env["FOODGRAM_PORT"] {
					t.Errorf("LoadConfig() Port = %v, want %v", config.Basic.Port, tt.env["FOODGRAM_PORT"])
				}

				if config.Site.Language.String() != "ru" {
					t.Errorf("LoadConfig() Site.Language = %v, want ru", config.Site.Language)
				}

				if config.Instance.FileServerCacheID == "" {
					t.Error("LoadConfig() FileServerCacheID is empty")
				}
			}
		})
	}
}

func TestLoadConfigDefaultsListener(t *testing.T) {
	config := &ServerConfig{}

	require.NoError(t, config.LoadConfig())

	assert.Equal(t, "localhost", config.Basic.Host)
	assert.Equal(t, "8080", config.Basic.Port)
	assert.Equal(t, "Фудграм", config.Site.Name)
	assert.True(t, config.Response.Compression)
}

func TestReadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
basic:
  port: "9000"
site:
  language: en-GB
httpCache:
  cacheControlMaxAge: 10m
limiter:
  enabled: true
  rate: 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config := &ServerConfig{}
	config.SetDefaults()

	require.NoError(t, config.readYAML(path))

	assert.Equal(t, "9000", config.Basic.Port)
	assert.Equal(t, "en-GB", config.Site.RawLanguage)
	assert.Equal(t, 10*time.Minute, config.HTTPCache.MaxAge)
	assert.True(t, config.Limiter.Enabled)
	assert.InDelta(t, 0.5, config.Limiter.Rate, 1e-9)
	// untouched keys keep their defaults
	assert.Equal(t, 120, config.Limiter.Burst)
}

func TestReadYAMLRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("basic:\n  prot: \"9000\"\n"), 0o600))

	config := &ServerConfig{}

	assert.Error(t, config.readYAML(path))
}

func TestReadYAMLMissingFile(t *testing.T) {
	t.Parallel()

	config := &ServerConfig{}

	assert.NoError(t, config.readYAML(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestReadEnv(t *testing.T) {
	t.Setenv("FOODGRAM_LIMITER_RATE", "3.5")
	t.Setenv("FOODGRAM_LOG_OUTPUTS", "/dev/stdout, ,/tmp/foodgram.log")
	t.Setenv("FOODGRAM_CACHE_CONTROL_MAX_AGE", "90s")
	t.Setenv("FOODGRAM_COMPRESSION", "false")

	config := &ServerConfig{}
	config.SetDefaults()

	require.NoError(t, readEnv(config))

	assert.InDelta(t, 3.5, config.Limiter.Rate, 1e-9)
	assert.Equal(t, []string{"/dev/stdout", "/tmp/foodgram.log"}, config.Log.Outputs)
	assert.Equal(t, 90*time.Second, config.HTTPCache.MaxAge)
	assert.False(t, config.Response.Compression)
}

func TestReadEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
basic:
  unixSocket: /tmp/a.sock
  unixSocketPermissions: "0600"
  unixSocketUser: alice
  unixSocketGroup: staff
development:
  inDevelopment: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("FOODGRAM_UNIXSOCKET", "/tmp/b.sock")
	t.Setenv("FOODGRAM_UNIXSOCKET_PERMISSIONS", "0660")
	t.Setenv("FOODGRAM_UNIXSOCKET_USER", "bob")
	t.Setenv("FOODGRAM_UNIXSOCKET_GROUP", "www-data")
	t.Setenv("FOODGRAM_DEV", "false")

	config := &ServerConfig{}
	config.SetDefaults()

	require.NoError(t, config.readYAML(path))
	require.NoError(t, readEnv(config))

	assert.Equal(t, "/tmp/b.sock", config.Basic.UnixSocket)
	assert.Equal(t, "0660", config.Basic.RawUnixSocketPermissions)
	assert.Equal(t, "bob", config.Basic.UnixSocketUser)
	assert.Equal(t, "www-data", config.Basic.UnixSocketGroup)
	assert.False(t, config.Development.InDevelopment)
}

func TestReadEnvKeepsYAMLWhenUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site:\n  name: Foodgram\n"), 0o600))

	config := &ServerConfig{}
	config.SetDefaults()

	require.NoError(t, config.readYAML(path))
	require.NoError(t, readEnv(config))

	assert.Equal(t, "Foodgram", config.Site.Name)
}

func TestReadEnvInvalidValue(t *testing.T) {
	t.Setenv("FOODGRAM_LIMITER_BURST", "lots")

	config := &ServerConfig{}

	assert.Error(t, readEnv(config))
}

func TestUnixSocketPermissions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want os.FileMode
	}{
		{raw: "", want: 0o666},
		{raw: "0660", want: 0o660},
		{raw: "600", want: 0o600},
		{raw: "rw-rw----", want: 0o660},
	}

	for _, tt := range tests {
		config := &ServerConfig{}
		config.Basic.UnixSocket = "/tmp/foodgram.sock"
		config.Basic.RawUnixSocketPermissions = tt.raw

		require.NoError(t, config.validateListener(), "raw=%q", tt.raw)
		assert.Equal(t, tt.want, config.Basic.UnixSocketPermissions, "raw=%q", tt.raw)
	}

	config := &ServerConfig{}
	config.Basic.UnixSocket = "/tmp/foodgram.sock"
	config.Basic.RawUnixSocketPermissions = "0999"

	assert.ErrorIs(t, config.validateListener(), errUnixSocketInvalidPermissions)
}
