package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"CONFLUENCE_URL", "PORT", "CONFLUENCE_USERNAME", "CONFLUENCE_API_TOKEN", "CONFLUENCE_PERSONAL_TOKEN", "JWT_SECRET"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	if private != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	}
	return dir
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	t.Run("cloud config with defaults", func(t *testing.T) {
		dir := writeConfig(t,
			"confluence:\n  url: https://acme.atlassian.net/wiki\nserver:\n  allowed_origins: [\"http://localhost:3000\"]\n",
			"username: bot@acme.com\napi_token: tok\njwt_key: k\n")

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.True(t, cfg.Public.Confluence.IsCloud())
		assert.Equal(t, 30*time.Second, cfg.Public.Confluence.Timeout)
		assert.Equal(t, "8080", cfg.Public.Server.Port)
		assert.Equal(t, 600, cfg.Public.Server.RequestsPerMinute)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Public.Server.AllowedOrigins)
		assert.Equal(t, "k", cfg.JwtKey())
		assert.Equal(t, 30*24*time.Hour, cfg.JwtTTL())
		assert.Equal(t, "bot@acme.com", cfg.Credentials().Username)
	})

	t.Run("server config from env", func(t *testing.T) {
		dir := writeConfig(t, "confluence:\n  url: https://wiki.corp.local\n  timeout: 5s\nlog:\n  level: debug\n", "")
		t.Setenv("CONFLUENCE_PERSONAL_TOKEN", "pat")
		t.Setenv("PORT", "9090")

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.False(t, cfg.Public.Confluence.IsCloud())
		assert.Equal(t, 5*time.Second, cfg.Public.Confluence.Timeout)
		assert.Equal(t, "9090", cfg.Public.Server.Port)
		assert.Equal(t, "pat", cfg.Credentials().PersonalToken)
		assert.Equal(t, "", cfg.JwtKey())
	})

	t.Run("dotenv file", func(t *testing.T) {
		dir := writeConfig(t, "confluence:\n  url: https://wiki.corp.local\n", "")
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CONFLUENCE_PERSONAL_TOKEN=from-dotenv\n"), 0o600))
		// godotenv never overrides variables that are already set
		require.NoError(t, os.Unsetenv("CONFLUENCE_PERSONAL_TOKEN"))
		defer os.Unsetenv("CONFLUENCE_PERSONAL_TOKEN")

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", cfg.Credentials().PersonalToken)
	})

	t.Run("missing public file", func(t *testing.T) {
		_, err := Load(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := writeConfig(t, "confluence: [\n", "")
		_, err := Load(dir)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		public  Public
		private Private
		wantErr bool
	}{
		{
			name:    "cloud with basic auth",
			public:  Public{Confluence: Confluence{URL: "https://x.atlassian.net"}, Server: Server{Port: "8080"}},
			private: Private{Username: "u", APIToken: "t"},
		},
		{
			name:    "cloud with only pat",
			public:  Public{Confluence: Confluence{URL: "https://x.atlassian.net"}, Server: Server{Port: "8080"}},
			private: Private{PersonalToken: "p"},
			wantErr: true,
		},
		{
			name:    "server with pat",
			public:  Public{Confluence: Confluence{URL: "https://wiki.local", Deployment: DeploymentServer}, Server: Server{Port: "8080"}},
			private: Private{PersonalToken: "p"},
		},
		{
			name:    "server without credentials",
			public:  Public{Confluence: Confluence{URL: "https://wiki.local"}, Server: Server{Port: "8080"}},
			wantErr: true,
		},
		{
			name:    "missing url",
			public:  Public{Server: Server{Port: "8080"}},
			private: Private{PersonalToken: "p"},
			wantErr: true,
		},
		{
			name:    "unknown deployment",
			public:  Public{Confluence: Confluence{URL: "https://wiki.local", Deployment: "hybrid"}, Server: Server{Port: "8080"}},
			private: Private{PersonalToken: "p"},
			wantErr: true,
		},
		{
			name:    "bad log level",
			public:  Public{Confluence: Confluence{URL: "https://wiki.local"}, Server: Server{Port: "8080"}, Log: Log{Level: "loud"}},
			private: Private{PersonalToken: "p"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Public: tt.public, private: tt.private}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfluence_IsCloud(t *testing.T) {
	assert.True(t, Confluence{URL: "https://acme.atlassian.net/wiki"}.IsCloud())
	assert.True(t, Confluence{URL: "https://ACME.Atlassian.net"}.IsCloud())
	assert.False(t, Confluence{URL: "https://confluence.acme.com"}.IsCloud())
	assert.True(t, Confluence{URL: "https://confluence.acme.com", Deployment: DeploymentCloud}.IsCloud())
	assert.False(t, Confluence{URL: "https://acme.atlassian.net", Deployment: DeploymentServer}.IsCloud())
	assert.False(t, Confluence{URL: "://bad"}.IsCloud())
}

func TestMustLoad_Panics(t *testing.T) {
	clearEnv(t)
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for missing config, got none")
		}
	}()
	_ = MustLoad(t.TempDir())
}
