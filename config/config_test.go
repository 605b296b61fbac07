package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "access-token")
	t.Setenv("APP_SECRET", "app-secret")
	t.Setenv("APP_TOKEN", "123|app-secret")
	t.Setenv("VERIFY_TOKEN", "verify-me")
	t.Setenv("SERVER_URL", "https://relay.example.com/")
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("GITHUB_REPO", "fbsamples/workplace-platform-samples")
}

// missingEnvFile keeps godotenv from picking up a developer .env
func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadConfig_Success(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("ACTION_WORKERS", "")
	t.Setenv("REQUIRE_SIGNATURE", "")
	t.Setenv("GITHUB_API_URL", "")
	t.Setenv("GITHUB_WEBHOOK_SECRET", "")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 10, cfg.ActionWorkers)
	assert.Equal(t, "access-token", cfg.WorkplaceConfig.AccessToken)
	assert.Equal(t, "123|app-secret", cfg.WorkplaceConfig.AppToken)
	assert.False(t, cfg.WorkplaceConfig.RequireSignature)
	assert.Equal(t, "fbsamples", cfg.GitHubConfig.Owner)
	assert.Equal(t, "workplace-platform-samples", cfg.GitHubConfig.RepoName)
	assert.Equal(t, "https://api.github.com/", cfg.GitHubConfig.APIURL)
	assert.Equal(t, "GKFileAnIssue", cfg.GitHubConfig.UserAgent)
	assert.Empty(t, cfg.GitHubConfig.WebhookSecret)
	assert.Equal(t, "https://relay.example.com/webhook/facebook", cfg.WebhookCallbackURL())
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ACTION_WORKERS", "3")
	t.Setenv("REQUIRE_SIGNATURE", "true")
	t.Setenv("GRAPH_API_URL", "http://localhost:9999")
	t.Setenv("GITHUB_WEBHOOK_SECRET", "hook-secret")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 3, cfg.ActionWorkers)
	assert.True(t, cfg.WorkplaceConfig.RequireSignature)
	assert.Equal(t, "http://localhost:9999", cfg.WorkplaceConfig.GraphAPIURL)
	assert.Equal(t, "hook-secret", cfg.GitHubConfig.WebhookSecret)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_SECRET", "")
	t.Setenv("GITHUB_TOKEN", "")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "APP_SECRET")
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
}

func TestLoadConfig_InvalidRepo(t *testing.T) {
	tests := []string{"no-slash", "/name", "owner/", "a/b/c"}
	for _, repo := range tests {
		t.Run(repo, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("GITHUB_REPO", repo)

			_, err := LoadConfig(missingEnvFile(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "owner/name")
		})
	}
}

func TestLoadConfig_InvalidWorkers(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ACTION_WORKERS", "zero")

	_, err := LoadConfig(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ACTION_WORKERS")
}
