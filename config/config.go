package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"fileanissue/core/log"
)

type WorkplaceConfig struct {
	AccessToken string
	AppSecret   string
	AppToken    string
	VerifyToken string
	GraphAPIURL string
	// RequireSignature rejects deliveries without an x-hub-signature header
	RequireSignature bool
}

type GitHubConfig struct {
	Token       string
	Repo        string
	Owner       string
	RepoName    string
	APIURL      string
	UserAgent   string
	HandlesFile string

	// WebhookSecret enables signature checks on /webhook/github when set
	WebhookSecret string
}

type AlertConfig struct {
	WebhookURL string
	LogsURL    string
}

type AppConfig struct {
	ServerURL          string
	Port               string // Optional with default "5000"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	LogLevel           string
	ActionWorkers      int

	WorkplaceConfig WorkplaceConfig
	GitHubConfig    GitHubConfig
	AlertConfig     AlertConfig
}

// WebhookCallbackURL is the URL Workplace delivers mention webhooks to
func (c *AppConfig) WebhookCallbackURL() string {
	return strings.TrimRight(c.ServerURL, "/") + "/webhook/facebook"
}

// LoadConfig reads the configuration from envFiles (or .env) and the process environment
func LoadConfig(envFiles ...string) (*AppConfig, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Warn("⚠️ Could not load .env file, continuing with system env vars")
	}

	required := map[string]string{}
	var missing []string
	for _, key := range []string{
		"ACCESS_TOKEN",
		"APP_SECRET",
		"APP_TOKEN",
		"VERIFY_TOKEN",
		"SERVER_URL",
		"GITHUB_TOKEN",
		"GITHUB_REPO",
	} {
		value, err := getEnvRequired(key)
		if err != nil {
			missing = append(missing, key)
			continue
		}
		required[key] = value
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing config values: %s", strings.Join(missing, ", "))
	}

	owner, repoName, err := splitRepo(required["GITHUB_REPO"])
	if err != nil {
		return nil, err
	}

	actionWorkers, err := strconv.Atoi(getEnvWithDefault("ACTION_WORKERS", "10"))
	if err != nil || actionWorkers < 1 {
		return nil, fmt.Errorf("ACTION_WORKERS must be a positive integer")
	}

	config := &AppConfig{
		ServerURL:          required["SERVER_URL"],
		Port:               getEnvWithDefault("PORT", "5000"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		LogLevel:           getEnvWithDefault("LOG_LEVEL", "info"),
		ActionWorkers:      actionWorkers,

		WorkplaceConfig: WorkplaceConfig{
			AccessToken:      required["ACCESS_TOKEN"],
			AppSecret:        required["APP_SECRET"],
			AppToken:         required["APP_TOKEN"],
			VerifyToken:      required["VERIFY_TOKEN"],
			GraphAPIURL:      getEnvWithDefault("GRAPH_API_URL", "https://graph.facebook.com"),
			RequireSignature: getEnvWithDefault("REQUIRE_SIGNATURE", "false") == "true",
		},

		GitHubConfig: GitHubConfig{
			Token:         required["GITHUB_TOKEN"],
			Repo:          required["GITHUB_REPO"],
			Owner:         owner,
			RepoName:      repoName,
			APIURL:        getEnvWithDefault("GITHUB_API_URL", "https://api.github.com/"),
			UserAgent:     getEnvWithDefault("GITHUB_USER_AGENT", "GKFileAnIssue"),
			HandlesFile:   getEnvWithDefault("GITHUB_HANDLES_FILE", "githubhandles.json"),
			WebhookSecret: os.Getenv("GITHUB_WEBHOOK_SECRET"),
		},

		AlertConfig: AlertConfig{
			WebhookURL: os.Getenv("ALERT_WEBHOOK_URL"),
			LogsURL:    os.Getenv("SERVER_LOGS_URL"),
		},
	}

	if !config.WorkplaceConfig.RequireSignature {
		log.Warn("⚠️ REQUIRE_SIGNATURE is off - unsigned Workplace deliveries will be accepted")
	}
	if config.AlertConfig.WebhookURL == "" {
		log.Info("⚠️ ALERT_WEBHOOK_URL not set - error alerts will only be logged")
	}

	return config, nil
}

func splitRepo(repo string) (string, string, error) {
	owner, name, found := strings.Cut(repo, "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("GITHUB_REPO must be in owner/name form, got %q", repo)
	}
	return owner, name, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
