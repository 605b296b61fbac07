package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v72/github"

	"fileanissue/clients"
	"fileanissue/models"
)

// GitHubClient implements the clients.IssueTrackerClient interface
type GitHubClient struct {
	client *gh.Client
	owner  string
	repo   string
}

// NewGitHubClient creates a client that files issues in owner/repo.
// apiURL overrides the REST API root, which must end in a slash for go-github.
func NewGitHubClient(httpClient *http.Client, apiURL, token, userAgent, owner, repo string) (clients.IssueTrackerClient, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	client := gh.NewClient(httpClient).WithAuthToken(token)
	if userAgent != "" {
		client.UserAgent = userAgent
	}

	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
		}
		client.BaseURL = baseURL
	}

	return &GitHubClient{
		client: client,
		owner:  owner,
		repo:   repo,
	}, nil
}

// CreateIssue files a new issue in the configured repository
func (c *GitHubClient) CreateIssue(ctx context.Context, title, body string) (*models.CreatedIssue, error) {
	issue, _, err := c.client.Issues.Create(ctx, c.owner, c.repo, &gh.IssueRequest{
		Title: gh.Ptr(title),
		Body:  gh.Ptr(body),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create issue in %s/%s: %w", c.owner, c.repo, err)
	}

	return &models.CreatedIssue{
		ID:      issue.GetID(),
		Number:  issue.GetNumber(),
		HTMLURL: issue.GetHTMLURL(),
	}, nil
}
