package workplace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fileanissue/clients"
	"fileanissue/core"
	"fileanissue/models"
)

// WorkplaceClient implements the clients.WorkplaceClient interface against the Graph API
type WorkplaceClient struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	// appToken authenticates app-level calls such as /app/subscriptions
	appToken string
}

// graphErrorResponse is the error envelope the Graph API returns on failures
type graphErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// NewWorkplaceClient creates a Graph API client rooted at baseURL
func NewWorkplaceClient(httpClient *http.Client, baseURL, accessToken, appToken string) clients.WorkplaceClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &WorkplaceClient{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		appToken:    appToken,
	}
}

// GetContent fetches a post or comment with the requested fields
func (c *WorkplaceClient) GetContent(ctx context.Context, id string, fields []string) (*models.FetchedContent, error) {
	query := url.Values{}
	if len(fields) > 0 {
		query.Set("fields", strings.Join(fields, ","))
	}

	body, err := c.do(ctx, http.MethodGet, "/"+url.PathEscape(id), query, c.accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", id, err)
	}

	var content models.FetchedContent
	if err := json.Unmarshal(body, &content); err != nil {
		return nil, fmt.Errorf("failed to decode content %s: %w", id, err)
	}

	return &content, nil
}

// Like likes a post or comment as the integration
func (c *WorkplaceClient) Like(ctx context.Context, id string) error {
	if _, err := c.do(ctx, http.MethodPost, "/"+url.PathEscape(id)+"/likes", nil, c.accessToken); err != nil {
		return fmt.Errorf("failed to like %s: %w", id, err)
	}
	return nil
}

// Comment posts message as a reply on a post or comment
func (c *WorkplaceClient) Comment(ctx context.Context, id, message string) error {
	query := url.Values{"message": {message}}
	if _, err := c.do(ctx, http.MethodPost, "/"+url.PathEscape(id)+"/comments", query, c.accessToken); err != nil {
		return fmt.Errorf("failed to comment on %s: %w", id, err)
	}
	return nil
}

// EnableSubscriptions enables page subscriptions for this app using the access token
func (c *WorkplaceClient) EnableSubscriptions(ctx context.Context) error {
	if _, err := c.do(ctx, http.MethodPost, "/me/subscribed_apps", nil, c.accessToken); err != nil {
		return fmt.Errorf("failed to enable subscriptions: %w", err)
	}
	return nil
}

// SubscribeWebhook registers callbackURL for mention updates. Requires the app token.
func (c *WorkplaceClient) SubscribeWebhook(ctx context.Context, callbackURL, verifyToken string) error {
	query := url.Values{
		"object":         {"page"},
		"fields":         {"mention"},
		"include_values": {"true"},
		"verify_token":   {verifyToken},
		"callback_url":   {callbackURL},
	}
	if _, err := c.do(ctx, http.MethodPost, "/app/subscriptions", query, c.appToken); err != nil {
		return fmt.Errorf("failed to subscribe page webhook: %w", err)
	}
	return nil
}

func (c *WorkplaceClient) do(ctx context.Context, method, path string, query url.Values, token string) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr error
		var graphErr graphErrorResponse
		if json.Unmarshal(body, &graphErr) == nil && graphErr.Error.Message != "" {
			apiErr = fmt.Errorf("graph API error: status %d, code %d: %s",
				resp.StatusCode, graphErr.Error.Code, graphErr.Error.Message)
		} else {
			apiErr = fmt.Errorf("graph API error: status %d, body: %s", resp.StatusCode, string(body))
		}
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %w", core.ErrNotFound, apiErr)
		}
		return nil, apiErr
	}

	return body, nil
}
