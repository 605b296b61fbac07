package clients

import (
	"context"

	"fileanissue/models"
)

// WorkplaceClient talks to the Workplace Graph API
type WorkplaceClient interface {
	GetContent(ctx context.Context, id string, fields []string) (*models.FetchedContent, error)
	Like(ctx context.Context, id string) error
	Comment(ctx context.Context, id, message string) error
	EnableSubscriptions(ctx context.Context) error
	SubscribeWebhook(ctx context.Context, callbackURL, verifyToken string) error
}

// IssueTrackerClient files issues in the configured repository
type IssueTrackerClient interface {
	CreateIssue(ctx context.Context, title, body string) (*models.CreatedIssue, error)
}
