package usecases

import (
	"context"

	"fileanissue/models"
)

// WorkplaceUseCaseInterface defines the Workplace-side relay operations
type WorkplaceUseCaseInterface interface {
	ProcessMentionEvent(ctx context.Context, event models.MentionEvent)
	EnsureSubscriptions(ctx context.Context) error
}

// GitHubUseCaseInterface defines the GitHub-side relay operations
type GitHubUseCaseInterface interface {
	ProcessIssueEvent(ctx context.Context, event models.IssueEvent)
}
