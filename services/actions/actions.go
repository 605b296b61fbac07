package actions

import (
	"context"
	"fmt"

	"fileanissue/clients"
	"fileanissue/core/log"
	"fileanissue/models"
	"fileanissue/utils"
)

// ActionsService wraps the outbound Workplace and GitHub mutations
type ActionsService struct {
	workplaceClient clients.WorkplaceClient
	issueClient     clients.IssueTrackerClient
}

func NewActionsService(workplaceClient clients.WorkplaceClient, issueClient clients.IssueTrackerClient) *ActionsService {
	return &ActionsService{
		workplaceClient: workplaceClient,
		issueClient:     issueClient,
	}
}

// Like likes a post or comment
func (s *ActionsService) Like(ctx context.Context, id string) error {
	log.InfoContext(ctx, "👍 Liking post or comment", "id", id)
	if err := s.workplaceClient.Like(ctx, id); err != nil {
		return fmt.Errorf("failed to like %s: %w", id, err)
	}
	return nil
}

// Reply comments message on a post or comment
func (s *ActionsService) Reply(ctx context.Context, id, message string) error {
	log.InfoContext(ctx, "💬 Replying to post or comment", "id", id, "message", message)
	if err := s.workplaceClient.Comment(ctx, id, message); err != nil {
		return fmt.Errorf("failed to reply to %s: %w", id, err)
	}
	return nil
}

// CreateIssue files an issue linking back to permalinkURL, then replies on originID with
// the issue URL. A failed reply is logged; the issue still counts as created.
func (s *ActionsService) CreateIssue(
	ctx context.Context,
	title, body, originID, permalinkURL string,
) (*models.CreatedIssue, error) {
	log.InfoContext(ctx, "📝 Creating GitHub issue", "title", title, "origin_id", originID, "permalink", permalinkURL)

	issue, err := s.issueClient.CreateIssue(ctx, title, body+utils.PermalinkFooter(permalinkURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create issue for %s: %w", originID, err)
	}

	log.InfoContext(ctx, "✅ Created GitHub issue", "url", issue.HTMLURL, "origin_id", originID)

	if err := s.Reply(ctx, originID, "Created issue: "+issue.HTMLURL); err != nil {
		log.ErrorContext(ctx, "❌ Failed to report created issue", "origin_id", originID, "error", err)
	}

	return issue, nil
}
