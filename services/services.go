package services

import (
	"context"

	"github.com/samber/mo"

	"fileanissue/models"
)

// HandlesService resolves issue tracker logins to Workplace display names
type HandlesService interface {
	DisplayName(login string) mo.Option[string]
}

// TaskRunner executes fire-and-forget work off the request path
type TaskRunner interface {
	Submit(ctx context.Context, name string, task func(ctx context.Context) error)
}

// ActionsService performs the outbound side effects of the relay
type ActionsService interface {
	Like(ctx context.Context, id string) error
	Reply(ctx context.Context, id, message string) error
	CreateIssue(ctx context.Context, title, body, originID, permalinkURL string) (*models.CreatedIssue, error)
}
