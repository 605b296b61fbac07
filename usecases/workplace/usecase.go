package workplace

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"fileanissue/clients"
	"fileanissue/core"
	"fileanissue/core/log"
	"fileanissue/models"
	"fileanissue/services"
)

const defaultIssueTitle = "New Issue"

var (
	parentPostFields = []string{"message", "permalink_url"}
	postFields       = []string{"message", "from{name,email}", "formatting", "permalink_url"}
)

// WorkplaceUseCase turns Workplace mentions into GitHub issues
type WorkplaceUseCase struct {
	workplaceClient clients.WorkplaceClient
	actionsService  services.ActionsService
	taskRunner      services.TaskRunner
	callbackURL     string
	verifyToken     string
}

func NewWorkplaceUseCase(
	workplaceClient clients.WorkplaceClient,
	actionsService services.ActionsService,
	taskRunner services.TaskRunner,
	callbackURL string,
	verifyToken string,
) *WorkplaceUseCase {
	return &WorkplaceUseCase{
		workplaceClient: workplaceClient,
		actionsService:  actionsService,
		taskRunner:      taskRunner,
		callbackURL:     callbackURL,
		verifyToken:     verifyToken,
	}
}

// ProcessMentionEvent schedules one task per actionable change and returns without
// waiting for any outbound call.
func (u *WorkplaceUseCase) ProcessMentionEvent(ctx context.Context, event models.MentionEvent) {
	for _, entry := range event.Entries {
		for _, change := range entry.Changes {
			if !change.IsActionable() {
				log.InfoContext(ctx, "⏭️ Not a mention webhook, skipping", "field", change.Field)
				continue
			}

			value := change.Value
			switch value.Item {
			case models.ItemComment:
				if value.CommentID == "" || value.PostID == "" {
					log.WarnContext(ctx, "⚠️ Comment mention without comment_id or post_id", "comment_id", value.CommentID, "post_id", value.PostID)
					continue
				}
				log.InfoContext(ctx, "📨 Mentioned in comment", "comment_id", value.CommentID, "message", value.Message)
				u.taskRunner.Submit(ctx, "mention_comment", func(ctx context.Context) error {
					return u.handleCommentMention(ctx, value)
				})
			case models.ItemPost:
				if value.PostID == "" {
					log.WarnContext(ctx, "⚠️ Post mention without post_id")
					continue
				}
				log.InfoContext(ctx, "📨 Mentioned in post", "post_id", value.PostID)
				u.taskRunner.Submit(ctx, "mention_post", func(ctx context.Context) error {
					return u.handlePostMention(ctx, value)
				})
			default:
				log.InfoContext(ctx, "⏭️ Unsupported mention item, skipping", "item", value.Item)
			}
		}
	}
}

func (u *WorkplaceUseCase) handleCommentMention(ctx context.Context, value models.MentionValue) error {
	post, err := u.fetchContent(ctx, value.PostID, parentPostFields)
	if errors.Is(err, core.ErrMissingField) || core.IsNotFoundError(err) {
		log.WarnContext(ctx, "⚠️ Skipping comment mention", "comment_id", value.CommentID, "error", err)
		return nil
	}
	if err != nil {
		return err
	}

	u.like(ctx, value.CommentID)

	title := value.Message
	if title == "" {
		title = defaultIssueTitle
	}
	_, err = u.actionsService.CreateIssue(ctx, title, post.Message, value.CommentID, post.PermalinkURL)
	return err
}

func (u *WorkplaceUseCase) handlePostMention(ctx context.Context, value models.MentionValue) error {
	post, err := u.fetchContent(ctx, value.PostID, postFields)
	if errors.Is(err, core.ErrMissingField) || core.IsNotFoundError(err) {
		log.WarnContext(ctx, "⚠️ Skipping post mention", "post_id", value.PostID, "error", err)
		return nil
	}
	if err != nil {
		return err
	}

	originID := post.ID
	if originID == "" {
		originID = value.PostID
	}

	u.like(ctx, originID)

	_, err = u.actionsService.CreateIssue(ctx, defaultIssueTitle, post.Message, originID, post.PermalinkURL)
	return err
}

func (u *WorkplaceUseCase) fetchContent(ctx context.Context, id string, fields []string) (*models.FetchedContent, error) {
	content, err := u.workplaceClient.GetContent(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content %s: %w", id, err)
	}
	if content.Message == "" {
		return nil, fmt.Errorf("content %s has no message: %w", id, core.ErrMissingField)
	}
	return content, nil
}

// like failures never block issue creation
func (u *WorkplaceUseCase) like(ctx context.Context, id string) {
	if err := u.actionsService.Like(ctx, id); err != nil {
		log.ErrorContext(ctx, "❌ Failed to like post or comment", "id", id, "error", err)
	}
}

// EnsureSubscriptions enables page subscriptions and registers the mention webhook.
// Both calls always run; the first failure is returned.
func (u *WorkplaceUseCase) EnsureSubscriptions(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		if err := u.workplaceClient.EnableSubscriptions(ctx); err != nil {
			log.Error("❌ Enabling subscriptions failed", "error", err)
			return err
		}
		log.Info("✅ Enabled page subscriptions")
		return nil
	})

	g.Go(func() error {
		if err := u.workplaceClient.SubscribeWebhook(ctx, u.callbackURL, u.verifyToken); err != nil {
			log.Error("❌ Subscribing page webhook failed", "error", err)
			return err
		}
		log.Info("✅ Subscribed page webhook", "callback_url", u.callbackURL)
		return nil
	})

	return g.Wait()
}
