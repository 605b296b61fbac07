package github

import (
	"context"
	"fmt"

	"fileanissue/core/log"
	"fileanissue/models"
	"fileanissue/services"
	"fileanissue/utils"
)

// GitHubUseCase reports issue activity back to the Workplace post an issue came from
type GitHubUseCase struct {
	actionsService services.ActionsService
	handlesService services.HandlesService
	taskRunner     services.TaskRunner
}

func NewGitHubUseCase(
	actionsService services.ActionsService,
	handlesService services.HandlesService,
	taskRunner services.TaskRunner,
) *GitHubUseCase {
	return &GitHubUseCase{
		actionsService: actionsService,
		handlesService: handlesService,
		taskRunner:     taskRunner,
	}
}

// ProcessIssueEvent schedules a status reply for non-creation events on relay-filed issues
func (u *GitHubUseCase) ProcessIssueEvent(ctx context.Context, event models.IssueEvent) {
	if event.Action == "" {
		log.InfoContext(ctx, "⏭️ GitHub event without action, skipping")
		return
	}
	if event.IsSelfTriggered() {
		log.InfoContext(ctx, "⏭️ Issue opened by this relay, not echoing back", "issue", event.IssueNumber)
		return
	}

	postID, ok := utils.ExtractPermalinkID(event.IssueBody).Get()
	if !ok {
		log.InfoContext(ctx, "⏭️ Issue body has no Workplace permalink, skipping", "issue", event.IssueNumber, "action", event.Action)
		return
	}

	message := StatusMessage(event.Action, u.handlesService.DisplayName(event.SenderLogin).OrEmpty())
	log.InfoContext(ctx, "📨 Relaying issue activity", "issue", event.IssueNumber, "action", event.Action, "post_id", postID)

	u.taskRunner.Submit(ctx, "issue_event_reply", func(ctx context.Context) error {
		return u.actionsService.Reply(ctx, postID, message)
	})
}

// StatusMessage renders the reply posted for an issue action; Workplace turns @[name] into a mention
func StatusMessage(action, displayName string) string {
	return fmt.Sprintf("Issue %s by @[%s].", action, displayName)
}
