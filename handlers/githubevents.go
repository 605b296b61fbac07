package handlers

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/http"

	gh "github.com/google/go-github/v72/github"
	"github.com/gorilla/mux"

	"fileanissue/core/log"
	"fileanissue/models"
	"fileanissue/usecases"
)

type GitHubEventsHandler struct {
	// webhookSecret is optional; deliveries are only signature-checked when it is set
	webhookSecret []byte
	githubUseCase usecases.GitHubUseCaseInterface
}

func NewGitHubEventsHandler(webhookSecret string, githubUseCase usecases.GitHubUseCaseInterface) *GitHubEventsHandler {
	var secret []byte
	if webhookSecret != "" {
		secret = []byte(webhookSecret)
	}
	return &GitHubEventsHandler{
		webhookSecret: secret,
		githubUseCase: githubUseCase,
	}
}

// HandleIssueEvent accepts form-encoded (payload=<json>) and raw JSON deliveries and
// always answers 200 once the optional signature check passes.
func (h *GitHubEventsHandler) HandleIssueEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log.InfoContext(ctx, "📨 GitHub webhook received", "event", gh.WebHookType(r), "method", r.Method)

	bodyBytes, err := readBody(w, r)
	if err != nil {
		log.ErrorContext(ctx, "❌ Failed to read request body", "error", err)
		w.WriteHeader(statusForReadError(err))
		return
	}

	if len(h.webhookSecret) > 0 {
		signature := r.Header.Get(gh.SHA256SignatureHeader)
		if signature == "" {
			signature = r.Header.Get(gh.SHA1SignatureHeader)
		}
		if err := gh.ValidateSignature(signature, bodyBytes, h.webhookSecret); err != nil {
			log.ErrorContext(ctx, "❌ GitHub signature verification failed", "error", err)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}

	contentType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		contentType = "application/x-www-form-urlencoded"
	}
	payload, err := gh.ValidatePayloadFromBody(contentType, bytes.NewReader(bodyBytes), "", nil)
	if err != nil || len(payload) == 0 {
		log.WarnContext(ctx, "⚠️ GitHub delivery without payload", "content_type", contentType, "error", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	var ghEvent gh.IssuesEvent
	if err := json.Unmarshal(payload, &ghEvent); err != nil {
		log.ErrorContext(ctx, "❌ Failed to parse GitHub payload", "error", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	h.githubUseCase.ProcessIssueEvent(ctx, models.IssueEvent{
		Action:      ghEvent.GetAction(),
		IssueNumber: ghEvent.GetIssue().GetNumber(),
		IssueBody:   ghEvent.GetIssue().GetBody(),
		SenderLogin: ghEvent.GetSender().GetLogin(),
	})
	w.WriteHeader(http.StatusOK)
}

func (h *GitHubEventsHandler) SetupEndpoints(router *mux.Router) {
	log.Info("🚀 Registering GitHub webhook endpoints")

	router.HandleFunc("/webhook/github", h.HandleIssueEvent)

	log.Info("✅ /webhook/github endpoint registered for all methods")
}
