package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"fileanissue/core"
	"fileanissue/core/log"
	"fileanissue/models"
	"fileanissue/usecases"
	"fileanissue/utils"
)

type WorkplaceEventsHandler struct {
	appSecret        string
	verifyToken      string
	requireSignature bool
	workplaceUseCase usecases.WorkplaceUseCaseInterface
}

func NewWorkplaceEventsHandler(
	appSecret string,
	verifyToken string,
	requireSignature bool,
	workplaceUseCase usecases.WorkplaceUseCaseInterface,
) *WorkplaceEventsHandler {
	return &WorkplaceEventsHandler{
		appSecret:        appSecret,
		verifyToken:      verifyToken,
		requireSignature: requireSignature,
		workplaceUseCase: workplaceUseCase,
	}
}

// verifySignature checks the x-hub-signature header. Unsigned deliveries pass with a
// warning unless signatures are required.
func (h *WorkplaceEventsHandler) verifySignature(r *http.Request, body []byte) error {
	err := utils.VerifyHubSignature(h.appSecret, body, r.Header.Get(utils.HubSignatureHeader))
	if errors.Is(err, core.ErrMissingSignature) && !h.requireSignature {
		log.WarnContext(r.Context(), "⚠️ Couldn't validate the signature - header missing, accepting delivery")
		return nil
	}
	return err
}

// HandleVerification answers the subscription handshake Workplace performs when the
// webhook is registered
func (h *WorkplaceEventsHandler) HandleVerification(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Get("hub.mode") != "subscribe" || query.Get("hub.verify_token") != h.verifyToken {
		log.ErrorContext(r.Context(), "❌ Failed validation. Make sure the validation tokens match.")
		w.WriteHeader(http.StatusForbidden)
		return
	}

	log.InfoContext(r.Context(), "✅ Validating webhook")
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(query.Get("hub.challenge"))); err != nil {
		log.ErrorContext(r.Context(), "❌ Failed to write challenge response", "error", err)
	}
}

// HandleMentionEvent acknowledges every correctly signed delivery with 200, since any
// other status makes Workplace redeliver and file duplicate issues.
func (h *WorkplaceEventsHandler) HandleMentionEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log.InfoContext(ctx, "📨 Workplace webhook received", "remote_addr", r.RemoteAddr)

	bodyBytes, err := readBody(w, r)
	if err != nil {
		log.ErrorContext(ctx, "❌ Failed to read request body", "error", err)
		w.WriteHeader(statusForReadError(err))
		return
	}

	if err := h.verifySignature(r, bodyBytes); err != nil {
		log.ErrorContext(ctx, "❌ Couldn't validate the request signature", "error", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var event models.MentionEvent
	if err := json.Unmarshal(bodyBytes, &event); err != nil {
		log.ErrorContext(ctx, "❌ Failed to parse webhook body", "error", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	if len(event.Entries) == 0 {
		log.WarnContext(ctx, "⚠️ Webhook callback without entries", "body", string(bodyBytes))
		w.WriteHeader(http.StatusOK)
		return
	}

	h.workplaceUseCase.ProcessMentionEvent(ctx, event)
	w.WriteHeader(http.StatusOK)
}

func (h *WorkplaceEventsHandler) SetupEndpoints(router *mux.Router) {
	log.Info("🚀 Registering Workplace webhook endpoints")

	router.HandleFunc("/webhook/facebook", h.HandleVerification).Methods("GET")
	router.HandleFunc("/webhook/facebook", h.HandleMentionEvent).Methods("POST")

	log.Info("✅ GET/POST /webhook/facebook endpoints registered")
}
