package handlers

import (
	"errors"
	"io"
	"net/http"
)

// maxWebhookBodyBytes caps webhook deliveries; real payloads are a few KiB
const maxWebhookBodyBytes = 1 << 20

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
}

// statusForReadError answers oversized bodies with 413. Other read failures are
// acknowledged so the sender does not redeliver.
func statusForReadError(err error) int {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusOK
}
