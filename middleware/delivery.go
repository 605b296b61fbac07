package middleware

import (
	"net/http"

	"fileanissue/appctx"
	"fileanissue/core"
	"fileanissue/core/log"
)

const DeliveryIDHeader = "X-Delivery-Id"

// WithDeliveryID tags every request with a delivery ID so log lines of one webhook
// delivery, including its background tasks, can be correlated. An upstream
// X-Delivery-Id is kept when it is one of ours, otherwise GitHub's delivery GUID is
// reused when present.
func WithDeliveryID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deliveryID := r.Header.Get(DeliveryIDHeader)
		if deliveryID != "" && !core.IsValidID(deliveryID) {
			log.Warn("⚠️ Ignoring malformed delivery id", "header", DeliveryIDHeader)
			deliveryID = ""
		}
		if deliveryID == "" {
			deliveryID = r.Header.Get("X-GitHub-Delivery")
		}
		if deliveryID == "" {
			deliveryID = core.NewID("dlv")
		}

		w.Header().Set(DeliveryIDHeader, deliveryID)
		ctx := appctx.SetDeliveryID(r.Context(), deliveryID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
