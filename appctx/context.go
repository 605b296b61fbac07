package appctx

import (
	"context"
)

// Context key for storing request-scoped values
type contextKey string

const DeliveryIDContextKey contextKey = "delivery_id"

// SetDeliveryID tags the context with the ID of the inbound webhook delivery
func SetDeliveryID(ctx context.Context, deliveryID string) context.Context {
	return context.WithValue(ctx, DeliveryIDContextKey, deliveryID)
}

// GetDeliveryID extracts the delivery ID from the context
func GetDeliveryID(ctx context.Context) (string, bool) {
	deliveryID, ok := ctx.Value(DeliveryIDContextKey).(string)
	return deliveryID, ok && deliveryID != ""
}
