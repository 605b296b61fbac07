package log

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"fileanissue/appctx"
)

var logger *slog.Logger

func init() {
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// InfoContext logs with the delivery ID carried by ctx, if any.
func InfoContext(ctx context.Context, msg string, args ...any) {
	logger.Info(msg, withDelivery(ctx, args)...)
}

func WarnContext(ctx context.Context, msg string, args ...any) {
	logger.Warn(msg, withDelivery(ctx, args)...)
}

func ErrorContext(ctx context.Context, msg string, args ...any) {
	logger.Error(msg, withDelivery(ctx, args)...)
}

func withDelivery(ctx context.Context, args []any) []any {
	if deliveryID, ok := appctx.GetDeliveryID(ctx); ok {
		return append([]any{"delivery_id", deliveryID}, args...)
	}
	return args
}

func SetLevel(level slog.Level) {
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

// ParseLevel maps a LOG_LEVEL value to a slog level, defaulting to info.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
