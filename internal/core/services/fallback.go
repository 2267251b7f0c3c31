package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/user_profile_aggregator/internal/apperrors"
)

// withFallback returns the result of live, or fallback() when live fails.
// A missing API key is routine and only logged at debug level.
func withFallback[T any](ctx context.Context, base *BaseService, source string, live func(context.Context) (T, error), fallback func() T) T {
	v, err := live(ctx)
	if err == nil {
		return v
	}

	if errors.Is(err, apperrors.ErrConfigurationGap) {
		base.LogDebug(ctx, "Upstream not configured, using static data", slog.String("source", source))
	} else {
		base.LogWarn(ctx, "Upstream lookup failed, using static data",
			slog.String("source", source),
			slog.String("error", err.Error()))
	}
	return fallback()
}
