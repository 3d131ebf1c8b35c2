package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Skotchmaster/shop/internal/events"
	"github.com/Skotchmaster/shop/internal/logging"
	"github.com/Skotchmaster/shop/internal/service"
)

// failure maps a service error onto the response the client sees. The
// wrapped internal error is logged, never returned.
func failure(l *zerolog.Logger, event string, err error, notFound, failed string) error {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		l.Warn().Int("status", http.StatusBadRequest).Str("reason", "invalid body").Err(err).Msg(event)
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{
			"message": "invalid body",
			"errors":  verr.Fields,
		})
	case errors.Is(err, service.ErrValidation):
		l.Warn().Int("status", http.StatusBadRequest).Str("reason", "invalid body").Err(err).Msg(event)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	case errors.Is(err, service.ErrNotFound):
		l.Warn().Int("status", http.StatusNotFound).Str("reason", notFound).Err(err).Msg(event)
		return echo.NewHTTPError(http.StatusNotFound, notFound)
	case errors.Is(err, service.ErrConcurrency):
		l.Warn().Int("status", http.StatusBadRequest).Str("reason", "stale version").Err(err).Msg(event)
		return echo.NewHTTPError(http.StatusBadRequest, "this record has already been updated")
	case errors.Is(err, service.ErrInvalidCredentials):
		l.Warn().Int("status", http.StatusUnauthorized).Str("reason", "bad credentials").Msg(event)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, service.ErrPersistence):
		l.Error().Int("status", http.StatusBadRequest).Str("reason", failed).Err(err).Msg(event)
		return echo.NewHTTPError(http.StatusBadRequest, failed)
	default:
		l.Error().Int("status", http.StatusInternalServerError).Str("reason", failed).Err(err).Msg(event)
		return echo.NewHTTPError(http.StatusInternalServerError, failed)
	}
}

// parseID reads the :id path param. Ids are bounded to 63 bits, the
// range of the store's signed bigint keys.
func parseID(c echo.Context, l *zerolog.Logger, event string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		reason := "id is not an integer"
		if errors.Is(err, strconv.ErrRange) {
			reason = "id is out of range"
		}
		l.Warn().Int("status", http.StatusBadRequest).Str("reason", reason).Err(err).Msg(event)
		return 0, echo.NewHTTPError(http.StatusBadRequest, reason)
	}
	return uint(id), nil
}

func bindBody(c echo.Context, l *zerolog.Logger, event string, dst any) error {
	if err := c.Bind(dst); err != nil {
		l.Warn().Int("status", http.StatusBadRequest).Str("reason", "invalid body").Err(err).Msg(event)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	return nil
}

// publish sends a domain event. A failed publish is logged and otherwise
// ignored.
func publish(ctx context.Context, pub events.Publisher, topic string, id uint, event map[string]any) {
	if pub == nil {
		return
	}
	key := strconv.FormatUint(uint64(id), 10)
	if err := pub.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error().
			Err(err).
			Str("topic", topic).
			Interface("event", event["type"]).
			Msg("publish_event_failed")
	}
}
