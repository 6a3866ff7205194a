package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventsHandlerParams holds dependencies for EventsHandler, injected by Fx.
type EventsHandlerParams struct {
	fx.In

	Notifier service.ChangeNotifier
	Logger   *slog.Logger
}

// EventsHandler streams change events to admin consoles over SSE, so open
// browser tabs refresh when any context mutates data.
type EventsHandler struct {
	notifier service.ChangeNotifier
	logger   *slog.Logger
}

// NewEventsHandler is the constructor for EventsHandler
func NewEventsHandler(params EventsHandlerParams) *EventsHandler {
	return &EventsHandler{
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

// StreamEvents handles a server-sent events subscription. The connection
// stays open until the client goes away.
func (h *EventsHandler) StreamEvents(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	c.Response().Header().Set(echo.HeaderConnection, "keep-alive")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Flush()

	// Buffered so a slow client drops events instead of blocking dispatch.
	events := make(chan []byte, 64)

	sub := h.notifier.Subscribe(func(kind string, payload json.RawMessage) {
		frame, err := json.Marshal(map[string]any{
			"kind":    kind,
			"payload": payload,
		})
		if err != nil {
			return
		}

		select {
		case events <- frame:
		default:
		}
	})
	defer h.notifier.Unsubscribe(sub)

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case frame := <-events:
			if _, err := fmt.Fprintf(c.Response(), "data: %s\n\n", frame); err != nil {
				return nil
			}
			c.Response().Flush()
		}
	}
}
