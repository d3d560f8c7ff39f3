package http

import (
	"github.com/propflow/leadboard/internal/logger"
	"github.com/propflow/leadboard/internal/settings"
)

// Handler serves the dashboard settings API. It holds no state of its own:
// every request goes through the settings store's load-modify-save cycle.
type Handler struct {
	store *settings.Store

	logger *logger.Logger
}

func NewHandler(store *settings.Store, logger *logger.Logger) *Handler {
	logger.Info().Str("settings_path", store.Path()).Msg("http handler created")
	return &Handler{
		store:  store,
		logger: logger,
	}
}
