package http

import (
	"encoding/json"
	"net/http"

	"github.com/beteamly/beteamly-backend-go/internal/domain/settings"
	"github.com/beteamly/beteamly-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetMySettings(w http.ResponseWriter, r *http.Request)
	UpdateMySettings(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// GetMySettings implements SettingsHandler.
func (h *settingsHandlerImpl) GetMySettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetMySettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateMySettings implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateMySettings(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateBusinessSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.UpdateMySettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Business settings updated", result)
}
