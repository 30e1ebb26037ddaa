package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/casavera/fx_backend/internal/apperrors"
	portssvc "github.com/casavera/fx_backend/internal/core/ports/services"
	"github.com/casavera/fx_backend/internal/dto"
	"github.com/casavera/fx_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// preferenceHandler handles HTTP requests related to display preferences.
type preferenceHandler struct {
	preferenceService portssvc.PreferenceSvcFacade
}

func newPreferenceHandler(ps portssvc.PreferenceSvcFacade) *preferenceHandler {
	return &preferenceHandler{
		preferenceService: ps,
	}
}

// RegisterPreferenceRoutes registers routes related to display preferences.
func RegisterPreferenceRoutes(rg *gin.RouterGroup, preferenceService portssvc.PreferenceSvcFacade) {
	h := newPreferenceHandler(preferenceService)

	users := rg.Group("/users")
	{
		users.GET("/:userID/preferences", h.getPreference)
		users.PUT("/:userID/preferences", h.updatePreference)
	}
}

// getPreference godoc
// @Summary Get a user's display preference
// @Description Returns the stored currency/unit selection, degraded to (EUR, metric) when nothing valid is stored
// @Tags preferences
// @Produce  json
// @Param   userID path string true "User ID"
// @Success 200 {object} dto.PreferenceResponse
// @Router /users/{userID}/preferences [get]
func (h *preferenceHandler) getPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	pref, err := h.preferenceService.GetPreference(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get preference", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve preference"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferenceResponse(&pref))
}

// updatePreference godoc
// @Summary Update a user's display preference
// @Description Sets the display currency and unit system; both must come from the supported sets
// @Tags preferences
// @Accept  json
// @Produce  json
// @Param   userID path string true "User ID"
// @Param   preference body dto.UpdatePreferenceRequest true "Preference"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /users/{userID}/preferences [put]
func (h *preferenceHandler) updatePreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	var req dto.UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePreference", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pref, err := h.preferenceService.SetPreference(c.Request.Context(), userID, req.CurrencyCode, req.UnitSystem)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating preference", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update preference", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preference"})
		}
		return
	}

	logger.Info("Preference updated",
		slog.String("user_id", userID),
		slog.String("currency_code", string(pref.CurrencyCode)),
		slog.String("unit_system", string(pref.UnitSystem)),
	)
	c.JSON(http.StatusOK, dto.ToPreferenceResponse(pref))
}
