package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/casavera/fx_backend/internal/apperrors"
	"github.com/casavera/fx_backend/internal/core/domain"
	portssvc "github.com/casavera/fx_backend/internal/core/ports/services"
	"github.com/casavera/fx_backend/internal/dto"
	"github.com/casavera/fx_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests related to the exchange-rate table.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// RegisterRateRoutes registers routes related to exchange rates.
func RegisterRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
		rates.POST("/refresh", h.refreshRates)
		rates.GET("/history", h.listRateHistory)
	}
}

// getRates godoc
// @Summary Get the current rate table
// @Description Returns the freshest known EUR-based exchange rates. updatedAt is null while built-in defaults are still active.
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateTableResponse
// @Router /rates [get]
func (h *rateHandler) getRates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToRateTableResponse(h.rateService.Snapshot()))
}

// refreshRates godoc
// @Summary Force a rate refresh
// @Description Runs one fetch-merge-persist cycle immediately and returns the resulting table. A failed fetch leaves the table untouched.
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateTableResponse
// @Router /rates/refresh [post]
func (h *rateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to refresh rates")

	h.rateService.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToRateTableResponse(h.rateService.Snapshot()))
}

// listRateHistory godoc
// @Summary List persisted rate observations
// @Description Pages through the refresh history of one currency, newest first
// @Tags rates
// @Produce  json
// @Param   currency query string true "Currency Code (3 letters)"
// @Param   limit query int false "Page size (default 100, max 500)"
// @Param   pageToken query string false "Continuation token from a previous page"
// @Success 200 {object} dto.ListRateHistoryResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Router /rates/history [get]
func (h *rateHandler) listRateHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currency := strings.ToUpper(c.Query("currency"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	pageToken := c.Query("pageToken")

	points, nextToken, err := h.rateService.ListRateHistory(c.Request.Context(), domain.CurrencyCode(currency), limit, pageToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list rate history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rate history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateHistoryResponse(points, nextToken))
}
