package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/casavera/fx_backend/internal/core/ports/services"
	"github.com/casavera/fx_backend/internal/dto"
	"github.com/casavera/fx_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// renderHandler handles parse and render requests, the consumer-facing side
// of the normalization engine.
type renderHandler struct {
	renderService portssvc.RenderSvcFacade
}

func newRenderHandler(rs portssvc.RenderSvcFacade) *renderHandler {
	return &renderHandler{
		renderService: rs,
	}
}

// RegisterRenderRoutes registers parse and render routes.
func RegisterRenderRoutes(rg *gin.RouterGroup, renderService portssvc.RenderSvcFacade) {
	h := newRenderHandler(renderService)

	render := rg.Group("/render")
	{
		render.POST("/money", h.renderMoney)
		render.POST("/budget", h.renderBudget)
		render.POST("/surface", h.renderSurface)
	}
	parse := rg.Group("/parse")
	{
		parse.POST("/budget", h.parseBudget)
		parse.POST("/amount", h.parseAmount)
	}
}

// renderMoney godoc
// @Summary Render a canonical EUR amount
// @Description Converts to the active display currency and formats with locale grouping and symbol placement
// @Tags render
// @Accept  json
// @Produce  json
// @Param   request body dto.RenderMoneyRequest true "Amount to render"
// @Success 200 {object} dto.RenderTextResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /render/money [post]
func (h *renderHandler) renderMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RenderMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	minFrac, maxFrac := fractionBounds(req.MinFractionDigits, req.MaxFractionDigits)
	text, err := h.renderService.MoneyText(c.Request.Context(), *req.AmountEUR, minFrac, maxFrac, portssvc.RenderOptions{
		UserID:       req.UserID,
		CurrencyCode: req.CurrencyCode,
	})
	if err != nil {
		logger.Error("Failed to render money", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render amount"})
		return
	}
	c.JSON(http.StatusOK, dto.RenderTextResponse{Text: text})
}

// renderBudget godoc
// @Summary Re-render a free-text budget
// @Description Re-renders budget text in the active display currency, keeping the range/open-ended shape. Unparseable text comes back unchanged.
// @Tags render
// @Accept  json
// @Produce  json
// @Param   request body dto.RenderBudgetRequest true "Budget text to render"
// @Success 200 {object} dto.RenderTextResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /render/budget [post]
func (h *renderHandler) renderBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RenderBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	text, err := h.renderService.BudgetText(c.Request.Context(), req.Text, portssvc.RenderOptions{
		UserID:       req.UserID,
		CurrencyCode: req.CurrencyCode,
	})
	if err != nil {
		logger.Error("Failed to render budget", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render budget"})
		return
	}
	c.JSON(http.StatusOK, dto.RenderTextResponse{Text: text})
}

// renderSurface godoc
// @Summary Render a square-meter area
// @Description Renders the area in m² or sq ft depending on the active unit system
// @Tags render
// @Accept  json
// @Produce  json
// @Param   request body dto.RenderSurfaceRequest true "Area to render"
// @Success 200 {object} dto.RenderTextResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /render/surface [post]
func (h *renderHandler) renderSurface(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RenderSurfaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	text, err := h.renderService.SurfaceText(c.Request.Context(), *req.SquareMeters, portssvc.RenderOptions{
		UserID:     req.UserID,
		UnitSystem: req.UnitSystem,
	})
	if err != nil {
		logger.Error("Failed to render surface", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render surface"})
		return
	}
	c.JSON(http.StatusOK, dto.RenderTextResponse{Text: text})
}

// parseBudget godoc
// @Summary Parse budget text
// @Description Parses free budget text into canonical EUR bounds. Sides that do not parse are null.
// @Tags parse
// @Accept  json
// @Produce  json
// @Param   request body dto.ParseBudgetRequest true "Budget text"
// @Success 200 {object} dto.ParseBudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /parse/budget [post]
func (h *renderHandler) parseBudget(c *gin.Context) {
	var req dto.ParseBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expr := h.renderService.ParseBudget(c.Request.Context(), req.Text)
	c.JSON(http.StatusOK, dto.ToParseBudgetResponse(expr))
}

// parseAmount godoc
// @Summary Parse display-currency text
// @Description Normalizes numeric text typed in the active display currency and converts it to canonical EUR
// @Tags parse
// @Accept  json
// @Produce  json
// @Param   request body dto.ParseAmountRequest true "Amount text"
// @Success 200 {object} dto.ParseAmountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /parse/amount [post]
func (h *renderHandler) parseAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ParseAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, ok, err := h.renderService.ParseAmount(c.Request.Context(), req.Text, portssvc.RenderOptions{
		UserID:       req.UserID,
		CurrencyCode: req.CurrencyCode,
	})
	if err != nil {
		logger.Error("Failed to parse amount", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse amount"})
		return
	}
	c.JSON(http.StatusOK, dto.ParseAmountResponse{AmountEUR: amount, Parseable: ok})
}

// fractionBounds applies the 2/2 default and keeps min <= max.
func fractionBounds(minReq, maxReq *int) (int, int) {
	minFrac, maxFrac := 2, 2
	if minReq != nil {
		minFrac = *minReq
	}
	if maxReq != nil {
		maxFrac = *maxReq
	}
	if maxFrac < minFrac {
		maxFrac = minFrac
	}
	return minFrac, maxFrac
}
