package dto

import "github.com/casavera/fx_backend/internal/core/domain"

// RenderMoneyRequest asks for a canonical EUR amount rendered in the active
// display currency. Currency falls back to the user's preference, then EUR.
// The amount is a pointer so a legitimate zero survives the required check.
type RenderMoneyRequest struct {
	AmountEUR         *float64 `json:"amountEur" binding:"required"`
	CurrencyCode      string   `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
	UserID            string   `json:"userID"`
	MinFractionDigits *int     `json:"minFractionDigits" binding:"omitempty,gte=0,lte=8"`
	MaxFractionDigits *int     `json:"maxFractionDigits" binding:"omitempty,gte=0,lte=8"`
}

// RenderBudgetRequest asks for a free-text budget re-rendered in the active
// display currency.
type RenderBudgetRequest struct {
	Text         string `json:"text" binding:"required"`
	CurrencyCode string `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
	UserID       string `json:"userID"`
}

// RenderSurfaceRequest asks for a square-meter area rendered under the active
// unit system. The area is a pointer for the same zero-value reason as
// RenderMoneyRequest.
type RenderSurfaceRequest struct {
	SquareMeters *float64 `json:"squareMeters" binding:"required"`
	UnitSystem   string   `json:"unitSystem" binding:"omitempty,oneof=metric imperial"`
	UserID       string   `json:"userID"`
}

// RenderTextResponse carries any rendered string.
type RenderTextResponse struct {
	Text string `json:"text"`
}

// ParseBudgetRequest carries free budget text to parse into canonical EUR.
type ParseBudgetRequest struct {
	Text string `json:"text" binding:"required"`
}

// ParseBudgetResponse is the structured form of a budget expression. Sides
// that did not parse are null; both null means the text was unparseable.
type ParseBudgetResponse struct {
	LowEUR     *float64 `json:"lowEur"`
	HighEUR    *float64 `json:"highEur"`
	HasPlus    bool     `json:"hasPlus"`
	Parseable  bool     `json:"parseable"`
}

// ToParseBudgetResponse converts a domain.BudgetExpression to the DTO.
func ToParseBudgetResponse(expr domain.BudgetExpression) ParseBudgetResponse {
	return ParseBudgetResponse{
		LowEUR:    expr.Low,
		HighEUR:   expr.High,
		HasPlus:   expr.HasPlus,
		Parseable: expr.Parseable(),
	}
}

// ParseAmountRequest carries display-currency text to convert into EUR.
type ParseAmountRequest struct {
	Text         string `json:"text" binding:"required"`
	CurrencyCode string `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
	UserID       string `json:"userID"`
}

// ParseAmountResponse returns the canonical EUR value of parsed text.
type ParseAmountResponse struct {
	AmountEUR float64 `json:"amountEur"`
	Parseable bool    `json:"parseable"`
}
