package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casavera/fx_backend/internal/core/domain"
	portssvc "github.com/casavera/fx_backend/internal/core/ports/services"
	"github.com/casavera/fx_backend/internal/dto"
	"github.com/casavera/fx_backend/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RenderService ---
type MockRenderService struct {
	mock.Mock
}

func (m *MockRenderService) MoneyText(ctx context.Context, amountEUR float64, minFrac, maxFrac int, opts portssvc.RenderOptions) (string, error) {
	args := m.Called(ctx, amountEUR, minFrac, maxFrac, opts)
	return args.String(0), args.Error(1)
}

func (m *MockRenderService) BudgetText(ctx context.Context, text string, opts portssvc.RenderOptions) (string, error) {
	args := m.Called(ctx, text, opts)
	return args.String(0), args.Error(1)
}

func (m *MockRenderService) SurfaceText(ctx context.Context, squareMeters float64, opts portssvc.RenderOptions) (string, error) {
	args := m.Called(ctx, squareMeters, opts)
	return args.String(0), args.Error(1)
}

func (m *MockRenderService) ParseBudget(ctx context.Context, text string) domain.BudgetExpression {
	args := m.Called(ctx, text)
	return args.Get(0).(domain.BudgetExpression)
}

func (m *MockRenderService) ParseAmount(ctx context.Context, text string, opts portssvc.RenderOptions) (float64, bool, error) {
	args := m.Called(ctx, text, opts)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.RenderSvcFacade = (*MockRenderService)(nil)

// floatPtr returns a pointer to the provided float64 value.
func floatPtr(f float64) *float64 {
	return &f
}

// --- Test Suite ---
type RenderHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockRenderService *MockRenderService
}

func (suite *RenderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockRenderService = new(MockRenderService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterRenderRoutes(v1, suite.mockRenderService)
}

func (suite *RenderHandlerTestSuite) performJSON(method, path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *RenderHandlerTestSuite) TestRenderMoney_Success() {
	suite.mockRenderService.On("MoneyText",
		mock.Anything, 1234.0, 2, 2,
		portssvc.RenderOptions{CurrencyCode: "USD"},
	).Return("$1,332.72", nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/render/money", dto.RenderMoneyRequest{
		AmountEUR:    floatPtr(1234),
		CurrencyCode: "USD",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RenderTextResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("$1,332.72", resp.Text)
	suite.mockRenderService.AssertExpectations(suite.T())
}

func (suite *RenderHandlerTestSuite) TestRenderMoney_ZeroAmount() {
	suite.mockRenderService.On("MoneyText",
		mock.Anything, 0.0, 2, 2,
		portssvc.RenderOptions{CurrencyCode: "EUR"},
	).Return("0,00 €", nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/render/money", dto.RenderMoneyRequest{
		AmountEUR:    floatPtr(0),
		CurrencyCode: "EUR",
	})

	suite.Equal(http.StatusOK, w.Code, "a zero amount is a valid render request")
	var resp dto.RenderTextResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("0,00 €", resp.Text)
	suite.mockRenderService.AssertExpectations(suite.T())
}

func (suite *RenderHandlerTestSuite) TestRenderSurface_ZeroArea() {
	suite.mockRenderService.On("SurfaceText",
		mock.Anything, 0.0,
		portssvc.RenderOptions{},
	).Return("0 m²", nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/render/surface", dto.RenderSurfaceRequest{
		SquareMeters: floatPtr(0),
	})

	suite.Equal(http.StatusOK, w.Code, "a zero area is a valid render request")
	var resp dto.RenderTextResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("0 m²", resp.Text)
	suite.mockRenderService.AssertExpectations(suite.T())
}

func (suite *RenderHandlerTestSuite) TestRenderMoney_MissingAmount() {
	w := suite.performJSON(http.MethodPost, "/api/v1/render/money", gin.H{"currencyCode": "USD"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRenderService.AssertNotCalled(suite.T(), "MoneyText", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RenderHandlerTestSuite) TestRenderBudget_Success() {
	suite.mockRenderService.On("BudgetText",
		mock.Anything, "1.5M - 2M",
		portssvc.RenderOptions{UserID: "u-1"},
	).Return("1.5M-2M EUR", nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/render/budget", dto.RenderBudgetRequest{
		Text:   "1.5M - 2M",
		UserID: "u-1",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RenderTextResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("1.5M-2M EUR", resp.Text)
}

func (suite *RenderHandlerTestSuite) TestRenderSurface_Success() {
	suite.mockRenderService.On("SurfaceText",
		mock.Anything, 100.0,
		portssvc.RenderOptions{UnitSystem: "imperial"},
	).Return("1076 sq ft", nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/render/surface", dto.RenderSurfaceRequest{
		SquareMeters: floatPtr(100),
		UnitSystem:   "imperial",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RenderTextResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("1076 sq ft", resp.Text)
}

func (suite *RenderHandlerTestSuite) TestParseBudget_Success() {
	low := 800000.0
	suite.mockRenderService.On("ParseBudget", mock.Anything, "800K+").
		Return(domain.BudgetExpression{Low: &low, HasPlus: true}).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/parse/budget", dto.ParseBudgetRequest{Text: "800K+"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ParseBudgetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.LowEUR)
	suite.Equal(800000.0, *resp.LowEUR)
	suite.Nil(resp.HighEUR)
	suite.True(resp.HasPlus)
	suite.True(resp.Parseable)
}

func (suite *RenderHandlerTestSuite) TestParseAmount_Unparseable() {
	suite.mockRenderService.On("ParseAmount", mock.Anything, "N/A", portssvc.RenderOptions{}).
		Return(0.0, false, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/parse/amount", dto.ParseAmountRequest{Text: "N/A"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ParseAmountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Parseable)
	suite.Equal(0.0, resp.AmountEUR)
}

func TestRenderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RenderHandlerTestSuite))
}
