package http

import (
	"errors"
	"net/http"
	"strconv"

	"golang-portfolio-sentiment/internal/tracker/dto"
	"golang-portfolio-sentiment/internal/tracker/repository"
	"golang-portfolio-sentiment/internal/tracker/service"
	"golang-portfolio-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ImpactHandler handles HTTP requests for sentiment impact and stock detail.
type ImpactHandler struct {
	impactService service.ImpactService
	logger        *logger.Logger
}

// NewImpactHandler creates a new ImpactHandler.
func NewImpactHandler(impactService service.ImpactService, logger *logger.Logger) *ImpactHandler {
	return &ImpactHandler{impactService: impactService, logger: logger}
}

// RegisterRoutes registers the impact, stock and sentiment routes to the Echo group.
func (h *ImpactHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/impact", h.RunImpact)
	g.GET("/impact/latest", h.LatestImpact)
	g.GET("/stocks/:symbol", h.StockDetail)
	g.GET("/stocks/:symbol/news", h.SymbolNews)
	g.POST("/sentiment", h.ScoreText)
}

// queryLimit parses ?limit=N. A missing value yields 0 (service default).
func queryLimit(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.New("invalid limit")
	}
	return limit, nil
}

// RunImpact godoc
// @Summary Run an impact pass
// @Description Fetch quotes and news for every holding and compute the sentiment impact
// @Tags impact
// @Produce  json
// @Param   limit  query    int false    "Number of top impacts"
// @Success 200 {object} dto.ImpactResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /impact [get]
func (h *ImpactHandler) RunImpact(c echo.Context) error {
	limit, err := queryLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	resp, err := h.impactService.Run(c.Request().Context(), limit)
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Failed to run impact pass", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to run impact pass"})
	}
	return c.JSON(http.StatusOK, resp)
}

// LatestImpact godoc
// @Summary Get the latest impact snapshot
// @Tags impact
// @Produce  json
// @Param   limit  query    int false    "Number of top impacts"
// @Success 200 {object} dto.ImpactResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /impact/latest [get]
func (h *ImpactHandler) LatestImpact(c echo.Context) error {
	limit, err := queryLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	resp, err := h.impactService.Latest(c.Request().Context(), limit)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		h.logger.ErrorContext(c.Request().Context(), "Failed to get latest impact", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get latest impact"})
	}
	return c.JSON(http.StatusOK, resp)
}

// StockDetail godoc
// @Summary Get a stock quote with recent news
// @Tags stocks
// @Produce  json
// @Param   symbol  path    string true    "Ticker symbol"
// @Success 200 {object} dto.StockDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks/{symbol} [get]
func (h *ImpactHandler) StockDetail(c echo.Context) error {
	symbol := c.Param("symbol")
	resp, err := h.impactService.StockDetail(c.Request().Context(), symbol)
	if err != nil {
		if errors.Is(err, repository.ErrSymbolNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		h.logger.ErrorContext(c.Request().Context(), "Failed to get stock detail", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get stock detail"})
	}
	return c.JSON(http.StatusOK, resp)
}

// SymbolNews godoc
// @Summary Get scored news for a stock
// @Tags stocks
// @Produce  json
// @Param   symbol  path    string true    "Ticker symbol"
// @Param   limit  query    int false    "Number of articles"
// @Success 200 {array} dto.ScoredNewsItem
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks/{symbol}/news [get]
func (h *ImpactHandler) SymbolNews(c echo.Context) error {
	limit, err := queryLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	symbol := c.Param("symbol")
	news, err := h.impactService.SymbolNews(c.Request().Context(), symbol, limit)
	if err != nil {
		if errors.Is(err, repository.ErrSymbolNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		h.logger.ErrorContext(c.Request().Context(), "Failed to get news", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get news"})
	}
	return c.JSON(http.StatusOK, news)
}

// ScoreText godoc
// @Summary Score arbitrary text
// @Description Score a headline, optionally blended with article content
// @Tags sentiment
// @Accept  json
// @Produce  json
// @Param   text  body    dto.SentimentRequest   true    "Text to score"
// @Success 200 {object} dto.SentimentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /sentiment [post]
func (h *ImpactHandler) ScoreText(c echo.Context) error {
	var req dto.SentimentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if req.Title == "" && req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title or content is required"})
	}
	return c.JSON(http.StatusOK, h.impactService.ScoreText(c.Request().Context(), req))
}
