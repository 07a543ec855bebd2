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

// PortfolioHandler handles HTTP requests for holdings.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
	logger           *logger.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService service.PortfolioService, logger *logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, logger: logger}
}

// RegisterRoutes registers the portfolio routes to the Echo group.
func (h *PortfolioHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/portfolio", h.GetPortfolio)
	g.POST("/holdings", h.AddHolding)
	g.DELETE("/holdings/:id", h.RemoveHolding)
}

// GetPortfolio godoc
// @Summary Get the portfolio
// @Description List every holding with its market value and the portfolio totals
// @Tags portfolio
// @Produce  json
// @Success 200 {object} dto.PortfolioResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	resp, err := h.portfolioService.GetPortfolio(c.Request().Context())
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Failed to get portfolio", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get portfolio"})
	}
	return c.JSON(http.StatusOK, resp)
}

// AddHolding godoc
// @Summary Add a holding
// @Description Add a new holding or merge into an existing one at the weighted average price
// @Tags portfolio
// @Accept  json
// @Produce  json
// @Param   holding  body    dto.AddHoldingRequest   true    "Holding to add"
// @Success 201 {object} entity.Holding
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /holdings [post]
func (h *PortfolioHandler) AddHolding(c echo.Context) error {
	var req dto.AddHoldingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	holding, err := h.portfolioService.AddHolding(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidHolding) || errors.Is(err, repository.ErrSymbolNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		h.logger.ErrorContext(c.Request().Context(), "Failed to add holding", logger.ErrorField(err), logger.StringField("symbol", req.Symbol))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add holding"})
	}
	return c.JSON(http.StatusCreated, holding)
}

// RemoveHolding godoc
// @Summary Remove a holding
// @Description Delete a holding by its ID
// @Tags portfolio
// @Produce  json
// @Param   id  path    int true    "Holding ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /holdings/{id} [delete]
func (h *PortfolioHandler) RemoveHolding(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid holding ID"})
	}

	if err := h.portfolioService.RemoveHolding(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrHoldingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		h.logger.ErrorContext(c.Request().Context(), "Failed to remove holding", logger.ErrorField(err), logger.IntField("id", int(id)))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to remove holding"})
	}
	return c.NoContent(http.StatusNoContent)
}
