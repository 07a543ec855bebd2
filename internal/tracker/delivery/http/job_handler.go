package http

import (
	"context"
	"errors"
	"net/http"

	"golang-portfolio-sentiment/internal/entity"
	"golang-portfolio-sentiment/internal/tracker/delivery/scheduler"
	"golang-portfolio-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

// JobRunner runs a background job on demand.
type JobRunner interface {
	RunJob(ctx context.Context, jobType string) (string, error)
	Executions(ctx context.Context, jobType string, limit int) ([]entity.JobExecution, error)
}

// JobResponse is the output of an on-demand job run.
type JobResponse struct {
	JobType string `json:"job_type"`
	Output  string `json:"output"`
}

// JobHandler handles HTTP requests for background jobs.
type JobHandler struct {
	runner JobRunner
	logger *logger.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(runner JobRunner, logger *logger.Logger) *JobHandler {
	return &JobHandler{runner: runner, logger: logger}
}

// RegisterRoutes registers the job routes to the Echo group.
func (h *JobHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/:type/run", h.RunJob)
	g.GET("/executions", h.ListExecutions)
}

// RunJob godoc
// @Summary Run a job once
// @Tags jobs
// @Produce  json
// @Param   type  path    string true    "Job type (impact_refresh, price_refresh)"
// @Success 200 {object} JobResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs/{type}/run [post]
func (h *JobHandler) RunJob(c echo.Context) error {
	jobType := c.Param("type")
	output, err := h.runner.RunJob(c.Request().Context(), jobType)
	if err != nil {
		if errors.Is(err, scheduler.ErrUnknownJob) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, JobResponse{JobType: jobType, Output: output})
}

// ListExecutions godoc
// @Summary List job executions
// @Description List recorded job executions, newest first
// @Tags jobs
// @Produce  json
// @Param   job_type  query    string false    "Filter by job type"
// @Param   limit  query    int false    "Maximum number of executions"
// @Success 200 {array} entity.JobExecution
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs/executions [get]
func (h *JobHandler) ListExecutions(c echo.Context) error {
	limit, err := queryLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	executions, err := h.runner.Executions(c.Request().Context(), c.QueryParam("job_type"), limit)
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Failed to list job executions", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list job executions"})
	}
	return c.JSON(http.StatusOK, executions)
}
