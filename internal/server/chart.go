package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"StockChart/internal/collector"
	"StockChart/internal/logger"
	"StockChart/internal/model"
	"StockChart/internal/view"
)

// ChartView is the part of view.View the handlers need.
type ChartView interface {
	Symbol() string
	Snapshot(size model.Size) (*view.Snapshot, error)
	RenderPNG(w io.Writer, size model.Size) error
}

// ChartRequest is the surface size in query parameters. Unset values fall
// back to the handler's configured size.
type ChartRequest struct {
	Width  int `query:"w" default:"640" validate:"gte=64,lte=4096"`
	Height int `query:"h" default:"400" validate:"gte=64,lte=4096"`
}

func (r ChartRequest) size() model.Size {
	return model.Size{Width: float64(r.Width), Height: float64(r.Height)}
}

// ChartHandler serves the rendered chart and its raw geometry.
type ChartHandler struct {
	view   ChartView
	width  int
	height int
	log    *logger.Logger
}

// NewChartHandler creates a ChartHandler whose default surface is width x height.
func NewChartHandler(v ChartView, width, height int, log *logger.Logger) *ChartHandler {
	return &ChartHandler{view: v, width: width, height: height, log: log}
}

func (h *ChartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/chart.png", h.Chart)

	g := e.Group("/api/v1")
	g.GET("/geometry", h.Geometry)
}

// Chart renders the PNG.
func (h *ChartHandler) Chart(c echo.Context) error {
	req := &ChartRequest{Width: h.width, Height: h.height}
	if verr := ReadAndValidateRequest(c, req); verr != nil {
		return BadRequestResponse(c, verr)
	}

	var buf bytes.Buffer
	if err := h.view.RenderPNG(&buf, req.size()); err != nil {
		return h.errorResponse(c, err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// Geometry returns the computed frame as JSON.
func (h *ChartHandler) Geometry(c echo.Context) error {
	req := &ChartRequest{Width: h.width, Height: h.height}
	if verr := ReadAndValidateRequest(c, req); verr != nil {
		return BadRequestResponse(c, verr)
	}

	snap, err := h.view.Snapshot(req.size())
	if err != nil {
		return h.errorResponse(c, err)
	}
	return SuccessResponse(c, snap)
}

func (h *ChartHandler) errorResponse(c echo.Context, err error) error {
	if errors.Is(err, collector.ErrNoRecords) {
		return NotFoundResponse(c, err.Error())
	}
	h.log.Error("chart handler", logger.Err(err), logger.String("symbol", h.view.Symbol()))
	return InternalServerErrorResponse(c)
}
