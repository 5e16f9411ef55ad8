package http

import (
	"net/http"

	"courierdesk/internal/adapters/out/warehouse"

	"github.com/labstack/echo/v4"
)

// registerWarehouseRoutes attaches the warehouse pass-through endpoints.
// The back office proxies the external warehouse service rather than
// modelling receipts itself; failures from that boundary surface as 502.
func (s *Server) registerWarehouseRoutes(api *echo.Group) {
	api.GET("/warehouse/health", s.WarehouseHealth)
	api.GET("/warehouse/stats", s.WarehouseStats)
	api.GET("/warehouse/receipts", s.ListWarehouseReceipts)
	api.POST("/warehouse/receipts", s.CreateWarehouseReceipt)
	api.PUT("/warehouse/receipts/:id/classify", s.ClassifyWarehouseReceipt)
	api.POST("/warehouse/receipts/:id/email", s.EmailWarehouseReceipt)
	api.DELETE("/warehouse/receipts/:id", s.DeleteWarehouseReceipt)
}

func warehouseError(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadGateway, Error{Code: http.StatusBadGateway, Message: err.Error()})
}

// WarehouseHealth handles GET /api/v1/warehouse/health.
func (s *Server) WarehouseHealth(ctx echo.Context) error {
	if err := s.warehouseClient.Health(ctx.Request().Context()); err != nil {
		return warehouseError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// WarehouseStats handles GET /api/v1/warehouse/stats.
func (s *Server) WarehouseStats(ctx echo.Context) error {
	stats, err := s.warehouseClient.GetStats(ctx.Request().Context())
	if err != nil {
		return warehouseError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, stats)
}

// ListWarehouseReceipts handles GET /api/v1/warehouse/receipts.
func (s *Server) ListWarehouseReceipts(ctx echo.Context) error {
	receipts, err := s.warehouseClient.ListReceipts(ctx.Request().Context())
	if err != nil {
		return warehouseError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, receipts)
}

// CreateWarehouseReceipt handles POST /api/v1/warehouse/receipts.
func (s *Server) CreateWarehouseReceipt(ctx echo.Context) error {
	var payload warehouse.Receipt
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	created, err := s.warehouseClient.CreateReceipt(ctx.Request().Context(), payload)
	if err != nil {
		return warehouseError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, created)
}

// ClassifyWarehouseReceipt handles PUT /api/v1/warehouse/receipts/:id/classify.
func (s *Server) ClassifyWarehouseReceipt(ctx echo.Context) error {
	var payload struct {
		Type string `json:"type"`
	}
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	if err := s.warehouseClient.Classify(ctx.Request().Context(), ctx.Param("id"), payload.Type); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// EmailWarehouseReceipt handles POST /api/v1/warehouse/receipts/:id/email.
func (s *Server) EmailWarehouseReceipt(ctx echo.Context) error {
	if err := s.warehouseClient.SendEmail(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return warehouseError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteWarehouseReceipt handles DELETE /api/v1/warehouse/receipts/:id.
func (s *Server) DeleteWarehouseReceipt(ctx echo.Context) error {
	if err := s.warehouseClient.DeleteReceipt(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return warehouseError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
