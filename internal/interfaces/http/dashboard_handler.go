package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/estoque-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// TotalProducts godoc
// @Summary      Cantidad de productos registrados
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TotalProductsResponse
// @Router       /dashboard/total-products [get]
func (h *DashboardHandler) TotalProducts(c *fiber.Ctx) error {
	out, err := h.uc.TotalProducts(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TotalAmount godoc
// @Summary      Valor total de los lotes (centavos)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AmountResponse
// @Router       /dashboard/total-amount [get]
func (h *DashboardHandler) TotalAmount(c *fiber.Ctx) error {
	out, err := h.uc.TotalAmount(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExpiringBatches godoc
// @Summary      Lotes que vencen en los próximos días
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Días a futuro"  default(15)
// @Success      200  {object}  dto.ExpiringBatchesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /dashboard/expiring-batches [get]
func (h *DashboardHandler) ExpiringBatches(c *fiber.Ctx) error {
	out, err := h.uc.ExpiringBatches(c.UserContext(), positiveQuery(c, "limit"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con stock bajo (máximo 3)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Cantidad máxima considerada baja"  default(20)
// @Success      200  {object}  dto.LowStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /dashboard/low-stock [get]
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.UserContext(), positiveQuery(c, "threshold"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StockSummary godoc
// @Summary      Resumen de stock por producto
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockSummaryRow
// @Router       /dashboard/stock-summary [get]
func (h *DashboardHandler) StockSummary(c *fiber.Ctx) error {
	out, err := h.uc.StockSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StockSummaryPDF godoc
// @Summary      Resumen de stock en PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /dashboard/stock-summary/pdf [get]
func (h *DashboardHandler) StockSummaryPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.StockSummaryPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="estoque-%s.pdf"`, time.Now().Format("2006-01-02")))
	return c.Send(pdf)
}
