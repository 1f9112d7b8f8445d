package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rajtraders/cashmemo-api/internal/application/service"
	"github.com/rajtraders/cashmemo-api/internal/presentation/http/dto/response"
	"github.com/rajtraders/cashmemo-api/pkg/export"
	"github.com/rajtraders/cashmemo-api/pkg/pagination"
	"github.com/rajtraders/cashmemo-api/pkg/pdf"
)

// MemoHandler handles committed memo reads and ledger exports
type MemoHandler struct {
	ledgerService *service.LedgerService
	business      pdf.Business
}

// NewMemoHandler creates a new memo handler
func NewMemoHandler(ledgerService *service.LedgerService, business pdf.Business) *MemoHandler {
	return &MemoHandler{ledgerService: ledgerService, business: business}
}

// List handles listing the ledger in save order
func (h *MemoHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()

	memos := h.ledgerService.All()
	pag := pagination.NewPagination(params.Page, params.PerPage, int64(len(memos)))
	result := pagination.NewPaginatedResult(pagination.Slice(memos, params), pag)

	response.SuccessWithPagination(c, 200, "Memos retrieved successfully", result)
}

// Get handles getting a single committed memo
func (h *MemoHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid memo ID")
		return
	}

	memo, found := h.ledgerService.Get(id)
	if !found {
		response.NotFound(c, "Memo not found")
		return
	}

	response.OK(c, "Memo retrieved successfully", memo)
}

// PDF handles rendering one committed memo as a printable document
func (h *MemoHandler) PDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid memo ID")
		return
	}

	memo, found := h.ledgerService.Get(id)
	if !found {
		response.NotFound(c, "Memo not found")
		return
	}

	raw, err := pdf.RenderMemo(h.business, memo)
	if err != nil {
		response.InternalServerError(c, "Failed to render memo PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="memo-%s.pdf"`, c.Param("id")))
	c.Data(200, "application/pdf", raw)
}

// ExportXLSX handles downloading the ledger summary as a spreadsheet
func (h *MemoHandler) ExportXLSX(c *gin.Context) {
	f, err := export.BuildWorkbook(h.ledgerService.All())
	if err != nil {
		response.InternalServerError(c, "Failed to build workbook")
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="memos_%s.xlsx"`,
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		response.InternalServerError(c, "Failed to write workbook")
	}
}

// ExportCSV handles downloading the ledger summary as CSV
func (h *MemoHandler) ExportCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="memos_%s.csv"`,
		time.Now().Format("20060102")))

	if err := export.WriteCSV(c.Writer, h.ledgerService.All()); err != nil {
		response.InternalServerError(c, "Failed to write CSV")
	}
}
