package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rajtraders/cashmemo-api/internal/application/service"
	"github.com/rajtraders/cashmemo-api/internal/presentation/http/dto/response"
)

// CatalogHandler serves the two derived views over the ledger: the customer
// directory and the product suggestion index.
type CatalogHandler struct {
	ledgerService *service.LedgerService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(ledgerService *service.LedgerService) *CatalogHandler {
	return &CatalogHandler{ledgerService: ledgerService}
}

// LookupCustomer handles a customer directory lookup by mobile number.
// An unknown number is not an error; the form simply keeps its fields.
func (h *CatalogHandler) LookupCustomer(c *gin.Context) {
	mobile := c.Param("mobile")

	record, found := h.ledgerService.Lookup(mobile)
	response.OK(c, "Customer lookup completed", gin.H{
		"found":    found,
		"customer": record,
	})
}

// ProductSuggestions handles reading the autocomplete suggestion list.
// Filtering against partial input is the form's job, not the core's.
func (h *CatalogHandler) ProductSuggestions(c *gin.Context) {
	response.OK(c, "Product suggestions retrieved successfully", gin.H{
		"suggestions": h.ledgerService.Suggestions(),
	})
}
