package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rajtraders/cashmemo-api/internal/application/service"
	"github.com/rajtraders/cashmemo-api/internal/domain/entity"
	"github.com/rajtraders/cashmemo-api/internal/presentation/http/dto/request"
	"github.com/rajtraders/cashmemo-api/internal/presentation/http/dto/response"
	"github.com/rajtraders/cashmemo-api/pkg/pdf"
	"github.com/rajtraders/cashmemo-api/pkg/words"
)

// DraftHandler handles the in-progress memo being composed
type DraftHandler struct {
	draftService *service.DraftService
	business     pdf.Business
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService *service.DraftService, business pdf.Business) *DraftHandler {
	return &DraftHandler{draftService: draftService, business: business}
}

// draftView is the reactive read model the form re-reads after every edit.
type draftView struct {
	State        service.DraftState `json:"state"`
	Draft        entity.MemoDraft   `json:"draft"`
	Total        float64            `json:"total"`
	TotalInWords string             `json:"totalInWords"`
	Autofilled   bool               `json:"autofilled,omitempty"`
}

func (h *DraftHandler) view(autofilled bool) draftView {
	draft, total, state := h.draftService.Current()
	return draftView{
		State:        state,
		Draft:        draft,
		Total:        total,
		TotalInWords: words.InWords(total),
		Autofilled:   autofilled,
	}
}

// Get handles reading the current draft state
func (h *DraftHandler) Get(c *gin.Context) {
	response.OK(c, "Draft retrieved successfully", h.view(false))
}

// SetFields handles header field edits. Fields are applied in form order with
// mobile last, so a lookup fired by the mobile edit sees the other edits from
// the same request and the no-clobber guard works as the user expects.
func (h *DraftHandler) SetFields(c *gin.Context) {
	var req request.SetDraftFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	type edit struct {
		field string
		value *string
	}
	edits := []edit{
		{service.FieldDate, req.Date},
		{service.FieldCustomerName, req.CustomerName},
		{service.FieldCustomerAddress, req.CustomerAddress},
		{service.FieldCustomerMobile, req.CustomerMobile},
	}

	autofilled := false
	for _, e := range edits {
		if e.value == nil {
			continue
		}
		filled, err := h.draftService.SetField(e.field, *e.value)
		if err != nil {
			response.Error(c, err)
			return
		}
		autofilled = autofilled || filled
	}

	response.OK(c, "Draft updated successfully", h.view(autofilled))
}

// Clear handles abandoning the draft
func (h *DraftHandler) Clear(c *gin.Context) {
	h.draftService.Clear()
	response.NoContent(c)
}

// AddItem handles appending a blank line item
func (h *DraftHandler) AddItem(c *gin.Context) {
	index := h.draftService.AddLineItem()
	response.Created(c, "Line item added successfully", gin.H{
		"index": index,
		"view":  h.view(false),
	})
}

// UpdateItem handles editing one field of one line item
func (h *DraftHandler) UpdateItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid line item index")
		return
	}

	var req request.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.draftService.UpdateLineItem(index, req.Field, req.Value); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line item updated successfully", h.view(false))
}

// Save handles committing the draft into the ledger
func (h *DraftHandler) Save(c *gin.Context) {
	memo, err := h.draftService.Save(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Memo saved successfully", memo)
}

// PDF handles rendering a printable preview of the live draft
func (h *DraftHandler) PDF(c *gin.Context) {
	draft, total, _ := h.draftService.Current()

	raw, err := pdf.RenderDraft(h.business, draft, total)
	if err != nil {
		response.InternalServerError(c, "Failed to render draft PDF")
		return
	}

	c.Header("Content-Disposition", `inline; filename="memo-draft.pdf"`)
	c.Data(200, "application/pdf", raw)
}
