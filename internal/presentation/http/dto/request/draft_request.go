package request

// SetDraftFieldsRequest carries header field edits from the form. Pointers
// distinguish "not edited" from "cleared".
type SetDraftFieldsRequest struct {
	Date            *string `json:"date"`
	CustomerName    *string `json:"customerName"`
	CustomerAddress *string `json:"customerAddress"`
	CustomerMobile  *string `json:"customerMobile"`
}

// UpdateLineItemRequest carries a single line-item field edit.
type UpdateLineItemRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}
