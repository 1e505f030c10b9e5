package request

// SetFieldRequest represents a single draft field update
type SetFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"` // any string is accepted, including empty
}

// ChooseSuggestionRequest represents picking a candidate from the dropdown
type ChooseSuggestionRequest struct {
	Name string `json:"name" binding:"required"`
}

// ReceiptLinkRequest represents a stateless link-generation request carrying
// a full draft. Validation of the field values happens in the service, not
// at binding time, so the failure order is well defined.
type ReceiptLinkRequest struct {
	CustomerName    string `json:"customer_name"`
	TransactionDate string `json:"transaction_date"`
	Amount          string `json:"amount"`
	MobileNumber    string `json:"mobile_number"`
	Remarks         string `json:"remarks"`
}

// CreateCustomerRequest represents adding a customer to the directory
type CreateCustomerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Phone *string `json:"phone"`
}
