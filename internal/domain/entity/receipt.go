package entity

import (
	"fmt"
	"time"
)

// Field names accepted by ReceiptDraft.SetField. They match the JSON keys
// used on the wire.
const (
	FieldCustomerName    = "customer_name"
	FieldTransactionDate = "transaction_date"
	FieldAmount          = "amount"
	FieldMobileNumber    = "mobile_number"
	FieldRemarks         = "remarks"
)

// ReceiptDraft is the receipt currently being edited in a form session.
// It is NOT a database entity — it lives in memory for the lifetime of the
// session and is never persisted. All fields are kept as raw strings;
// parsing happens only at submission time.
type ReceiptDraft struct {
	CustomerName    string `json:"customer_name"`
	TransactionDate string `json:"transaction_date"`
	Amount          string `json:"amount"`
	MobileNumber    string `json:"mobile_number"`
	Remarks         string `json:"remarks"`
}

// NewReceiptDraft creates an empty draft with the transaction date defaulted
// to the local calendar date of now.
func NewReceiptDraft(now time.Time) ReceiptDraft {
	return ReceiptDraft{
		TransactionDate: now.Format("2006-01-02"),
	}
}

// SetField replaces the named field's value unconditionally. Any string is
// accepted, including empty; only an unknown field name is an error.
func (d *ReceiptDraft) SetField(field, value string) error {
	switch field {
	case FieldCustomerName:
		d.CustomerName = value
	case FieldTransactionDate:
		d.TransactionDate = value
	case FieldAmount:
		d.Amount = value
	case FieldMobileNumber:
		d.MobileNumber = value
	case FieldRemarks:
		d.Remarks = value
	default:
		return fmt.Errorf("unknown draft field %q", field)
	}
	return nil
}
