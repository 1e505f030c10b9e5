package service

import (
	"strings"

	"github.com/akshaymhatre/receiptly-api/internal/domain/entity"
	"github.com/akshaymhatre/receiptly-api/pkg/apperror"
	"github.com/akshaymhatre/receiptly-api/pkg/whatsapp"
	"github.com/shopspring/decimal"
)

// ReceiptService validates receipt drafts and builds WhatsApp deep links.
type ReceiptService struct {
	builder *whatsapp.Builder
}

// NewReceiptService creates a new receipt service
func NewReceiptService(builder *whatsapp.Builder) *ReceiptService {
	return &ReceiptService{builder: builder}
}

// ReceiptLink is the result of a successful submission.
type ReceiptLink struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Validate checks the draft's required fields in a fixed order and reports
// the first failure only. The draft is never mutated. Any non-empty mobile
// text passes; format correctness beyond digit stripping is out of scope.
func (s *ReceiptService) Validate(d entity.ReceiptDraft) error {
	if strings.TrimSpace(d.CustomerName) == "" {
		return apperror.NewValidationError(apperror.ReasonMissingCustomerName,
			entity.FieldCustomerName, "Please enter the customer name")
	}
	if d.TransactionDate == "" {
		return apperror.NewValidationError(apperror.ReasonMissingDate,
			entity.FieldTransactionDate, "Please select the date of transaction")
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(d.Amount))
	if err != nil || !amount.IsPositive() {
		return apperror.NewValidationError(apperror.ReasonInvalidAmount,
			entity.FieldAmount, "Please enter an amount greater than zero")
	}
	if strings.TrimSpace(d.MobileNumber) == "" {
		return apperror.NewValidationError(apperror.ReasonMissingMobileNumber,
			entity.FieldMobileNumber, "Please enter the mobile number")
	}
	return nil
}

// GenerateLink validates the draft and, on success, composes the deep link
// and the plain-text message it carries.
func (s *ReceiptService) GenerateLink(d entity.ReceiptDraft) (*ReceiptLink, error) {
	if err := s.Validate(d); err != nil {
		return nil, err
	}

	r := whatsapp.Receipt{
		CustomerName:    d.CustomerName,
		TransactionDate: d.TransactionDate,
		Amount:          d.Amount,
		MobileNumber:    d.MobileNumber,
		Remarks:         d.Remarks,
	}
	return &ReceiptLink{
		URL:     s.builder.Link(r),
		Message: s.builder.ComposeMessage(r),
	}, nil
}
