package model

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusOpen InvoiceStatus = "open"
	InvoiceStatusPaid InvoiceStatus = "paid"
	InvoiceStatusVoid InvoiceStatus = "void"
)

// LineItem amounts are integer cents; the server computes invoice totals.
type LineItem struct {
	Description string `json:"description" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
	UnitPrice   int64  `json:"unit_price" validate:"required,min=0"`
}

type Invoice struct {
	Base
	PatientID  uuid.UUID     `json:"patient_id"`
	LineItems  []LineItem    `json:"line_items"`
	Total      int64         `json:"total"`
	AmountPaid int64         `json:"amount_paid"`
	Balance    int64         `json:"balance"`
	Status     InvoiceStatus `json:"status"`
}

type CreateInvoiceRequest struct {
	PatientID uuid.UUID  `json:"patient_id" validate:"required"`
	LineItems []LineItem `json:"line_items" validate:"required,min=1,dive"`
}

type Payment struct {
	ID        uuid.UUID `json:"id"`
	InvoiceID uuid.UUID `json:"invoice_id"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	PostedAt  time.Time `json:"posted_at"`
}

type RecordPaymentRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Method string `json:"method" validate:"required,oneof=cash card check insurance"`
}
