package model

import (
	"time"

	"github.com/google/uuid"
)

type ClaimStatus string

const (
	ClaimStatusSubmitted ClaimStatus = "submitted"
	ClaimStatusApproved  ClaimStatus = "approved"
	ClaimStatusDenied    ClaimStatus = "denied"
)

type InsurancePolicy struct {
	Base
	PatientID   uuid.UUID `json:"patient_id"`
	Provider    string    `json:"provider"`
	MemberID    string    `json:"member_id"`
	GroupNumber string    `json:"group_number,omitempty"`
	Status      string    `json:"status"`
}

type CreatePolicyRequest struct {
	PatientID   uuid.UUID `json:"patient_id" validate:"required"`
	Provider    string    `json:"provider" validate:"required"`
	MemberID    string    `json:"member_id" validate:"required"`
	GroupNumber string    `json:"group_number,omitempty"`
}

// VerificationResult is returned by the eligibility check endpoint.
type VerificationResult struct {
	PolicyID   uuid.UUID `json:"policy_id"`
	Eligible   bool      `json:"eligible"`
	Plan       string    `json:"plan,omitempty"`
	VerifiedAt time.Time `json:"verified_at"`
}

type InsuranceClaim struct {
	Base
	InvoiceID uuid.UUID   `json:"invoice_id"`
	PolicyID  uuid.UUID   `json:"policy_id"`
	Amount    int64       `json:"amount"`
	Status    ClaimStatus `json:"status"`
}

type CreateClaimRequest struct {
	InvoiceID uuid.UUID `json:"invoice_id" validate:"required"`
	PolicyID  uuid.UUID `json:"policy_id" validate:"required"`
}
