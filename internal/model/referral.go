package model

import "github.com/google/uuid"

type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "pending"
	ReferralStatusAccepted  ReferralStatus = "accepted"
	ReferralStatusDeclined  ReferralStatus = "declined"
	ReferralStatusCompleted ReferralStatus = "completed"
)

type Referral struct {
	Base
	PatientID  uuid.UUID      `json:"patient_id"`
	Specialty  string         `json:"specialty"`
	ReferredTo string         `json:"referred_to"`
	Reason     string         `json:"reason"`
	Priority   string         `json:"priority"`
	Status     ReferralStatus `json:"status"`
}

type CreateReferralRequest struct {
	PatientID  uuid.UUID `json:"patient_id" validate:"required"`
	Specialty  string    `json:"specialty" validate:"required"`
	ReferredTo string    `json:"referred_to" validate:"required"`
	Reason     string    `json:"reason" validate:"required"`
	Priority   string    `json:"priority" validate:"required,oneof=routine urgent"`
}

type UpdateReferralStatusRequest struct {
	Status ReferralStatus `json:"status" validate:"required,oneof=pending accepted declined completed"`
}
