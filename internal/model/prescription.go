package model

import "github.com/google/uuid"

type PrescriptionStatus string

const (
	PrescriptionStatusActive       PrescriptionStatus = "active"
	PrescriptionStatusDiscontinued PrescriptionStatus = "discontinued"
)

type Prescription struct {
	Base
	PatientID  uuid.UUID          `json:"patient_id"`
	Medication string             `json:"medication"`
	Dosage     string             `json:"dosage"`
	Frequency  string             `json:"frequency"`
	Refills    int                `json:"refills"`
	Status     PrescriptionStatus `json:"status"`
}

type CreatePrescriptionRequest struct {
	PatientID  uuid.UUID `json:"patient_id" validate:"required"`
	Medication string    `json:"medication" validate:"required"`
	Dosage     string    `json:"dosage" validate:"required"`
	Frequency  string    `json:"frequency" validate:"required"`
	Refills    int       `json:"refills" validate:"min=0"`
}
