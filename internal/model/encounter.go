package model

import "github.com/google/uuid"

type EncounterStatus string

const (
	EncounterStatusInProgress EncounterStatus = "in_progress"
	EncounterStatusCompleted  EncounterStatus = "completed"
)

type Encounter struct {
	Base
	PatientID uuid.UUID       `json:"patient_id"`
	Clinician string          `json:"clinician"`
	Type      string          `json:"type"`
	Reason    string          `json:"reason"`
	Status    EncounterStatus `json:"status"`
	Notes     string          `json:"notes,omitempty"`
}

type CreateEncounterRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	Clinician string    `json:"clinician" validate:"required"`
	Type      string    `json:"type" validate:"required,oneof=office_visit telehealth follow_up"`
	Reason    string    `json:"reason" validate:"required"`
	Notes     string    `json:"notes,omitempty" validate:"max=1000"`
}

type UpdateEncounterStatusRequest struct {
	Status EncounterStatus `json:"status" validate:"required,oneof=in_progress completed"`
}
