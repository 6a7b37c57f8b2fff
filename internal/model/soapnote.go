package model

import (
	"time"

	"github.com/google/uuid"
)

type SOAPNoteStatus string

const (
	SOAPNoteStatusDraft  SOAPNoteStatus = "draft"
	SOAPNoteStatusSigned SOAPNoteStatus = "signed"
)

// SOAPNote is the clinical note attached to an encounter. Signed notes are
// immutable on the server side.
type SOAPNote struct {
	Base
	EncounterID uuid.UUID      `json:"encounter_id"`
	Subjective  string         `json:"subjective"`
	Objective   string         `json:"objective"`
	Assessment  string         `json:"assessment"`
	Plan        string         `json:"plan"`
	Status      SOAPNoteStatus `json:"status"`
	SignedBy    string         `json:"signed_by,omitempty"`
	SignedAt    *time.Time     `json:"signed_at,omitempty"`
}

type CreateSOAPNoteRequest struct {
	EncounterID uuid.UUID `json:"encounter_id" validate:"required"`
	Subjective  string    `json:"subjective" validate:"required"`
	Objective   string    `json:"objective" validate:"required"`
	Assessment  string    `json:"assessment" validate:"required"`
	Plan        string    `json:"plan" validate:"required"`
}

type UpdateSOAPNoteRequest struct {
	Subjective *string `json:"subjective,omitempty"`
	Objective  *string `json:"objective,omitempty"`
	Assessment *string `json:"assessment,omitempty"`
	Plan       *string `json:"plan,omitempty"`
}
