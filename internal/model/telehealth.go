package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusScheduled  SessionStatus = "scheduled"
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
)

type TelehealthSession struct {
	Base
	PatientID   uuid.UUID     `json:"patient_id"`
	Clinician   string        `json:"clinician"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	Status      SessionStatus `json:"status"`
	JoinToken   string        `json:"join_token,omitempty"`
}

type CreateSessionRequest struct {
	PatientID   uuid.UUID `json:"patient_id" validate:"required"`
	Clinician   string    `json:"clinician" validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}
