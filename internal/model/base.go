package model

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Base contains common fields returned for every ClinicHub resource.
type Base struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Envelope is the response wrapper used by every ClinicHub endpoint.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// IsSuccess reports whether the envelope carries a successful response.
func (e Envelope) IsSuccess() bool {
	return e.Status == "success"
}

var validate = validator.New()

// Validate checks a request payload against its validate tags before it is
// sent, so shape errors surface as client errors rather than 400s.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
