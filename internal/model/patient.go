package model

type PatientStatus string

const (
	PatientStatusActive   PatientStatus = "active"
	PatientStatusInactive PatientStatus = "inactive"
)

type Patient struct {
	Base
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone,omitempty"`
	DateOfBirth string        `json:"date_of_birth"`
	Gender      string        `json:"gender,omitempty"`
	Address     string        `json:"address,omitempty"`
	Status      PatientStatus `json:"status"`
}

type CreatePatientRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address     string `json:"address,omitempty"`
	Status      string `json:"status" validate:"required,oneof=active inactive"`
}

type UpdatePatientRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Gender  *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address *string `json:"address,omitempty"`
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// PatientFilters narrows list queries.
type PatientFilters struct {
	Search string
	Status string
}
