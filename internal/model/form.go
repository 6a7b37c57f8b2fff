package model

import "github.com/google/uuid"

type FormField struct {
	Name     string `json:"name" validate:"required"`
	Label    string `json:"label" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=text number date boolean"`
	Required bool   `json:"required"`
}

type FormTemplate struct {
	Base
	Name   string      `json:"name"`
	Fields []FormField `json:"fields"`
}

type CreateFormTemplateRequest struct {
	Name   string      `json:"name" validate:"required"`
	Fields []FormField `json:"fields" validate:"required,min=1,dive"`
}

type FormSubmission struct {
	Base
	TemplateID uuid.UUID              `json:"template_id"`
	PatientID  uuid.UUID              `json:"patient_id"`
	Answers    map[string]interface{} `json:"answers"`
}

type CreateFormSubmissionRequest struct {
	TemplateID uuid.UUID              `json:"template_id" validate:"required"`
	PatientID  uuid.UUID              `json:"patient_id" validate:"required"`
	Answers    map[string]interface{} `json:"answers" validate:"required"`
}
