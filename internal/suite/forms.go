package suite

import (
	"context"

	"github.com/clinichub/apicheck/internal/model"
)

func Forms() Suite {
	var (
		patient  *model.Patient
		template *model.FormTemplate
	)

	return Suite{
		Name: "forms",
		Checks: []Check{
			{Name: "create intake template", Run: func(ctx context.Context, env *Env) error {
				p, err := newPatient(ctx, env)
				if err != nil {
					return err
				}
				patient = p
				template, err = env.Client.CreateFormTemplate(ctx, model.CreateFormTemplateRequest{
					Name: env.Fix.UniqueName("Intake Form"),
					Fields: []model.FormField{
						{Name: "chief_complaint", Label: "Chief complaint", Type: "text", Required: true},
						{Name: "pain_level", Label: "Pain level (0-10)", Type: "number", Required: true},
						{Name: "smoker", Label: "Current smoker", Type: "boolean", Required: false},
					},
				})
				if err != nil {
					return err
				}
				return expectf(len(template.Fields) == 3, "template fields: got %d", len(template.Fields))
			}},
			{Name: "template with bad field type rejected", Run: func(ctx context.Context, env *Env) error {
				_, err := env.Client.CreateFormTemplate(ctx, model.CreateFormTemplateRequest{
					Name: env.Fix.UniqueName("Bad Form"),
					Fields: []model.FormField{
						{Name: "x", Label: "X", Type: "dropdown", Required: true},
					},
				})
				return expectRejected(err, "template with unsupported field type")
			}},
			{Name: "submission with all required answers", Run: func(ctx context.Context, env *Env) error {
				if patient == nil || template == nil {
					return expectf(false, "template fixture missing")
				}
				submission, err := env.Client.SubmitForm(ctx, model.CreateFormSubmissionRequest{
					TemplateID: template.ID,
					PatientID:  patient.ID,
					Answers: map[string]interface{}{
						"chief_complaint": "lower back pain",
						"pain_level":      6,
						"smoker":          false,
					},
				})
				if err != nil {
					return err
				}
				fetched, err := env.Client.GetFormSubmission(ctx, submission.ID)
				if err != nil {
					return err
				}
				return expectf(fetched.TemplateID == template.ID, "submission bound to wrong template")
			}},
			{Name: "submission missing required answer rejected", Run: func(ctx context.Context, env *Env) error {
				if patient == nil || template == nil {
					return expectf(false, "template fixture missing")
				}
				_, err := env.Client.SubmitForm(ctx, model.CreateFormSubmissionRequest{
					TemplateID: template.ID,
					PatientID:  patient.ID,
					Answers: map[string]interface{}{
						"chief_complaint": "headache",
					},
				})
				return expectRejected(err, "submission missing required answer")
			}},
			{Name: "submission against unknown template rejected", Run: func(ctx context.Context, env *Env) error {
				if patient == nil {
					return expectf(false, "patient fixture missing")
				}
				_, err := env.Client.SubmitForm(ctx, model.CreateFormSubmissionRequest{
					TemplateID: randomID(),
					PatientID:  patient.ID,
					Answers:    map[string]interface{}{"x": 1},
				})
				return expectRejected(err, "submission against unknown template")
			}},
		},
		Cleanup: []Check{
			{Name: "delete template", Run: func(ctx context.Context, env *Env) error {
				if template == nil {
					return nil
				}
				return env.Client.DeleteFormTemplate(ctx, template.ID)
			}},
			{Name: "delete patient", Run: func(ctx context.Context, env *Env) error {
				if patient == nil {
					return nil
				}
				return env.Client.DeletePatient(ctx, patient.ID)
			}},
		},
	}
}
