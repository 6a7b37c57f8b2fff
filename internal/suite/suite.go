// Package suite contains the per-module check flows run against a
// ClinicHub backend. Each suite creates its own fixtures, verifies the
// module's behavior including its negative cases, and tears down what it
// created in reverse dependency order.
package suite

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinichub/apicheck/internal/client"
	"github.com/clinichub/apicheck/internal/fixture"
	"github.com/clinichub/apicheck/internal/model"
)

// Env carries the shared dependencies for a run.
type Env struct {
	Client *client.Client
	Fix    *fixture.Factory
	Log    zerolog.Logger
}

// Check is one named step in a suite.
type Check struct {
	Name string
	Run  func(ctx context.Context, env *Env) error
}

// Suite is an ordered sequence of checks plus best-effort cleanup.
type Suite struct {
	Name    string
	Checks  []Check
	Cleanup []Check
}

// Registry returns every suite in dependency-safe execution order.
func Registry() []Suite {
	return []Suite{
		Auth(),
		Patients(),
		Encounters(),
		SOAPNotes(),
		Billing(),
		Inventory(),
		Prescriptions(),
		Insurance(),
		Telehealth(),
		Referrals(),
		Forms(),
	}
}

// Select filters the registry by name; an empty selection means all.
func Select(names []string) ([]Suite, error) {
	all := Registry()
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Suite, len(all))
	known := make([]string, 0, len(all))
	for _, s := range all {
		byName[s.Name] = s
		known = append(known, s.Name)
	}
	sort.Strings(known)

	var selected []Suite
	for _, name := range names {
		s, ok := byName[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("unknown suite %q (known: %s)", name, strings.Join(known, ", "))
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// randomID yields an identifier that cannot exist on the server, for
// not-found checks.
func randomID() uuid.UUID {
	return uuid.New()
}

// expectf returns an error when the condition does not hold.
func expectf(cond bool, format string, args ...interface{}) error {
	if cond {
		return nil
	}
	return fmt.Errorf(format, args...)
}

// expectRejected verifies the operation was refused, either by the API
// with a 4xx or by client-side payload validation.
func expectRejected(err error, what string) error {
	if err == nil {
		return fmt.Errorf("%s was accepted, expected rejection", what)
	}
	var ve validator.ValidationErrors
	if client.IsClientError(err) || errors.As(err, &ve) {
		return nil
	}
	return fmt.Errorf("%s failed with unexpected error: %w", what, err)
}

// newPatient creates the root fixture most suites depend on.
func newPatient(ctx context.Context, env *Env) (*model.Patient, error) {
	patient, err := env.Client.CreatePatient(ctx, env.Fix.Patient())
	if err != nil {
		return nil, fmt.Errorf("create fixture patient: %w", err)
	}
	return patient, nil
}
