package api_test

import (
	"context"
	"testing"

	"github.com/clinichub/apicheck/internal/suite"
)

// runLive executes one suite as subtests so a single module can be rerun
// with -run while debugging a deployment. Checks within a suite depend on
// earlier fixtures, so the rest are skipped after a failure.
func runLive(t *testing.T, name string) {
	t.Helper()
	selected, err := suite.Select([]string{name})
	if err != nil {
		t.Fatalf("select suite: %v", err)
	}
	s := selected[0]
	ctx := context.Background()

	failed := false
	for _, check := range s.Checks {
		check := check
		ok := t.Run(check.Name, func(t *testing.T) {
			if failed {
				t.Skip("earlier check in this suite failed")
			}
			if err := check.Run(ctx, liveEnv); err != nil {
				t.Error(err)
			}
		})
		if !ok {
			failed = true
		}
	}

	for _, check := range s.Cleanup {
		if err := check.Run(ctx, liveEnv); err != nil {
			t.Logf("cleanup %s: %v", check.Name, err)
		}
	}
}

func TestAuth(t *testing.T)          { runLive(t, "auth") }
func TestPatients(t *testing.T)      { runLive(t, "patients") }
func TestEncounters(t *testing.T)    { runLive(t, "encounters") }
func TestSOAPNotes(t *testing.T)     { runLive(t, "soap-notes") }
func TestBilling(t *testing.T)       { runLive(t, "billing") }
func TestInventory(t *testing.T)     { runLive(t, "inventory") }
func TestPrescriptions(t *testing.T) { runLive(t, "prescriptions") }
func TestInsurance(t *testing.T)     { runLive(t, "insurance") }
func TestTelehealth(t *testing.T)    { runLive(t, "telehealth") }
func TestReferrals(t *testing.T)     { runLive(t, "referrals") }
func TestForms(t *testing.T)         { runLive(t, "forms") }
