// Package fixture generates disposable test data for the check suites.
package fixture

import (
	"fmt"
	"strings"
	"time"

	"github.com/jaswdr/faker"

	"github.com/clinichub/apicheck/internal/model"
)

// Factory produces unique request payloads. Emails and SKUs embed a
// nanosecond timestamp so repeated runs against a shared tenant never
// collide.
type Factory struct {
	f faker.Faker
}

func NewFactory() *Factory {
	return &Factory{f: faker.New()}
}

func (fx *Factory) uniqueSuffix() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

func (fx *Factory) Patient() model.CreatePatientRequest {
	person := fx.f.Person()
	name := person.Name()
	return model.CreatePatientRequest{
		Name:        name,
		Email:       fmt.Sprintf("%s_%s@example.com", slug(name), fx.uniqueSuffix()),
		Phone:       fx.f.Phone().Number(),
		DateOfBirth: fx.f.Time().TimeBetween(time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)).Format("2006-01-02"),
		Gender:      "other",
		Address:     fx.f.Address().Address(),
		Status:      "active",
	}
}

func (fx *Factory) ClinicianName() string {
	return "Dr. " + fx.f.Person().LastName()
}

func (fx *Factory) Medication() (name, dosage, frequency string) {
	meds := []string{"Lisinopril", "Metformin", "Atorvastatin", "Amoxicillin", "Omeprazole"}
	doses := []string{"5mg", "10mg", "20mg", "250mg", "500mg"}
	freqs := []string{"once daily", "twice daily", "every 8 hours", "as needed"}
	return pick(fx, meds), pick(fx, doses), pick(fx, freqs)
}

func (fx *Factory) SKU() string {
	return fmt.Sprintf("SKU-%s", fx.uniqueSuffix())
}

func (fx *Factory) InsuranceProvider() string {
	providers := []string{"Aetna", "Cigna", "BlueCross", "UnitedHealth"}
	return pick(fx, providers)
}

func (fx *Factory) MemberID() string {
	return fmt.Sprintf("MBR%s", fx.uniqueSuffix())
}

// UniqueName tags a prefix the way the manual scripts did.
func (fx *Factory) UniqueName(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, fx.uniqueSuffix())
}

func pick(fx *Factory, options []string) string {
	return options[fx.f.IntBetween(0, len(options)-1)]
}

// slug reduces a generated person name to an email-safe local part. Faker
// names can carry honorifics and suffixes ("Ms. Gilda Bogan MD"), which
// would otherwise produce consecutive or leading/trailing dots.
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else if b.Len() > 0 && !strings.HasSuffix(b.String(), ".") {
			b.WriteByte('.')
		}
	}
	return strings.Trim(b.String(), ".")
}
