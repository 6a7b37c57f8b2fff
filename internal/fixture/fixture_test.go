package fixture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinichub/apicheck/internal/model"
)

func TestPatientPayloadsAreUniqueAndValid(t *testing.T) {
	fx := NewFactory()

	// Generated names occasionally carry honorifics and suffixes, so a
	// large batch is needed to cover the awkward shapes.
	seen := make(map[string]bool, 200)
	for i := 0; i < 200; i++ {
		p := fx.Patient()
		require.NoError(t, model.Validate(p), "payload %d invalid: %+v", i, p)
		assert.False(t, seen[p.Email], "duplicate email %q", p.Email)
		seen[p.Email] = true
	}
}

func TestSlugHandlesHonorificsAndSuffixes(t *testing.T) {
	cases := map[string]string{
		"Ms. Gilda Bogan MD":  "ms.gilda.bogan.md",
		"Mr. Marcel Predovic": "mr.marcel.predovic",
		"Prof. O'Connell Jr.": "prof.o.connell.jr",
		"  Ada   Lovelace  ":  "ada.lovelace",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug(in), "slug(%q)", in)
	}
}

func TestSKUAndMemberIDPrefixes(t *testing.T) {
	fx := NewFactory()
	assert.True(t, strings.HasPrefix(fx.SKU(), "SKU-"))
	assert.True(t, strings.HasPrefix(fx.MemberID(), "MBR"))
	assert.NotEqual(t, fx.SKU(), fx.SKU())
}

func TestUniqueNameKeepsPrefix(t *testing.T) {
	fx := NewFactory()
	name := fx.UniqueName("Intake Form")
	assert.True(t, strings.HasPrefix(name, "Intake Form_"))
}

func TestMedicationPartsNonEmpty(t *testing.T) {
	fx := NewFactory()
	med, dose, freq := fx.Medication()
	assert.NotEmpty(t, med)
	assert.NotEmpty(t, dose)
	assert.NotEmpty(t, freq)
}
