package stub

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinichub/apicheck/internal/model"
)

type store struct {
	mu sync.RWMutex

	patients      map[uuid.UUID]*model.Patient
	encounters    map[uuid.UUID]*model.Encounter
	notes         map[uuid.UUID]*model.SOAPNote
	invoices      map[uuid.UUID]*model.Invoice
	payments      map[uuid.UUID][]model.Payment
	items         map[uuid.UUID]*model.InventoryItem
	prescriptions map[uuid.UUID]*model.Prescription
	policies      map[uuid.UUID]*model.InsurancePolicy
	claims        map[uuid.UUID]*model.InsuranceClaim
	sessions      map[uuid.UUID]*model.TelehealthSession
	referrals     map[uuid.UUID]*model.Referral
	templates     map[uuid.UUID]*model.FormTemplate
	submissions   map[uuid.UUID]*model.FormSubmission
}

func newStore() *store {
	return &store{
		patients:      make(map[uuid.UUID]*model.Patient),
		encounters:    make(map[uuid.UUID]*model.Encounter),
		notes:         make(map[uuid.UUID]*model.SOAPNote),
		invoices:      make(map[uuid.UUID]*model.Invoice),
		payments:      make(map[uuid.UUID][]model.Payment),
		items:         make(map[uuid.UUID]*model.InventoryItem),
		prescriptions: make(map[uuid.UUID]*model.Prescription),
		policies:      make(map[uuid.UUID]*model.InsurancePolicy),
		claims:        make(map[uuid.UUID]*model.InsuranceClaim),
		sessions:      make(map[uuid.UUID]*model.TelehealthSession),
		referrals:     make(map[uuid.UUID]*model.Referral),
		templates:     make(map[uuid.UUID]*model.FormTemplate),
		submissions:   make(map[uuid.UUID]*model.FormSubmission),
	}
}

func newID() uuid.UUID {
	return uuid.New()
}

func newBase() model.Base {
	now := time.Now().UTC()
	return model.Base{ID: newID(), CreatedAt: now, UpdatedAt: now}
}

// respond helpers mirror the envelope the real backend uses.

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": data})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}

// parseID pulls the :id param; replies 400 itself on garbage input.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
