package stub

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinichub/apicheck/internal/model"
)

// --- invoices ---

func (s *Server) createInvoice(c *gin.Context) {
	var req model.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := model.Validate(req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.patients[req.PatientID]; !ok {
		respondError(c, http.StatusNotFound, "patient not found")
		return
	}
	var total int64
	for _, item := range req.LineItems {
		total += int64(item.Quantity) * item.UnitPrice
	}
	invoice := &model.Invoice{
		Base:      newBase(),
		PatientID: req.PatientID,
		LineItems: req.LineItems,
		Total:     total,
		Balance:   total,
		Status:    model.InvoiceStatusOpen,
	}
	s.store.invoices[invoice.ID] = invoice
	respondCreated(c, invoice)
}

func (s *Server) getInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	invoice, ok := s.store.invoices[id]
	if !ok {
		respondError(c, http.StatusNotFound, "invoice not found")
		return
	}
	respondOK(c, invoice)
}

func (s *Server) listInvoices(c *gin.Context) {
	var patientID uuid.UUID
	if q := c.Query("patient_id"); q != "" {
		id, err := uuid.Parse(q)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid patient_id")
			return
		}
		patientID = id
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	invoices := make([]*model.Invoice, 0)
	for _, inv := range s.store.invoices {
		if patientID != uuid.Nil && inv.PatientID != patientID {
			continue
		}
		invoices = append(invoices, inv)
	}
	respondOK(c, invoices)
}

func (s *Server) recordPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := model.Validate(req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	invoice, ok := s.store.invoices[id]
	if !ok {
		respondError(c, http.StatusNotFound, "invoice not found")
		return
	}
	if invoice.Status != model.InvoiceStatusOpen {
		respondError(c, http.StatusConflict, "invoice is not open")
		return
	}
	if req.Amount > invoice.Balance {
		respondError(c, http.StatusBadRequest,
			fmt.Sprintf("payment %d exceeds balance %d", req.Amount, invoice.Balance))
		return
	}
	invoice.AmountPaid += req.Amount
	invoice.Balance -= req.Amount
	if invoice.Balance == 0 {
		invoice.Status = model.InvoiceStatusPaid
	}
	invoice.UpdatedAt = time.Now().UTC()
	s.store.payments[id] = append(s.store.payments[id], model.Payment{
		ID:        newID(),
		InvoiceID: id,
		Amount:    req.Amount,
		Method:    req.Method,
		PostedAt:  time.Now().UTC(),
	})
	respondOK(c, invoice)
}

func (s *Server) deleteInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.invoices[id]; !ok {
		respondError(c, http.StatusNotFound, "invoice not found")
		return
	}
	delete(s.store.invoices, id)
	delete(s.store.payments, id)
	respondOK(c, gin.H{"deleted": id})
}

// --- inventory ---

func (s *Server) createInventoryItem(c *gin.Context) {
	var req model.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := model.Validate(req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for _, item := range s.store.items {
		if item.SKU == req.SKU {
			respondError(c, http.StatusConflict, "sku already exists")
			return
		}
	}
	item := &model.InventoryItem{
		Base:         newBase(),
		SKU:          req.SKU,
		Name:         req.Name,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		ReorderLevel: req.ReorderLevel,
	}
	s.store.items[item.ID] = item
	respondCreated(c, item)
}

func (s *Server) getInventoryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	item, ok := s.store.items[id]
	if !ok {
		respondError(c, http.StatusNotFound, "inventory item not found")
		return
	}
	respondOK(c, item)
}

func (s *Server) updateInventoryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	item, ok := s.store.items[id]
	if !ok {
		respondError(c, http.StatusNotFound, "inventory item not found")
		return
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.ReorderLevel != nil {
		item.ReorderLevel = *req.ReorderLevel
	}
	item.UpdatedAt = time.Now().UTC()
	respondOK(c, item)
}

func (s *Server) adjustStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := model.Validate(req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	item, ok := s.store.items[id]
	if !ok {
		respondError(c, http.StatusNotFound, "inventory item not found")
		return
	}
	if item.Quantity+req.Delta < 0 {
		respondError(c, http.StatusBadRequest, "adjustment would take stock below zero")
		return
	}
	item.Quantity += req.Delta
	item.UpdatedAt = time.Now().UTC()
	respondOK(c, item)
}

func (s *Server) listLowStock(c *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	items := make([]*model.InventoryItem, 0)
	for _, item := range s.store.items {
		if item.Quantity <= item.ReorderLevel {
			items = append(items, item)
		}
	}
	respondOK(c, items)
}

func (s *Server) deleteInventoryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.items[id]; !ok {
		respondError(c, http.StatusNotFound, "inventory item not found")
		return
	}
	delete(s.store.items, id)
	respondOK(c, gin.H{"deleted": id})
}

// --- insurance ---

func (s *Server) createPolicy(c *gin.Context) {
	var req model.CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := model.Validate(req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.patients[req.PatientID]; !ok {
		respondError(c, http.StatusNotFound, "patient not found")
		return
	}
	policy := &model.InsurancePolicy{
		Base:        newBase(),
		PatientID:   req.PatientID,
		Provider:    req.Provider,
		MemberID:    req.MemberID,
		GroupNumber: req.GroupNumber,
		Status:      "active",
	}
	s.store.policies[policy.ID] = policy
	respondCreated(c, policy)
}

func (s *Server) getPolicy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	policy, ok := s.store.policies[id]
	if !ok {
		respondError(c, http.StatusNotFound, "policy not found")
		return
	}
	respondOK(c, policy)
}

func (s *Server) verifyPolicy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	policy, ok := s.store.policies[id]
	if !ok {
		respondError(c, http.StatusNotFound, "policy not found")
		return
	}
	respondOK(c, model.VerificationResult{
		PolicyID:   policy.ID,
		Eligible:   policy.Status == "active",
		Plan:       policy.Provider + " PPO",
		VerifiedAt: time.Now().UTC(),
	})
}

func (s *Server) submitClaim(c *gin.Context) {
	var req model.CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := model.Validate(req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	invoice, ok := s.store.invoices[req.InvoiceID]
	if !ok {
		respondError(c, http.StatusNotFound, "invoice not found")
		return
	}
	if _, ok := s.store.policies[req.PolicyID]; !ok {
		respondError(c, http.StatusNotFound, "policy not found")
		return
	}
	claim := &model.InsuranceClaim{
		Base:      newBase(),
		InvoiceID: req.InvoiceID,
		PolicyID:  req.PolicyID,
		Amount:    invoice.Balance,
		Status:    model.ClaimStatusSubmitted,
	}
	s.store.claims[claim.ID] = claim
	respondCreated(c, claim)
}

func (s *Server) getClaim(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	claim, ok := s.store.claims[id]
	if !ok {
		respondError(c, http.StatusNotFound, "claim not found")
		return
	}
	respondOK(c, claim)
}

func (s *Server) deletePolicy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.policies[id]; !ok {
		respondError(c, http.StatusNotFound, "policy not found")
		return
	}
	delete(s.store.policies, id)
	respondOK(c, gin.H{"deleted": id})
}

// --- forms ---

func (s *Server) createFormTemplate(c *gin.Context) {
	var req model.CreateFormTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := model.Validate(req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	template := &model.FormTemplate{
		Base:   newBase(),
		Name:   req.Name,
		Fields: req.Fields,
	}
	s.store.templates[template.ID] = template
	respondCreated(c, template)
}

func (s *Server) getFormTemplate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	template, ok := s.store.templates[id]
	if !ok {
		respondError(c, http.StatusNotFound, "form template not found")
		return
	}
	respondOK(c, template)
}

func (s *Server) submitForm(c *gin.Context) {
	var req model.CreateFormSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := model.Validate(req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	template, ok := s.store.templates[req.TemplateID]
	if !ok {
		respondError(c, http.StatusNotFound, "form template not found")
		return
	}
	if _, ok := s.store.patients[req.PatientID]; !ok {
		respondError(c, http.StatusNotFound, "patient not found")
		return
	}
	for _, field := range template.Fields {
		if !field.Required {
			continue
		}
		if _, ok := req.Answers[field.Name]; !ok {
			respondError(c, http.StatusBadRequest,
				fmt.Sprintf("missing required field %q", field.Name))
			return
		}
	}
	submission := &model.FormSubmission{
		Base:       newBase(),
		TemplateID: req.TemplateID,
		PatientID:  req.PatientID,
		Answers:    req.Answers,
	}
	s.store.submissions[submission.ID] = submission
	respondCreated(c, submission)
}

func (s *Server) getFormSubmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	submission, ok := s.store.submissions[id]
	if !ok {
		respondError(c, http.StatusNotFound, "form submission not found")
		return
	}
	respondOK(c, submission)
}

func (s *Server) deleteFormTemplate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.templates[id]; !ok {
		respondError(c, http.StatusNotFound, "form template not found")
		return
	}
	delete(s.store.templates, id)
	respondOK(c, gin.H{"deleted": id})
}
