package stub

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinichub/apicheck/internal/model"
)

// --- patients ---

func (s *Server) createPatient(c *gin.Context) {
	var req model.CreatePatientRequest
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
	for _, p := range s.store.patients {
		if p.Email == req.Email {
			respondError(c, http.StatusConflict, "patient email already registered")
			return
		}
	}
	patient := &model.Patient{
		Base:        newBase(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Address:     req.Address,
		Status:      model.PatientStatus(req.Status),
	}
	s.store.patients[patient.ID] = patient
	respondCreated(c, patient)
}

func (s *Server) getPatient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	patient, ok := s.store.patients[id]
	if !ok {
		respondError(c, http.StatusNotFound, "patient not found")
		return
	}
	respondOK(c, patient)
}

func (s *Server) listPatients(c *gin.Context) {
	search := strings.ToLower(c.Query("search"))
	status := c.Query("status")

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	patients := make([]*model.Patient, 0, len(s.store.patients))
	for _, p := range s.store.patients {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Email), search) {
			continue
		}
		if status != "" && string(p.Status) != status {
			continue
		}
		patients = append(patients, p)
	}
	respondOK(c, patients)
}

func (s *Server) updatePatient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	patient, ok := s.store.patients[id]
	if !ok {
		respondError(c, http.StatusNotFound, "patient not found")
		return
	}
	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.Status != nil {
		patient.Status = model.PatientStatus(*req.Status)
	}
	patient.UpdatedAt = time.Now().UTC()
	respondOK(c, patient)
}

func (s *Server) deletePatient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.patients[id]; !ok {
		respondError(c, http.StatusNotFound, "patient not found")
		return
	}
	delete(s.store.patients, id)
	respondOK(c, gin.H{"deleted": id})
}

// --- encounters ---

func (s *Server) createEncounter(c *gin.Context) {
	var req model.CreateEncounterRequest
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
	encounter := &model.Encounter{
		Base:      newBase(),
		PatientID: req.PatientID,
		Clinician: req.Clinician,
		Type:      req.Type,
		Reason:    req.Reason,
		Status:    model.EncounterStatusInProgress,
		Notes:     req.Notes,
	}
	s.store.encounters[encounter.ID] = encounter
	respondCreated(c, encounter)
}

func (s *Server) getEncounter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	encounter, ok := s.store.encounters[id]
	if !ok {
		respondError(c, http.StatusNotFound, "encounter not found")
		return
	}
	respondOK(c, encounter)
}

func (s *Server) listEncounters(c *gin.Context) {
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
	encounters := make([]*model.Encounter, 0)
	for _, e := range s.store.encounters {
		if patientID != uuid.Nil && e.PatientID != patientID {
			continue
		}
		encounters = append(encounters, e)
	}
	respondOK(c, encounters)
}

func (s *Server) updateEncounterStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.UpdateEncounterStatusRequest
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
	encounter, ok := s.store.encounters[id]
	if !ok {
		respondError(c, http.StatusNotFound, "encounter not found")
		return
	}
	if encounter.Status == model.EncounterStatusCompleted {
		respondError(c, http.StatusConflict, "encounter already completed")
		return
	}
	encounter.Status = req.Status
	encounter.UpdatedAt = time.Now().UTC()
	respondOK(c, encounter)
}

func (s *Server) deleteEncounter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.encounters[id]; !ok {
		respondError(c, http.StatusNotFound, "encounter not found")
		return
	}
	delete(s.store.encounters, id)
	respondOK(c, gin.H{"deleted": id})
}

// --- SOAP notes ---

func (s *Server) createSOAPNote(c *gin.Context) {
	var req model.CreateSOAPNoteRequest
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
	if _, ok := s.store.encounters[req.EncounterID]; !ok {
		respondError(c, http.StatusNotFound, "encounter not found")
		return
	}
	note := &model.SOAPNote{
		Base:        newBase(),
		EncounterID: req.EncounterID,
		Subjective:  req.Subjective,
		Objective:   req.Objective,
		Assessment:  req.Assessment,
		Plan:        req.Plan,
		Status:      model.SOAPNoteStatusDraft,
	}
	s.store.notes[note.ID] = note
	respondCreated(c, note)
}

func (s *Server) getSOAPNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	note, ok := s.store.notes[id]
	if !ok {
		respondError(c, http.StatusNotFound, "soap note not found")
		return
	}
	respondOK(c, note)
}

func (s *Server) updateSOAPNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.UpdateSOAPNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	note, ok := s.store.notes[id]
	if !ok {
		respondError(c, http.StatusNotFound, "soap note not found")
		return
	}
	if note.Status == model.SOAPNoteStatusSigned {
		respondError(c, http.StatusConflict, "signed notes are immutable")
		return
	}
	if req.Subjective != nil {
		note.Subjective = *req.Subjective
	}
	if req.Objective != nil {
		note.Objective = *req.Objective
	}
	if req.Assessment != nil {
		note.Assessment = *req.Assessment
	}
	if req.Plan != nil {
		note.Plan = *req.Plan
	}
	note.UpdatedAt = time.Now().UTC()
	respondOK(c, note)
}

func (s *Server) signSOAPNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	note, ok := s.store.notes[id]
	if !ok {
		respondError(c, http.StatusNotFound, "soap note not found")
		return
	}
	if note.Status == model.SOAPNoteStatusSigned {
		respondError(c, http.StatusConflict, "note already signed")
		return
	}
	now := time.Now().UTC()
	note.Status = model.SOAPNoteStatusSigned
	note.SignedBy = s.opts.AdminEmail
	note.SignedAt = &now
	note.UpdatedAt = now
	respondOK(c, note)
}

func (s *Server) deleteSOAPNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	note, ok := s.store.notes[id]
	if !ok {
		respondError(c, http.StatusNotFound, "soap note not found")
		return
	}
	if note.Status == model.SOAPNoteStatusSigned {
		respondError(c, http.StatusConflict, "signed notes cannot be deleted")
		return
	}
	delete(s.store.notes, id)
	respondOK(c, gin.H{"deleted": id})
}

// --- prescriptions ---

func (s *Server) createPrescription(c *gin.Context) {
	var req model.CreatePrescriptionRequest
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
	rx := &model.Prescription{
		Base:       newBase(),
		PatientID:  req.PatientID,
		Medication: req.Medication,
		Dosage:     req.Dosage,
		Frequency:  req.Frequency,
		Refills:    req.Refills,
		Status:     model.PrescriptionStatusActive,
	}
	s.store.prescriptions[rx.ID] = rx
	respondCreated(c, rx)
}

func (s *Server) getPrescription(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	rx, ok := s.store.prescriptions[id]
	if !ok {
		respondError(c, http.StatusNotFound, "prescription not found")
		return
	}
	respondOK(c, rx)
}

func (s *Server) refillPrescription(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	rx, ok := s.store.prescriptions[id]
	if !ok {
		respondError(c, http.StatusNotFound, "prescription not found")
		return
	}
	if rx.Status != model.PrescriptionStatusActive {
		respondError(c, http.StatusConflict, "prescription is not active")
		return
	}
	if rx.Refills <= 0 {
		respondError(c, http.StatusConflict, "no refills remaining")
		return
	}
	rx.Refills--
	rx.UpdatedAt = time.Now().UTC()
	respondOK(c, rx)
}

func (s *Server) discontinuePrescription(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	rx, ok := s.store.prescriptions[id]
	if !ok {
		respondError(c, http.StatusNotFound, "prescription not found")
		return
	}
	rx.Status = model.PrescriptionStatusDiscontinued
	rx.UpdatedAt = time.Now().UTC()
	respondOK(c, rx)
}

func (s *Server) deletePrescription(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.prescriptions[id]; !ok {
		respondError(c, http.StatusNotFound, "prescription not found")
		return
	}
	delete(s.store.prescriptions, id)
	respondOK(c, gin.H{"deleted": id})
}

// --- referrals ---

var referralTransitions = map[model.ReferralStatus][]model.ReferralStatus{
	model.ReferralStatusPending:  {model.ReferralStatusAccepted, model.ReferralStatusDeclined},
	model.ReferralStatusAccepted: {model.ReferralStatusCompleted},
}

func (s *Server) createReferral(c *gin.Context) {
	var req model.CreateReferralRequest
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
	referral := &model.Referral{
		Base:       newBase(),
		PatientID:  req.PatientID,
		Specialty:  req.Specialty,
		ReferredTo: req.ReferredTo,
		Reason:     req.Reason,
		Priority:   req.Priority,
		Status:     model.ReferralStatusPending,
	}
	s.store.referrals[referral.ID] = referral
	respondCreated(c, referral)
}

func (s *Server) getReferral(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	referral, ok := s.store.referrals[id]
	if !ok {
		respondError(c, http.StatusNotFound, "referral not found")
		return
	}
	respondOK(c, referral)
}

func (s *Server) updateReferralStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.UpdateReferralStatusRequest
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
	referral, ok := s.store.referrals[id]
	if !ok {
		respondError(c, http.StatusNotFound, "referral not found")
		return
	}
	allowed := false
	for _, next := range referralTransitions[referral.Status] {
		if next == req.Status {
			allowed = true
			break
		}
	}
	if !allowed {
		respondError(c, http.StatusConflict, "invalid status transition")
		return
	}
	referral.Status = req.Status
	referral.UpdatedAt = time.Now().UTC()
	respondOK(c, referral)
}

func (s *Server) deleteReferral(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.referrals[id]; !ok {
		respondError(c, http.StatusNotFound, "referral not found")
		return
	}
	delete(s.store.referrals, id)
	respondOK(c, gin.H{"deleted": id})
}

// --- telehealth ---

func (s *Server) createSession(c *gin.Context) {
	var req model.CreateSessionRequest
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
	session := &model.TelehealthSession{
		Base:        newBase(),
		PatientID:   req.PatientID,
		Clinician:   req.Clinician,
		ScheduledAt: req.ScheduledAt,
		Status:      model.SessionStatusScheduled,
	}
	s.store.sessions[session.ID] = session
	respondCreated(c, session)
}

func (s *Server) getSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	session, ok := s.store.sessions[id]
	if !ok {
		respondError(c, http.StatusNotFound, "session not found")
		return
	}
	respondOK(c, session)
}

func (s *Server) startSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	session, ok := s.store.sessions[id]
	if !ok {
		respondError(c, http.StatusNotFound, "session not found")
		return
	}
	if session.Status != model.SessionStatusScheduled {
		respondError(c, http.StatusConflict, "session is not scheduled")
		return
	}
	session.Status = model.SessionStatusInProgress
	session.JoinToken = randomToken()
	session.UpdatedAt = time.Now().UTC()
	respondOK(c, session)
}

func (s *Server) completeSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	session, ok := s.store.sessions[id]
	if !ok {
		respondError(c, http.StatusNotFound, "session not found")
		return
	}
	if session.Status != model.SessionStatusInProgress {
		respondError(c, http.StatusConflict, "session is not in progress")
		return
	}
	session.Status = model.SessionStatusCompleted
	session.JoinToken = ""
	session.UpdatedAt = time.Now().UTC()
	respondOK(c, session)
}

func (s *Server) deleteSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.sessions[id]; !ok {
		respondError(c, http.StatusNotFound, "session not found")
		return
	}
	delete(s.store.sessions, id)
	respondOK(c, gin.H{"deleted": id})
}
