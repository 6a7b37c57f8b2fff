package stub

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinichub/apicheck/internal/model"
)

func (s *Server) login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email != s.opts.AdminEmail {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	pair, err := s.tokenPair()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "token generation failed")
		return
	}
	respondOK(c, pair)
}

func (s *Server) refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := s.parseToken(req.RefreshToken, "refresh"); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	pair, err := s.tokenPair()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "token generation failed")
		return
	}
	respondOK(c, pair)
}

func (s *Server) tokenPair() (model.TokenPair, error) {
	access, err := s.issueToken("access", s.opts.TokenTTL)
	if err != nil {
		return model.TokenPair{}, err
	}
	refresh, err := s.issueToken("refresh", 24*time.Hour)
	if err != nil {
		return model.TokenPair{}, err
	}
	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Server) me(c *gin.Context) {
	id, _ := uuid.Parse(s.adminID)
	respondOK(c, model.Account{
		ID:    id,
		Email: s.opts.AdminEmail,
		Name:  "ClinicHub Admin",
		Role:  "admin",
	})
}
