// Package stub implements an in-memory ClinicHub backend covering the API
// surface the check suites exercise. It exists so the harness can be tested
// without a live deployment.
package stub

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultAdminEmail    = "admin@clinichub.local"
	DefaultAdminPassword = "changeme123"
)

type Options struct {
	AdminEmail    string
	AdminPassword string
	TokenTTL      time.Duration
}

type Server struct {
	opts         Options
	engine       *gin.Engine
	store        *store
	signingKey   []byte
	passwordHash []byte
	adminID      string
}

func New(opts Options) (*Server, error) {
	if opts.AdminEmail == "" {
		opts.AdminEmail = DefaultAdminEmail
	}
	if opts.AdminPassword == "" {
		opts.AdminPassword = DefaultAdminPassword
	}
	if opts.TokenTTL == 0 {
		opts.TokenTTL = time.Hour
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		opts:         opts,
		engine:       gin.New(),
		store:        newStore(),
		signingKey:   key,
		passwordHash: hash,
		adminID:      newID().String(),
	}
	s.engine.Use(gin.Recovery())
	s.routes()
	return s, nil
}

// Engine exposes the router for httptest or ListenAndServe.
func (s *Server) Engine() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respondOK(c, gin.H{"status": "up"})
	})

	auth := api.Group("/auth")
	auth.POST("/login", s.login)
	auth.POST("/refresh", s.refresh)

	protected := api.Group("")
	protected.Use(s.authenticate())

	protected.GET("/auth/me", s.me)

	protected.POST("/patients", s.createPatient)
	protected.GET("/patients", s.listPatients)
	protected.GET("/patients/:id", s.getPatient)
	protected.PUT("/patients/:id", s.updatePatient)
	protected.DELETE("/patients/:id", s.deletePatient)

	protected.POST("/encounters", s.createEncounter)
	protected.GET("/encounters", s.listEncounters)
	protected.GET("/encounters/:id", s.getEncounter)
	protected.PUT("/encounters/:id/status", s.updateEncounterStatus)
	protected.DELETE("/encounters/:id", s.deleteEncounter)

	protected.POST("/soap-notes", s.createSOAPNote)
	protected.GET("/soap-notes/:id", s.getSOAPNote)
	protected.PUT("/soap-notes/:id", s.updateSOAPNote)
	protected.POST("/soap-notes/:id/sign", s.signSOAPNote)
	protected.DELETE("/soap-notes/:id", s.deleteSOAPNote)

	protected.POST("/invoices", s.createInvoice)
	protected.GET("/invoices", s.listInvoices)
	protected.GET("/invoices/:id", s.getInvoice)
	protected.POST("/invoices/:id/payments", s.recordPayment)
	protected.DELETE("/invoices/:id", s.deleteInvoice)

	protected.POST("/inventory", s.createInventoryItem)
	protected.GET("/inventory/low-stock", s.listLowStock)
	protected.GET("/inventory/:id", s.getInventoryItem)
	protected.PUT("/inventory/:id", s.updateInventoryItem)
	protected.POST("/inventory/:id/adjust", s.adjustStock)
	protected.DELETE("/inventory/:id", s.deleteInventoryItem)

	protected.POST("/prescriptions", s.createPrescription)
	protected.GET("/prescriptions/:id", s.getPrescription)
	protected.POST("/prescriptions/:id/refill", s.refillPrescription)
	protected.POST("/prescriptions/:id/discontinue", s.discontinuePrescription)
	protected.DELETE("/prescriptions/:id", s.deletePrescription)

	protected.POST("/insurance/policies", s.createPolicy)
	protected.GET("/insurance/policies/:id", s.getPolicy)
	protected.GET("/insurance/policies/:id/verify", s.verifyPolicy)
	protected.DELETE("/insurance/policies/:id", s.deletePolicy)
	protected.POST("/insurance/claims", s.submitClaim)
	protected.GET("/insurance/claims/:id", s.getClaim)

	protected.POST("/telehealth/sessions", s.createSession)
	protected.GET("/telehealth/sessions/:id", s.getSession)
	protected.POST("/telehealth/sessions/:id/start", s.startSession)
	protected.POST("/telehealth/sessions/:id/complete", s.completeSession)
	protected.DELETE("/telehealth/sessions/:id", s.deleteSession)

	protected.POST("/referrals", s.createReferral)
	protected.GET("/referrals/:id", s.getReferral)
	protected.PUT("/referrals/:id/status", s.updateReferralStatus)
	protected.DELETE("/referrals/:id", s.deleteReferral)

	protected.POST("/forms/templates", s.createFormTemplate)
	protected.GET("/forms/templates/:id", s.getFormTemplate)
	protected.DELETE("/forms/templates/:id", s.deleteFormTemplate)
	protected.POST("/forms/submissions", s.submitForm)
	protected.GET("/forms/submissions/:id", s.getFormSubmission)
}

// authenticate verifies the Bearer token issued by login.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondError(c, http.StatusUnauthorized, "missing authorization header")
			c.Abort()
			return
		}
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondError(c, http.StatusUnauthorized, "invalid authorization format")
			c.Abort()
			return
		}
		claims, err := s.parseToken(parts[1], "access")
		if err != nil {
			respondError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}
		c.Set("accountEmail", claims["email"])
		c.Next()
	}
}

func (s *Server) issueToken(typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   s.adminID,
		"email": s.opts.AdminEmail,
		"typ":   typ,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

func (s *Server) parseToken(token, typ string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != typ {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func randomToken() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
