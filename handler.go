package main

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"lg/daily-nutrition-go-api/internal/nutrition"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler holds shared dependencies (session store, config) for all route handlers.
type Handler struct {
	sessions   *sessionStore
	sessionTTL time.Duration
}

func newHandler(cfg config) *Handler {
	return &Handler{
		sessions:   newSessionStore(cfg.SessionTTL),
		sessionTTL: cfg.SessionTTL,
	}
}

/* ─── Response helpers ────────────────────────────────────────────────── */

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// withForm runs fn against the caller's session form and refreshes the session
// cookie, issuing a new one when the browser had none or it expired.
func (h *Handler) withForm(c *gin.Context, fn func(f *nutrition.Form)) {
	id, _ := c.Cookie(sessionCookie)
	h.setSessionCookie(c, h.sessions.use(id, fn))
}

// viewForm runs fn against the caller's session form without creating one.
// A browser with no live session sees a throwaway default form and gets no
// cookie.
func (h *Handler) viewForm(c *gin.Context, fn func(f *nutrition.Form)) {
	id, _ := c.Cookie(sessionCookie)
	if h.sessions.view(id, fn) {
		h.setSessionCookie(c, id)
		return
	}
	fn(nutrition.NewForm())
}

func (h *Handler) setSessionCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, int(h.sessionTTL.Seconds()), "/", "", false, true)
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// loadTemplates parses the embedded HTML templates.
func loadTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// registerRoutes installs the HTML templates and registers all routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) error {
	tmpl, err := loadTemplates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	// Web form
	router.GET("/", h.getFormPage)
	router.POST("/", h.postFormPage)

	// JSON API
	api := router.Group("/api")
	api.GET("/activity-levels", h.getActivityLevels)
	api.GET("/estimate", h.getEstimate)
	api.GET("/form", h.getForm)
	api.PATCH("/form", h.patchForm)
	return nil
}

// corsHandler wraps the router so browsers on other origins can call the JSON API.
func corsHandler(cfg config, next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(next)
}
