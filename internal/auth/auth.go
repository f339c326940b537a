package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	"github.com/tahcohcat/puravida-web/config"
	"github.com/tahcohcat/puravida-web/internal/logger"
)

const (
	sessionName      = "puravida-session"
	authenticatedKey = "authenticated"
)

// Gate is an optional single-password lock in front of the API. When disabled
// every request passes through.
type Gate struct {
	enabled      bool
	passwordHash []byte
	store        *sessions.CookieStore
	log          *logger.Log
}

type loginRequest struct {
	Password string `json:"password"`
}

func NewGate(cfg config.AuthConfig, l *logger.Log) *Gate {
	if l == nil {
		l = logger.New()
	}
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Gate{
		enabled:      cfg.Enabled,
		passwordHash: []byte(cfg.PasswordHash),
		store:        store,
		log:          l,
	}
}

func (g *Gate) Enabled() bool { return g.enabled }

func (g *Gate) authenticated(r *http.Request) bool {
	session, err := g.store.Get(r, sessionName)
	if err != nil {
		return false
	}
	ok, _ := session.Values[authenticatedKey].(bool)
	return ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// LoginHandler reports the session state on GET and checks the password on POST.
// The password may come as JSON or as a form field.
func (g *Gate) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		writeJSON(w, http.StatusOK, map[string]bool{
			"enabled":       g.enabled,
			"authenticated": !g.enabled || g.authenticated(r),
		})
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !g.enabled {
		writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
		return
	}

	var req loginRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		req.Password = r.FormValue("password")
	}

	if len(g.passwordHash) == 0 || bcrypt.CompareHashAndPassword(g.passwordHash, []byte(req.Password)) != nil {
		g.log.Warn("rejected login attempt")
		http.Error(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	session, _ := g.store.Get(r, sessionName)
	session.Values[authenticatedKey] = true
	if err := session.Save(r, w); err != nil {
		g.log.WithError(err).Error("failed to save session")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

func (g *Gate) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	session, _ := g.store.Get(r, sessionName)
	session.Values[authenticatedKey] = false
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		g.log.WithError(err).Warn("failed to clear session")
	}
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": false})
}

func (g *Gate) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.enabled && !g.authenticated(r) {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
