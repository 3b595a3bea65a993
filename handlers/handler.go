package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"watchlist/models"
	"watchlist/services/accounts"
	"watchlist/services/session"
	"watchlist/services/watchlist"
)

//go:embed templates/*.html
var pageTemplates embed.FS

// Handler serves the watchlist pages. All authorization decisions happen
// here; the templates only read the view model.
type Handler struct {
	watchlist *watchlist.Service
	accounts  *accounts.Service
	sessions  *session.Store

	indexTemplate    *template.Template
	editTemplate     *template.Template
	loginTemplate    *template.Template
	settingsTemplate *template.Template
	notFoundTemplate *template.Template
}

// New builds the handler and parses the embedded templates.
func New(watchlistSvc *watchlist.Service, accountsSvc *accounts.Service, sessions *session.Store) (*Handler, error) {
	baseContent, err := pageTemplates.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base template: %w", err)
	}

	createPageTemplate := func(pageName string) (*template.Template, error) {
		pageContent, err := pageTemplates.ReadFile("templates/" + pageName)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", pageName, err)
		}
		tmpl, err := template.New("page").Parse(string(baseContent))
		if err != nil {
			return nil, fmt.Errorf("parse base for %s: %w", pageName, err)
		}
		tmpl, err = tmpl.Parse(string(pageContent))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", pageName, err)
		}
		return tmpl, nil
	}

	h := &Handler{
		watchlist: watchlistSvc,
		accounts:  accountsSvc,
		sessions:  sessions,
	}

	pages := []struct {
		name string
		dst  **template.Template
	}{
		{"index.html", &h.indexTemplate},
		{"edit.html", &h.editTemplate},
		{"login.html", &h.loginTemplate},
		{"settings.html", &h.settingsTemplate},
		{"404.html", &h.notFoundTemplate},
	}
	for _, p := range pages {
		tmpl, err := createPageTemplate(p.name)
		if err != nil {
			return nil, err
		}
		*p.dst = tmpl
	}

	return h, nil
}

// Register installs all routes on the router. The table is built here, at
// startup, so the full surface is visible in one place.
func (h *Handler) Register(r *mux.Router) {
	routes := []struct {
		method  string
		path    string
		handler http.HandlerFunc
	}{
		{http.MethodGet, "/", h.Index},
		{http.MethodPost, "/", h.RequireAuth(h.CreateMovie)},
		{http.MethodGet, "/movie/edit/{id:[0-9]+}", h.RequireAuth(h.EditPage)},
		{http.MethodPost, "/movie/edit/{id:[0-9]+}", h.RequireAuth(h.UpdateMovie)},
		{http.MethodPost, "/movie/delete/{id:[0-9]+}", h.RequireAuth(h.DeleteMovie)},
		{http.MethodGet, "/login", h.LoginPage},
		{http.MethodPost, "/login", h.LoginSubmit},
		{http.MethodGet, "/logout", h.RequireAuth(h.Logout)},
		{http.MethodGet, "/settings", h.RequireAuth(h.SettingsPage)},
		{http.MethodPost, "/settings", h.RequireAuth(h.SettingsSubmit)},
	}
	for _, rt := range routes {
		r.HandleFunc(rt.path, rt.handler).Methods(rt.method)
	}

	// A known path with an unregistered method is just as unknown as a bad
	// path; both get the same 404 page.
	r.NotFoundHandler = http.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.NotFound)
}

// PageData is the view model every template receives. Authorization state is
// computed here so the templates never make auth decisions themselves.
type PageData struct {
	User            *models.User
	IsAuthenticated bool
	Notices         []string
	Movies          []models.Movie
	Movie           *models.Movie
}

// sessionToken returns the caller's session token, creating a fresh
// anonymous session (and setting the cookie) when none exists.
func (h *Handler) sessionToken(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		if h.sessions.Get(cookie.Value) != nil {
			return cookie.Value
		}
	}

	token := h.sessions.Create()
	h.setSessionCookie(w, token)
	return token
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireAuth redirects anonymous callers to the login page. The wrapped
// handler never runs for them, so no mutation can happen.
func (h *Handler) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := h.sessionToken(w, r)
		if !h.sessions.IsAuthenticated(token) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// pageData assembles the shared view model: current owner, auth state and
// drained notices.
func (h *Handler) pageData(token string) PageData {
	user, err := h.accounts.Owner()
	if err != nil {
		slog.Warn("watchlist.http.owner_lookup_failed", "error", err)
	}
	return PageData{
		User:            user,
		IsAuthenticated: h.sessions.IsAuthenticated(token),
		Notices:         h.sessions.Flashes(token),
	}
}

func (h *Handler) render(w http.ResponseWriter, tmpl *template.Template, status int, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		slog.Error("watchlist.http.template_error", "error", err)
	}
}

// NotFound renders the fixed 404 page for unknown routes and missing ids.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(w, r)
	h.render(w, h.notFoundTemplate, http.StatusNotFound, h.pageData(token))
}
