package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"watchlist/services/watchlist"
)

// Index lists all watchlist entries. Readable without logging in; the add
// form only appears for the authenticated owner.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(w, r)

	movies, err := h.watchlist.List()
	if err != nil {
		http.Error(w, "failed to load watchlist", http.StatusInternalServerError)
		return
	}

	data := h.pageData(token)
	data.Movies = movies
	h.render(w, h.indexTemplate, http.StatusOK, data)
}

// CreateMovie handles the add form on the index page.
func (h *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(w, r)

	title := r.FormValue("title")
	year := r.FormValue("year")

	_, err := h.watchlist.Create(title, year)
	switch {
	case errors.Is(err, watchlist.ErrInvalidInput):
		h.sessions.Flash(token, "Invalid input.")
	case err != nil:
		http.Error(w, "failed to create item", http.StatusInternalServerError)
		return
	default:
		h.sessions.Flash(token, "Item created.")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditPage shows the edit form for one entry, or the 404 page for an
// unknown id.
func (h *Handler) EditPage(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(w, r)

	movie, err := h.watchlist.Get(movieID(r))
	if errors.Is(err, watchlist.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "failed to load item", http.StatusInternalServerError)
		return
	}

	data := h.pageData(token)
	data.Movie = movie
	h.render(w, h.editTemplate, http.StatusOK, data)
}

// UpdateMovie handles the edit form. A missing id wins over validation:
// the 404 page renders and no notice is queued.
func (h *Handler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(w, r)
	id := movieID(r)

	title := r.FormValue("title")
	year := r.FormValue("year")

	_, err := h.watchlist.Update(id, title, year)
	switch {
	case errors.Is(err, watchlist.ErrNotFound):
		h.NotFound(w, r)
		return
	case errors.Is(err, watchlist.ErrInvalidInput):
		h.sessions.Flash(token, "Invalid input.")
		http.Redirect(w, r, fmt.Sprintf("/movie/edit/%d", id), http.StatusSeeOther)
		return
	case err != nil:
		http.Error(w, "failed to update item", http.StatusInternalServerError)
		return
	}

	h.sessions.Flash(token, "Item updated.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteMovie removes one entry, or renders the 404 page for an unknown id.
func (h *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(w, r)

	err := h.watchlist.Delete(movieID(r))
	if errors.Is(err, watchlist.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "failed to delete item", http.StatusInternalServerError)
		return
	}

	h.sessions.Flash(token, "Item deleted.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// movieID extracts the id path variable. The route pattern restricts it to
// digits, so a parse failure cannot happen for registered routes.
func movieID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}
