package handlers

import "net/http"

// LoginPage shows the login form. Already-authenticated callers go back to
// the index.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(w, r)
	if h.sessions.IsAuthenticated(token) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, h.loginTemplate, http.StatusOK, h.pageData(token))
}

// LoginSubmit checks the submitted credentials. Empty fields count as
// invalid input, a mismatch as a failed login; both leave the session
// anonymous.
func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(w, r)

	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.sessions.Flash(token, "Invalid input.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ok, err := h.accounts.Authenticate(username, password)
	if err != nil {
		http.Error(w, "failed to check credentials", http.StatusInternalServerError)
		return
	}
	if !ok {
		h.sessions.Flash(token, "Invalid username or password.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.sessions.SetAuthenticated(token, true)
	h.sessions.Flash(token, "Login success.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout revokes the session outright and hands the caller a fresh anonymous
// one, so the old token cannot be replayed.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(w, r)
	h.sessions.Revoke(token)

	fresh := h.sessions.Create()
	h.setSessionCookie(w, fresh)
	h.sessions.Flash(fresh, "Goodbye.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
