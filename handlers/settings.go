package handlers

import "net/http"

// SettingsPage shows the account settings form.
func (h *Handler) SettingsPage(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(w, r)
	h.render(w, h.settingsTemplate, http.StatusOK, h.pageData(token))
}

// SettingsSubmit updates the owner's display name.
func (h *Handler) SettingsSubmit(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(w, r)

	name := r.FormValue("name")
	if name == "" {
		h.sessions.Flash(token, "Invalid input.")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	if err := h.accounts.Rename(name); err != nil {
		http.Error(w, "failed to update settings", http.StatusInternalServerError)
		return
	}

	h.sessions.Flash(token, "Settings updated.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
