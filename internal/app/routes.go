package app

import (
	"github.com/gorilla/mux"

	"watchlist/handlers"
	"watchlist/utils"
)

func newRouter(h *handlers.Handler) *mux.Router {
	r := utils.NewRouter()
	h.Register(r)
	return r
}
