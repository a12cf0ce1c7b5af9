package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))
	router.Use(h.withSession)

	// public pages
	router.Group(func(r chi.Router) {
		r.Get("/", h.board)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.Get("/avatar/{id}", h.avatar)
		r.Get("/api/version", h.getServerVersion)

		// the dispatcher authorizes each method itself
		r.Post("/api/rpc", h.callRPC)
	})

	// signed-in users
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuthentication)

		r.Get("/create_ad", h.createAdPage)
		r.Post("/create_ad", h.createAd)
		r.Get("/edit_ad/{id}", h.editAdPage)
		r.Post("/edit_ad/{id}", h.editAd)
		r.Post("/delete_ad/{id}", h.deleteAd)

		r.Get("/profile", h.profile)
		r.Get("/edit_profile", h.editProfilePage)
		r.Post("/edit_profile", h.editProfile)

		// administrator flag is checked by the services against the store
		r.Get("/users", h.users)
		r.Get("/edit_user/{id}", h.editUserPage)
		r.Post("/edit_user/{id}", h.editUser)
		r.Post("/delete_user/{id}", h.deleteUser)
		r.Post("/delete_ad_admin/{id}", h.deleteAdAsAdmin)
	})

	return router
}
