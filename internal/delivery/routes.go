package delivery

import (
	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(
	r chi.Router,
	hHealth *HealthHandler,
	hAuth *AuthHandler,
	hAdmin *AdminHandler,
	authSvc ports.AuthService,
) {
	// --- public ---
	r.With(middleware.Recoverer).Get("/ping", hHealth.Ping)
	r.With(middleware.Recoverer).Get("/health", hHealth.Health)
	r.With(middleware.Recoverer).Post("/auth/login", hAuth.Login)

	// --- protected ---
	r.Route("/admin", func(pr chi.Router) {
		pr.Use(
			middleware.Recoverer,
			AuthMiddleware(authSvc),
		)

		pr.Get("/stats", hAdmin.Stats)
		pr.Get("/users", hAdmin.Users)
		pr.Get("/payments/pending", hAdmin.PendingPayments)
	})
}
