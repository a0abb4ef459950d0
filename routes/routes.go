package routes

import (
	"github.com/Deesus/Swiss-Tournament-Scheduler/handlers"
	"github.com/Deesus/Swiss-Tournament-Scheduler/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Player    *handlers.PlayerHandler
	Match     *handlers.MatchHandler
	Standings *handlers.StandingsHandler
	Pairing   *handlers.PairingHandler
	Overview  *handlers.OverviewHandler
	Admin     *handlers.AdminHandler
	WebSocket *handlers.WebSocketHandler
}

func SetupRoutes(router *chi.Mux, h Handlers, jwtSecret string, allowedOrigins []string) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/auth/login", h.Auth.Login)

	// Public read surface.
	router.Get("/players", h.Player.List)
	router.Get("/players/count", h.Player.Count)
	router.Get("/standings", h.Standings.Get)
	router.Get("/pairings", h.Pairing.Get)
	router.Get("/tournaments", h.Overview.ListTournaments)
	router.Route("/tournaments/{tournamentID}", func(r chi.Router) {
		r.Get("/standings", h.Standings.Get)
		r.Get("/pairings", h.Pairing.Get)
	})
	router.Get("/ws/tournaments/{tournamentID}", h.WebSocket.ServeWs)

	// Mutations are organizer-only.
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate([]byte(jwtSecret)))
		r.Use(middleware.RequireRole(middleware.RoleOrganizer))

		r.Post("/players", h.Player.Register)
		r.Post("/matches", h.Match.Report)
		r.Delete("/admin/matches", h.Admin.ResetMatches)
		r.Delete("/admin/players", h.Admin.ResetAll)
	})
}
