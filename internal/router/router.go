package router

import (
	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/internal/handler"
	"github.com/SYK3S999/tamweeli-sub001/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Project      *handler.ProjectHandler
	Investment   *handler.InvestmentHandler
	Wallet       *handler.WalletHandler
	Notification *handler.NotificationHandler
	Message      *handler.MessageHandler
	Consulting   *handler.ConsultingHandler
}

func New(h Handlers, auth *middleware.AuthMiddleware, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	adminOnly := middleware.RequireRole(domain.UserTypeAdmin)
	ownerOnly := middleware.RequireRole(domain.UserTypeProjectOwner)
	investorOnly := middleware.RequireRole(domain.UserTypeInvestor)
	consultantOnly := middleware.RequireRole(domain.UserTypeConsultant)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/demo-login", h.Auth.DemoLogin)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAuth)
				r.Post("/verify", h.Auth.Verify)
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
				r.Put("/me", h.Auth.UpdateMe)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth)

			r.Get("/users/consultants", h.Auth.ListConsultants)

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Project.Browse)
				r.Get("/saved", h.Project.ListSaved)
				r.Get("/mine", h.Project.ListMine)
				r.With(adminOnly).Get("/all", h.Project.ListAll)
				r.With(ownerOnly).Post("/", h.Project.Create)

				r.Route("/{projectID}", func(r chi.Router) {
					r.Get("/", h.Project.Get)
					r.With(ownerOnly).Put("/", h.Project.Update)
					r.With(ownerOnly).Delete("/", h.Project.Delete)
					r.With(ownerOnly).Post("/submit", h.Project.Submit)
					r.With(adminOnly).Post("/approve", h.Project.Approve)
					r.With(adminOnly).Post("/reject", h.Project.Reject)
					r.Post("/save", h.Project.Save)
					r.Post("/unsave", h.Project.Unsave)
					r.With(ownerOnly).Get("/investments", h.Investment.ListByProject)
				})
			})

			r.Route("/investments", func(r chi.Router) {
				r.With(investorOnly).Post("/", h.Investment.Create)
				r.Get("/mine", h.Investment.ListMine)

				r.Route("/{investmentID}", func(r chi.Router) {
					r.Get("/", h.Investment.Get)
					r.With(ownerOnly).Post("/accept", h.Investment.Accept)
					r.With(ownerOnly).Post("/reject", h.Investment.Reject)
					r.With(adminOnly).Post("/complete", h.Investment.Complete)
				})
			})

			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.Wallet.Get)
				r.Get("/transactions", h.Wallet.Transactions)
				r.Post("/deposit", h.Wallet.Deposit)
				r.Post("/withdraw", h.Wallet.Withdraw)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread", h.Notification.UnreadCount)
				r.Post("/read-all", h.Notification.MarkAllRead)
				r.Post("/{notificationID}/read", h.Notification.MarkRead)
			})
			r.Get("/ws/notifications", h.Notification.Stream)

			r.Route("/conversations", func(r chi.Router) {
				r.Get("/", h.Message.ListConversations)
				r.Post("/", h.Message.StartConversation)
				r.Route("/{conversationID}", func(r chi.Router) {
					r.Get("/messages", h.Message.ListMessages)
					r.Post("/messages", h.Message.Send)
					r.Post("/read", h.Message.MarkRead)
				})
			})

			r.Route("/services", func(r chi.Router) {
				r.Get("/", h.Consulting.ListServices)
				r.With(consultantOnly).Post("/", h.Consulting.CreateService)
				r.With(consultantOnly).Get("/mine", h.Consulting.ListMyServices)

				r.Route("/{serviceID}", func(r chi.Router) {
					r.Get("/", h.Consulting.GetService)
					r.With(consultantOnly).Put("/", h.Consulting.UpdateService)
					r.With(consultantOnly).Delete("/", h.Consulting.DeleteService)
				})
			})

			r.Route("/service-requests", func(r chi.Router) {
				r.Post("/", h.Consulting.RequestService)
				r.Get("/mine", h.Consulting.ListMyRequests)
				r.With(consultantOnly).Get("/incoming", h.Consulting.ListIncomingRequests)

				r.Route("/{requestID}", func(r chi.Router) {
					r.With(consultantOnly).Post("/accept", h.Consulting.AcceptRequest)
					r.With(consultantOnly).Post("/reject", h.Consulting.RejectRequest)
					r.With(consultantOnly).Post("/complete", h.Consulting.CompleteRequest)
				})
			})
		})
	})

	return r
}
