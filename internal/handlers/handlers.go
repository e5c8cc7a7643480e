package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/tuananh6614/epueducation-sub000/docs"
	authhandlers "github.com/tuananh6614/epueducation-sub000/internal/handlers/auth"
	coursehandlers "github.com/tuananh6614/epueducation-sub000/internal/handlers/courses"
	likehandlers "github.com/tuananh6614/epueducation-sub000/internal/handlers/likes"
	notificationhandlers "github.com/tuananh6614/epueducation-sub000/internal/handlers/notifications"
	posthandlers "github.com/tuananh6614/epueducation-sub000/internal/handlers/posts"
	resourcehandlers "github.com/tuananh6614/epueducation-sub000/internal/handlers/resources"
	"github.com/tuananh6614/epueducation-sub000/internal/service"
	"github.com/tuananh6614/epueducation-sub000/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type ResourceHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	VerifyDeposit(w http.ResponseWriter, r *http.Request)
	Transactions(w http.ResponseWriter, r *http.Request)
}

type LikeHandler interface {
	React(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
}

type PostHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	CreateComment(w http.ResponseWriter, r *http.Request)
	ListComments(w http.ResponseWriter, r *http.Request)
}

type CourseHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	ResourceHandler     ResourceHandler
	LikeHandler         LikeHandler
	NotificationHandler NotificationHandler
	PostHandler         PostHandler
	CourseHandler       CourseHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		ResourceHandler:     resourcehandlers.New(s.ResourceService, s.LedgerService),
		LikeHandler:         likehandlers.New(s.ReactionService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		PostHandler:         posthandlers.New(s.BlogService),
		CourseHandler:       coursehandlers.New(s.CatalogService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Get("/resources", h.ResourceHandler.List)
		r.Get("/resources/{id}", h.ResourceHandler.Get)
		r.Get("/posts", h.PostHandler.List)
		r.Get("/posts/{id}", h.PostHandler.Get)
		r.Get("/posts/{id}/comments", h.PostHandler.ListComments)
		r.Get("/courses", h.CourseHandler.List)
		r.Get("/courses/{id}", h.CourseHandler.Get)
		r.Get("/likes/summary", h.LikeHandler.Summary)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/users/me", h.AuthHandler.Me)

			r.Route("/resources", func(r chi.Router) {
				r.Post("/", h.ResourceHandler.Upload)
				r.Post("/deposit", h.ResourceHandler.Deposit)
				r.Get("/transactions", h.ResourceHandler.Transactions)
				r.Get("/{id}/download", h.ResourceHandler.Download)
				r.Post("/{id}/purchase", h.ResourceHandler.Purchase)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Post("/verify-deposit", h.ResourceHandler.VerifyDeposit)
				})
			})

			r.Route("/likes", func(r chi.Router) {
				r.Post("/", h.LikeHandler.React)
				r.Get("/check", h.LikeHandler.Check)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.List)
				r.Put("/read", h.NotificationHandler.MarkRead)
				r.Put("/read-all", h.NotificationHandler.MarkAllRead)
				r.Get("/unread-count", h.NotificationHandler.UnreadCount)
			})

			r.Post("/posts", h.PostHandler.Create)
			r.Post("/posts/{id}/comments", h.PostHandler.CreateComment)
		})
	})

	return r
}
