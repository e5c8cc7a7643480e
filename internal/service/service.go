package service

import (
	"github.com/tuananh6614/epueducation-sub000/internal/config"
	authhandlers "github.com/tuananh6614/epueducation-sub000/internal/handlers/auth"
	coursehandlers "github.com/tuananh6614/epueducation-sub000/internal/handlers/courses"
	likehandlers "github.com/tuananh6614/epueducation-sub000/internal/handlers/likes"
	notificationhandlers "github.com/tuananh6614/epueducation-sub000/internal/handlers/notifications"
	posthandlers "github.com/tuananh6614/epueducation-sub000/internal/handlers/posts"
	resourcehandlers "github.com/tuananh6614/epueducation-sub000/internal/handlers/resources"
	"github.com/tuananh6614/epueducation-sub000/internal/pg"
	"github.com/tuananh6614/epueducation-sub000/internal/repo"
	"github.com/tuananh6614/epueducation-sub000/internal/service/authservice"
	"github.com/tuananh6614/epueducation-sub000/internal/service/blogservice"
	"github.com/tuananh6614/epueducation-sub000/internal/service/catalogservice"
	"github.com/tuananh6614/epueducation-sub000/internal/service/ledgerservice"
	"github.com/tuananh6614/epueducation-sub000/internal/service/notificationservice"
	"github.com/tuananh6614/epueducation-sub000/internal/service/reactionservice"
	"github.com/tuananh6614/epueducation-sub000/internal/service/resourceservice"
	pkgauth "github.com/tuananh6614/epueducation-sub000/pkg/auth"
)

type Services struct {
	AuthService         authhandlers.Service
	LedgerService       *ledgerservice.Service
	ReactionService     likehandlers.Service
	NotificationService notificationhandlers.Service
	ResourceService     resourcehandlers.ResourceService
	BlogService         posthandlers.Service
	CatalogService      coursehandlers.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	return &Services{
		AuthService: authservice.New(repo.Users, &pkgauth.HashService{}, &pkgauth.JWTService{}),
		LedgerService: ledgerservice.New(
			repo.Users, repo.Resources, repo.Purchases, repo.Transactions, repo.Notifications, txManager,
		),
		ReactionService: reactionservice.New(
			repo.Likes, repo.Posts, repo.Users, repo.Notifications, txManager,
		),
		NotificationService: notificationservice.New(repo.Notifications),
		ResourceService:     resourceservice.New(repo.Resources, repo.Purchases, cfg.UploadDir),
		BlogService:         blogservice.New(repo.Posts, repo.Users, repo.Notifications, txManager),
		CatalogService:      catalogservice.New(repo.Courses),
	}
}
