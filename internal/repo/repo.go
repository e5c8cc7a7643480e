package repo

import (
	"github.com/tuananh6614/epueducation-sub000/internal/pg"
	courserepo "github.com/tuananh6614/epueducation-sub000/internal/repo/course-repo"
	likerepo "github.com/tuananh6614/epueducation-sub000/internal/repo/like-repo"
	notificationrepo "github.com/tuananh6614/epueducation-sub000/internal/repo/notification-repo"
	postrepo "github.com/tuananh6614/epueducation-sub000/internal/repo/post-repo"
	purchaserepo "github.com/tuananh6614/epueducation-sub000/internal/repo/purchase-repo"
	resourcerepo "github.com/tuananh6614/epueducation-sub000/internal/repo/resource-repo"
	transactionrepo "github.com/tuananh6614/epueducation-sub000/internal/repo/transaction-repo"
	userrepo "github.com/tuananh6614/epueducation-sub000/internal/repo/user-repo"
)

type Repositories struct {
	Users         *userrepo.Repository
	Resources     *resourcerepo.Repository
	Purchases     *purchaserepo.Repository
	Transactions  *transactionrepo.Repository
	Likes         *likerepo.Repository
	Notifications *notificationrepo.Repository
	Posts         *postrepo.Repository
	Courses       *courserepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Users:         userrepo.New(conn),
		Resources:     resourcerepo.New(conn),
		Purchases:     purchaserepo.New(conn),
		Transactions:  transactionrepo.New(conn),
		Likes:         likerepo.New(conn),
		Notifications: notificationrepo.New(conn),
		Posts:         postrepo.New(conn),
		Courses:       courserepo.New(conn),
	}
}
