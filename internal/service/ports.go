package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opportunest/opportunest-server/internal/domain"
)

type Clock interface{ Now() time.Time }

// SyncIdentity is the token-derived identity used to upsert a user record.
type SyncIdentity struct {
	Email   string
	Name    string
	Picture string
}

type UserRepo interface {
	// Sync upserts by email: on insert it sets role and createdAt; on every
	// call it refreshes name/photo and bumps lastLogin, leaving role alone.
	Sync(ctx context.Context, id SyncIdentity, roleAtCreation domain.Role, now time.Time) (*domain.User, error)

	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	List(ctx context.Context, role domain.Role) ([]domain.User, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role domain.Role) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type CatalogRepo interface {
	Create(ctx context.Context, s *domain.Scholarship) (primitive.ObjectID, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Scholarship, error)
	ListAll(ctx context.Context) ([]domain.Scholarship, error)
	// Search returns one page plus the total count under the same filter.
	Search(ctx context.Context, query string, page, limit int) ([]domain.Scholarship, int64, error)
	Top(ctx context.Context, limit int) ([]domain.Scholarship, error)
	Replace(ctx context.Context, id primitive.ObjectID, s *domain.Scholarship) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// ApplicationUpdate carries the applicant-editable profile fields.
type ApplicationUpdate struct {
	Phone          *string
	Address        *string
	Gender         *string
	ApplyingDegree *string
	SSCResult      *string
	HSCResult      *string
	StudyGap       *string
	PhotoURL       *string
}

type AdminApplicationSort string

const (
	SortNewestApplied AdminApplicationSort = "newest-applied"
	SortOldestApplied AdminApplicationSort = "oldest-applied"
	SortDeadlineAsc   AdminApplicationSort = "deadline-asc"
	SortDeadlineDesc  AdminApplicationSort = "deadline-desc"
)

func (s AdminApplicationSort) Valid() bool {
	switch s {
	case SortNewestApplied, SortOldestApplied, SortDeadlineAsc, SortDeadlineDesc:
		return true
	}
	return false
}

type ApplicationRepo interface {
	Create(ctx context.Context, a *domain.Application) (primitive.ObjectID, error)
	GetOwned(ctx context.Context, id primitive.ObjectID, applicantEmail string) (*domain.Application, error)
	ListByApplicant(ctx context.Context, applicantEmail string) ([]domain.AppliedScholarship, error)
	// UpdateOwnedPending matches on id+applicantEmail+status=pending; a miss
	// returns false with no side effect.
	UpdateOwnedPending(ctx context.Context, id primitive.ObjectID, applicantEmail string, upd ApplicationUpdate) (bool, error)
	DeleteOwned(ctx context.Context, id primitive.ObjectID, applicantEmail string) (bool, error)
	AdminList(ctx context.Context, sort AdminApplicationSort) ([]domain.AdminApplicationRow, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status domain.ApplicationStatus) (bool, error)
	SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (bool, error)
}

type ReviewRepo interface {
	Create(ctx context.Context, r *domain.Review) (primitive.ObjectID, error)
	ListByScholarship(ctx context.Context, scholarshipID primitive.ObjectID) ([]domain.Review, error)
	ListByReviewer(ctx context.Context, reviewerEmail string) ([]domain.Review, error)
	// UpdateOwned and DeleteOwned match on id+reviewerEmail; editing another
	// reviewer's document matches zero rows and returns false.
	UpdateOwned(ctx context.Context, id primitive.ObjectID, reviewerEmail string, rating int, comments string, at time.Time) (bool, error)
	DeleteOwned(ctx context.Context, id primitive.ObjectID, reviewerEmail string) (bool, error)
	AdminList(ctx context.Context) ([]domain.AdminReviewRow, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type StatsRepo interface {
	CountUsers(ctx context.Context) (int64, error)
	CountScholarships(ctx context.Context) (int64, error)
	CountApplications(ctx context.Context) (int64, error)
	CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error)
	DailyApplications(ctx context.Context, since time.Time) ([]domain.DailyApplicationStat, error)
}
