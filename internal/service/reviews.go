package service

import (
	"context"
	"strings"

	"github.com/opportunest/opportunest-server/internal/domain"
	"github.com/opportunest/opportunest-server/internal/security"
)

type ReviewService struct {
	repo    ReviewRepo
	catalog CatalogRepo
	clock   Clock
}

func NewReviewService(repo ReviewRepo, catalog CatalogRepo, clock Clock) *ReviewService {
	return &ReviewService{repo: repo, catalog: catalog, clock: clock}
}

type ReviewCmd struct {
	ScholarshipID string
	RatingPoint   int
	Comments      string
}

func validRating(r int) error {
	if r < 1 || r > 5 {
		return domain.ErrValidationMeta("invalid rating", map[string]string{
			"ratingPoint": "must be an integer between 1 and 5",
		})
	}
	return nil
}

// Add creates a review. Reviewer identity and timestamp come from the
// verified token, never from the request body.
func (s *ReviewService) Add(ctx context.Context, cmd ReviewCmd, reviewer security.Identity) (*domain.Review, error) {
	sid, err := parseID(cmd.ScholarshipID)
	if err != nil {
		return nil, domain.ErrValidationMeta("invalid scholarship reference", map[string]string{
			"scholarship_id": "must be a valid object id",
		})
	}
	if err := validRating(cmd.RatingPoint); err != nil {
		return nil, err
	}
	if _, err := s.catalog.Get(ctx, sid); err != nil {
		return nil, err
	}

	rev := &domain.Review{
		ScholarshipID:    sid,
		ReviewerEmail:    strings.ToLower(reviewer.Email),
		ReviewerName:     reviewer.Name,
		ReviewerImage:    reviewer.Picture,
		RatingPoint:      cmd.RatingPoint,
		ReviewerComments: cmd.Comments,
		ReviewDate:       s.clock.Now().UTC(),
	}
	id, err := s.repo.Create(ctx, rev)
	if err != nil {
		return nil, err
	}
	rev.ID = id
	return rev, nil
}

func (s *ReviewService) ByScholarship(ctx context.Context, scholarshipID string) ([]domain.Review, error) {
	sid, err := parseID(scholarshipID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByScholarship(ctx, sid)
}

func (s *ReviewService) Mine(ctx context.Context, reviewerEmail string) ([]domain.Review, error) {
	return s.repo.ListByReviewer(ctx, strings.ToLower(reviewerEmail))
}

// UpdateMine edits via the id+reviewerEmail compound filter: another
// reviewer's document matches nothing and the call reports not found.
func (s *ReviewService) UpdateMine(ctx context.Context, id string, reviewerEmail string, rating int, comments string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := validRating(rating); err != nil {
		return err
	}
	ok, err := s.repo.UpdateOwned(ctx, oid, strings.ToLower(reviewerEmail), rating, comments, s.clock.Now().UTC())
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound("review not found")
	}
	return nil
}

func (s *ReviewService) DeleteMine(ctx context.Context, id string, reviewerEmail string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	ok, err := s.repo.DeleteOwned(ctx, oid, strings.ToLower(reviewerEmail))
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound("review not found")
	}
	return nil
}

func (s *ReviewService) AdminList(ctx context.Context) ([]domain.AdminReviewRow, error) {
	return s.repo.AdminList(ctx)
}

// AdminDelete removes any review by id, regardless of owner.
func (s *ReviewService) AdminDelete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	ok, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound("review not found")
	}
	return nil
}
