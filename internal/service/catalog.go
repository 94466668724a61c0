package service

import (
	"context"
	"strings"
	"time"

	"github.com/opportunest/opportunest-server/internal/domain"
)

const (
	defaultPageSize = 6
	topLimit        = 6
	maxPageSize     = 50
)

type CatalogService struct {
	repo  CatalogRepo
	clock Clock
}

func NewCatalogService(repo CatalogRepo, clock Clock) *CatalogService {
	return &CatalogService{repo: repo, clock: clock}
}

type ScholarshipCmd struct {
	ScholarshipName     string
	UniversityName      string
	UniversityImage     string
	UniversityCity      string
	UniversityCountry   string
	UniversityWorldRank int
	SubjectCategory     string
	ScholarshipCategory string
	Degree              string
	TuitionFees         float64
	ApplicationFees     float64
	ServiceCharge       float64
	ApplicationDeadline time.Time
	Description         string
}

func (c *ScholarshipCmd) validate() error {
	meta := map[string]string{}
	if strings.TrimSpace(c.ScholarshipName) == "" {
		meta["scholarshipName"] = "required"
	}
	if strings.TrimSpace(c.UniversityName) == "" {
		meta["universityName"] = "required"
	}
	if c.ApplicationFees < 0 {
		meta["applicationFees"] = "must be >= 0"
	}
	if c.ServiceCharge < 0 {
		meta["serviceCharge"] = "must be >= 0"
	}
	if len(meta) > 0 {
		return domain.ErrValidationMeta("invalid scholarship", meta)
	}
	return nil
}

func (c *ScholarshipCmd) toScholarship() *domain.Scholarship {
	return &domain.Scholarship{
		ScholarshipName:     strings.TrimSpace(c.ScholarshipName),
		UniversityName:      strings.TrimSpace(c.UniversityName),
		UniversityImage:     c.UniversityImage,
		UniversityCity:      strings.TrimSpace(c.UniversityCity),
		UniversityCountry:   strings.TrimSpace(c.UniversityCountry),
		UniversityWorldRank: c.UniversityWorldRank,
		SubjectCategory:     c.SubjectCategory,
		ScholarshipCategory: c.ScholarshipCategory,
		Degree:              c.Degree,
		TuitionFees:         c.TuitionFees,
		ApplicationFees:     c.ApplicationFees,
		ServiceCharge:       c.ServiceCharge,
		ApplicationDeadline: c.ApplicationDeadline,
		Description:         c.Description,
	}
}

// Create stamps the posting date and poster identity server-side.
func (s *CatalogService) Create(ctx context.Context, cmd ScholarshipCmd, posterEmail string) (*domain.Scholarship, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}
	sch := cmd.toScholarship()
	sch.PostDate = s.clock.Now().UTC()
	sch.PostedUserEmail = posterEmail

	id, err := s.repo.Create(ctx, sch)
	if err != nil {
		return nil, err
	}
	sch.ID = id
	return sch, nil
}

func (s *CatalogService) ListAll(ctx context.Context) ([]domain.Scholarship, error) {
	return s.repo.ListAll(ctx)
}

type SearchFilter struct {
	Query string
	Page  int
	Limit int
}

func (f *SearchFilter) normalize() {
	f.Query = strings.TrimSpace(f.Query)
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}
}

// Search returns one page of matches and the total count under the same
// filter, so the client can compute the page count.
func (s *CatalogService) Search(ctx context.Context, f SearchFilter) ([]domain.Scholarship, int64, error) {
	f.normalize()
	return s.repo.Search(ctx, f.Query, f.Page, f.Limit)
}

// Top is the "best value" ranking: ascending application fee, then most recent
// post date, limited to six.
func (s *CatalogService) Top(ctx context.Context) ([]domain.Scholarship, error) {
	return s.repo.Top(ctx, topLimit)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Scholarship, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, oid)
}

// Update replaces the mutable fields wholesale; the identifier and posting
// metadata cannot be changed.
func (s *CatalogService) Update(ctx context.Context, id string, cmd ScholarshipCmd) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := cmd.validate(); err != nil {
		return err
	}
	ok, err := s.repo.Replace(ctx, oid, cmd.toScholarship())
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound("scholarship not found")
	}
	return nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	ok, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound("scholarship not found")
	}
	return nil
}
