package service

import (
	"context"
	"strings"

	"github.com/opportunest/opportunest-server/internal/domain"
)

type ApplicationService struct {
	repo    ApplicationRepo
	catalog CatalogRepo
	clock   Clock
}

func NewApplicationService(repo ApplicationRepo, catalog CatalogRepo, clock Clock) *ApplicationService {
	return &ApplicationService{repo: repo, catalog: catalog, clock: clock}
}

type ApplyCmd struct {
	ScholarshipID  string
	ApplicantName  string
	Phone          string
	Address        string
	Gender         string
	ApplyingDegree string
	SSCResult      string
	HSCResult      string
	StudyGap       string
	PhotoURL       string
}

// Apply submits an application. The scholarship reference is checked here;
// there is no database-level constraint behind it.
func (s *ApplicationService) Apply(ctx context.Context, cmd ApplyCmd, applicantEmail string) (*domain.Application, error) {
	sid, err := parseID(cmd.ScholarshipID)
	if err != nil {
		return nil, domain.ErrValidationMeta("invalid scholarship reference", map[string]string{
			"scholarshipId": "must be a valid object id",
		})
	}
	if _, err := s.catalog.Get(ctx, sid); err != nil {
		return nil, err
	}

	app := &domain.Application{
		ScholarshipID:   sid,
		ApplicantEmail:  strings.ToLower(applicantEmail),
		ApplicantName:   strings.TrimSpace(cmd.ApplicantName),
		Phone:           cmd.Phone,
		Address:         cmd.Address,
		Gender:          cmd.Gender,
		ApplyingDegree:  cmd.ApplyingDegree,
		SSCResult:       cmd.SSCResult,
		HSCResult:       cmd.HSCResult,
		StudyGap:        cmd.StudyGap,
		PhotoURL:        cmd.PhotoURL,
		Status:          domain.StatusPending,
		ApplicationDate: s.clock.Now().UTC(),
	}
	id, err := s.repo.Create(ctx, app)
	if err != nil {
		return nil, err
	}
	app.ID = id
	return app, nil
}

func (s *ApplicationService) ListMine(ctx context.Context, applicantEmail string) ([]domain.AppliedScholarship, error) {
	return s.repo.ListByApplicant(ctx, strings.ToLower(applicantEmail))
}

// UpdateMine edits the applicant-owned submission fields. The write matches on
// id+owner+pending; when it misses we re-read to tell "not yours / gone" apart
// from "no longer pending".
func (s *ApplicationService) UpdateMine(ctx context.Context, id string, applicantEmail string, upd ApplicationUpdate) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	email := strings.ToLower(applicantEmail)

	ok, err := s.repo.UpdateOwnedPending(ctx, oid, email, upd)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	app, err := s.repo.GetOwned(ctx, oid, email)
	if err != nil {
		return err
	}
	return domain.CanApplicantEdit(app, email)
}

// Cancel hard-deletes the applicant's own application. The moderator-facing
// rejection is a status transition instead; the two transitions are kept
// distinct on purpose.
func (s *ApplicationService) Cancel(ctx context.Context, id string, applicantEmail string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	ok, err := s.repo.DeleteOwned(ctx, oid, strings.ToLower(applicantEmail))
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound("application not found")
	}
	return nil
}

func (s *ApplicationService) AdminList(ctx context.Context, sort string) ([]domain.AdminApplicationRow, error) {
	mode := AdminApplicationSort(sort)
	if sort == "" {
		mode = SortNewestApplied
	}
	if !mode.Valid() {
		return nil, domain.ErrValidationMeta("invalid query param", map[string]string{
			"sort": "must be one of: newest-applied, oldest-applied, deadline-asc, deadline-desc",
		})
	}
	return s.repo.AdminList(ctx, mode)
}

// SetStatus changes the status regardless of the current one; the value must
// belong to the closed enum.
func (s *ApplicationService) SetStatus(ctx context.Context, id string, status string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	st := domain.ApplicationStatus(status)
	if !st.Valid() {
		return domain.ErrValidationMeta("invalid status", map[string]string{
			"status": "must be one of: pending, processing, completed, Rejected",
		})
	}
	ok, err := s.repo.SetStatus(ctx, oid, st)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound("application not found")
	}
	return nil
}

func (s *ApplicationService) SetFeedback(ctx context.Context, id string, feedback string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	ok, err := s.repo.SetFeedback(ctx, oid, feedback)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound("application not found")
	}
	return nil
}
