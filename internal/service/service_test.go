package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opportunest/opportunest-server/internal/domain"
)

// --- shared fakes ---

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

type memUserRepo struct {
	byID map[primitive.ObjectID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[primitive.ObjectID]*domain.User{}}
}

func (m *memUserRepo) Sync(ctx context.Context, id SyncIdentity, role domain.Role, now time.Time) (*domain.User, error) {
	for _, u := range m.byID {
		if u.Email == id.Email {
			u.Name = id.Name
			u.PhotoURL = id.Picture
			u.LastLogin = now
			return u, nil
		}
	}
	u := &domain.User{
		ID:        primitive.NewObjectID(),
		Email:     id.Email,
		Name:      id.Name,
		PhotoURL:  id.Picture,
		Role:      role,
		CreatedAt: now,
		LastLogin: now,
	}
	m.byID[u.ID] = u
	return u, nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound("user not found")
}

func (m *memUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("user not found")
	}
	return u, nil
}

func (m *memUserRepo) List(ctx context.Context, role domain.Role) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range m.byID {
		if role == "" || u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *memUserRepo) UpdateRole(ctx context.Context, id primitive.ObjectID, role domain.Role) (bool, error) {
	u, ok := m.byID[id]
	if !ok {
		return false, nil
	}
	u.Role = role
	return true, nil
}

func (m *memUserRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := m.byID[id]; !ok {
		return false, nil
	}
	delete(m.byID, id)
	return true, nil
}

type memCatalogRepo struct {
	byID map[primitive.ObjectID]*domain.Scholarship
}

func newMemCatalogRepo() *memCatalogRepo {
	return &memCatalogRepo{byID: map[primitive.ObjectID]*domain.Scholarship{}}
}

func (m *memCatalogRepo) Create(ctx context.Context, s *domain.Scholarship) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	cp := *s
	cp.ID = id
	m.byID[id] = &cp
	return id, nil
}

func (m *memCatalogRepo) Get(ctx context.Context, id primitive.ObjectID) (*domain.Scholarship, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("scholarship not found")
	}
	return s, nil
}

func (m *memCatalogRepo) ListAll(ctx context.Context) ([]domain.Scholarship, error) {
	out := []domain.Scholarship{}
	for _, s := range m.byID {
		out = append(out, *s)
	}
	return out, nil
}

func (m *memCatalogRepo) Search(ctx context.Context, query string, page, limit int) ([]domain.Scholarship, int64, error) {
	matched := []domain.Scholarship{}
	for _, s := range m.byID {
		hay := strings.ToLower(s.ScholarshipName + " " + s.UniversityName + " " + s.Degree)
		if query == "" || strings.Contains(hay, strings.ToLower(query)) {
			matched = append(matched, *s)
		}
	}
	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return []domain.Scholarship{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *memCatalogRepo) Top(ctx context.Context, limit int) ([]domain.Scholarship, error) {
	all, _ := m.ListAll(ctx)
	// fee asc, postDate desc
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			a, b := all[i], all[j]
			if b.ApplicationFees < a.ApplicationFees ||
				(b.ApplicationFees == a.ApplicationFees && b.PostDate.After(a.PostDate)) {
				all[i], all[j] = b, a
			}
		}
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *memCatalogRepo) Replace(ctx context.Context, id primitive.ObjectID, s *domain.Scholarship) (bool, error) {
	existing, ok := m.byID[id]
	if !ok {
		return false, nil
	}
	cp := *s
	cp.ID = id
	cp.PostDate = existing.PostDate
	cp.PostedUserEmail = existing.PostedUserEmail
	m.byID[id] = &cp
	return true, nil
}

func (m *memCatalogRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := m.byID[id]; !ok {
		return false, nil
	}
	delete(m.byID, id)
	return true, nil
}

type memApplicationRepo struct {
	byID    map[primitive.ObjectID]*domain.Application
	catalog *memCatalogRepo
}

func newMemApplicationRepo(catalog *memCatalogRepo) *memApplicationRepo {
	return &memApplicationRepo{byID: map[primitive.ObjectID]*domain.Application{}, catalog: catalog}
}

func (m *memApplicationRepo) Create(ctx context.Context, a *domain.Application) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	cp := *a
	cp.ID = id
	m.byID[id] = &cp
	return id, nil
}

func (m *memApplicationRepo) GetOwned(ctx context.Context, id primitive.ObjectID, email string) (*domain.Application, error) {
	a, ok := m.byID[id]
	if !ok || a.ApplicantEmail != email {
		return nil, domain.ErrNotFound("application not found")
	}
	return a, nil
}

func (m *memApplicationRepo) ListByApplicant(ctx context.Context, email string) ([]domain.AppliedScholarship, error) {
	out := []domain.AppliedScholarship{}
	for _, a := range m.byID {
		if a.ApplicantEmail != email {
			continue
		}
		sch, ok := m.catalog.byID[a.ScholarshipID]
		if !ok {
			continue
		}
		out = append(out, domain.AppliedScholarship{
			ID:                a.ID,
			ScholarshipID:     sch.ID,
			ApplicationStatus: a.Status,
			Feedback:          a.Feedback,
			AppliedDegree:     a.ApplyingDegree,
			UniversityName:    sch.UniversityName,
			ScholarshipName:   sch.ScholarshipName,
			UniversityAddress: sch.UniversityCity + ", " + sch.UniversityCountry,
			SubjectCategory:   sch.SubjectCategory,
			ApplicationFees:   sch.ApplicationFees,
			ServiceCharge:     sch.ServiceCharge,
		})
	}
	return out, nil
}

func (m *memApplicationRepo) UpdateOwnedPending(ctx context.Context, id primitive.ObjectID, email string, upd ApplicationUpdate) (bool, error) {
	a, ok := m.byID[id]
	if !ok || a.ApplicantEmail != email || a.Status != domain.StatusPending {
		return false, nil
	}
	if upd.Phone != nil {
		a.Phone = *upd.Phone
	}
	if upd.Address != nil {
		a.Address = *upd.Address
	}
	if upd.ApplyingDegree != nil {
		a.ApplyingDegree = *upd.ApplyingDegree
	}
	return true, nil
}

func (m *memApplicationRepo) DeleteOwned(ctx context.Context, id primitive.ObjectID, email string) (bool, error) {
	a, ok := m.byID[id]
	if !ok || a.ApplicantEmail != email {
		return false, nil
	}
	delete(m.byID, id)
	return true, nil
}

func (m *memApplicationRepo) AdminList(ctx context.Context, sort AdminApplicationSort) ([]domain.AdminApplicationRow, error) {
	out := []domain.AdminApplicationRow{}
	for _, a := range m.byID {
		sch, ok := m.catalog.byID[a.ScholarshipID]
		if !ok {
			continue
		}
		out = append(out, domain.AdminApplicationRow{
			ID:              a.ID,
			ApplicantName:   a.ApplicantName,
			ApplicantEmail:  a.ApplicantEmail,
			ApplyingDegree:  a.ApplyingDegree,
			UniversityName:  sch.UniversityName,
			ScholarshipName: sch.ScholarshipName,
			Status:          a.Status,
			Feedback:        a.Feedback,
		})
	}
	return out, nil
}

func (m *memApplicationRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status domain.ApplicationStatus) (bool, error) {
	a, ok := m.byID[id]
	if !ok {
		return false, nil
	}
	a.Status = status
	return true, nil
}

func (m *memApplicationRepo) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (bool, error) {
	a, ok := m.byID[id]
	if !ok {
		return false, nil
	}
	a.Feedback = feedback
	return true, nil
}

type memReviewRepo struct {
	byID map[primitive.ObjectID]*domain.Review
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{byID: map[primitive.ObjectID]*domain.Review{}}
}

func (m *memReviewRepo) Create(ctx context.Context, r *domain.Review) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	cp := *r
	cp.ID = id
	m.byID[id] = &cp
	return id, nil
}

func (m *memReviewRepo) ListByScholarship(ctx context.Context, sid primitive.ObjectID) ([]domain.Review, error) {
	out := []domain.Review{}
	for _, r := range m.byID {
		if r.ScholarshipID == sid {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memReviewRepo) ListByReviewer(ctx context.Context, email string) ([]domain.Review, error) {
	out := []domain.Review{}
	for _, r := range m.byID {
		if r.ReviewerEmail == email {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memReviewRepo) UpdateOwned(ctx context.Context, id primitive.ObjectID, email string, rating int, comments string, at time.Time) (bool, error) {
	r, ok := m.byID[id]
	if !ok || r.ReviewerEmail != email {
		return false, nil
	}
	r.RatingPoint = rating
	r.ReviewerComments = comments
	r.ReviewDate = at
	return true, nil
}

func (m *memReviewRepo) DeleteOwned(ctx context.Context, id primitive.ObjectID, email string) (bool, error) {
	r, ok := m.byID[id]
	if !ok || r.ReviewerEmail != email {
		return false, nil
	}
	delete(m.byID, id)
	return true, nil
}

func (m *memReviewRepo) AdminList(ctx context.Context) ([]domain.AdminReviewRow, error) {
	out := []domain.AdminReviewRow{}
	for _, r := range m.byID {
		out = append(out, domain.AdminReviewRow{
			ID:            r.ID,
			ReviewerName:  r.ReviewerName,
			ReviewerEmail: r.ReviewerEmail,
			RatingPoint:   r.RatingPoint,
		})
	}
	return out, nil
}

func (m *memReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := m.byID[id]; !ok {
		return false, nil
	}
	delete(m.byID, id)
	return true, nil
}
