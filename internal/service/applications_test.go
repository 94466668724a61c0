package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opportunest/opportunest-server/internal/domain"
)

func seedScholarship(t *testing.T, catalog *memCatalogRepo) *domain.Scholarship {
	t.Helper()
	sch := &domain.Scholarship{
		ScholarshipName:   "Merit Award",
		UniversityName:    "Uni of Testing",
		UniversityCity:    "Dhaka",
		UniversityCountry: "Bangladesh",
		SubjectCategory:   "Engineering",
		ApplicationFees:   40,
		ServiceCharge:     10,
	}
	id, err := catalog.Create(context.Background(), sch)
	require.NoError(t, err)
	sch.ID = id
	return sch
}

func TestApplicationService_Apply(t *testing.T) {
	now := mustTime(t, "2026-08-30T10:00:00Z")
	catalog := newMemCatalogRepo()
	repo := newMemApplicationRepo(catalog)
	svc := NewApplicationService(repo, catalog, fakeClock{t: now})
	sch := seedScholarship(t, catalog)

	t.Run("starts_pending_with_stamped_metadata", func(t *testing.T) {
		app, err := svc.Apply(context.Background(), ApplyCmd{
			ScholarshipID: sch.ID.Hex(), ApplicantName: "A Student",
		}, "Student@X.com")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, app.Status)
		assert.Equal(t, "student@x.com", app.ApplicantEmail)
		assert.Equal(t, now, app.ApplicationDate)
	})

	t.Run("unknown_scholarship_rejected", func(t *testing.T) {
		_, err := svc.Apply(context.Background(), ApplyCmd{
			ScholarshipID: "bbbbbbbbbbbbbbbbbbbbbbbb",
		}, "student@x.com")
		assertCode(t, err, domain.CodeNotFound)
	})

	t.Run("malformed_scholarship_id", func(t *testing.T) {
		_, err := svc.Apply(context.Background(), ApplyCmd{ScholarshipID: "nope"}, "student@x.com")
		assertCode(t, err, domain.CodeValidation)
	})
}

func TestApplicationService_PendingGate(t *testing.T) {
	now := mustTime(t, "2026-08-30T10:00:00Z")
	catalog := newMemCatalogRepo()
	repo := newMemApplicationRepo(catalog)
	svc := NewApplicationService(repo, catalog, fakeClock{t: now})
	sch := seedScholarship(t, catalog)

	app, err := svc.Apply(context.Background(), ApplyCmd{
		ScholarshipID: sch.ID.Hex(), ApplicantName: "A", Phone: "111",
	}, "a@x.com")
	require.NoError(t, err)

	phone := "222"

	t.Run("owner_edits_while_pending", func(t *testing.T) {
		err := svc.UpdateMine(context.Background(), app.ID.Hex(), "a@x.com", ApplicationUpdate{Phone: &phone})
		assert.NoError(t, err)
	})

	t.Run("empty_edit_allowed_while_pending", func(t *testing.T) {
		err := svc.UpdateMine(context.Background(), app.ID.Hex(), "a@x.com", ApplicationUpdate{})
		assert.NoError(t, err)
	})

	t.Run("stranger_sees_not_found", func(t *testing.T) {
		err := svc.UpdateMine(context.Background(), app.ID.Hex(), "b@x.com", ApplicationUpdate{Phone: &phone})
		assertCode(t, err, domain.CodeNotFound)
	})

	t.Run("edit_rejected_once_processing", func(t *testing.T) {
		require.NoError(t, svc.SetStatus(context.Background(), app.ID.Hex(), "processing"))

		err := svc.UpdateMine(context.Background(), app.ID.Hex(), "a@x.com", ApplicationUpdate{Phone: &phone})
		assertCode(t, err, domain.CodeInvalidState)
	})

	t.Run("empty_edit_follows_the_same_gate", func(t *testing.T) {
		err := svc.UpdateMine(context.Background(), app.ID.Hex(), "a@x.com", ApplicationUpdate{})
		assertCode(t, err, domain.CodeInvalidState)
	})

	t.Run("moderator_status_change_ignores_current_status", func(t *testing.T) {
		assert.NoError(t, svc.SetStatus(context.Background(), app.ID.Hex(), "completed"))
		assert.NoError(t, svc.SetFeedback(context.Background(), app.ID.Hex(), "good luck"))
	})

	t.Run("status_outside_enum_rejected", func(t *testing.T) {
		err := svc.SetStatus(context.Background(), app.ID.Hex(), "rejected")
		assertCode(t, err, domain.CodeValidation)

		err = svc.SetStatus(context.Background(), app.ID.Hex(), "cancelled")
		assertCode(t, err, domain.CodeValidation)
	})

	t.Run("capital_r_rejected_accepted", func(t *testing.T) {
		assert.NoError(t, svc.SetStatus(context.Background(), app.ID.Hex(), "Rejected"))
	})
}

func TestApplicationService_CancelAndList(t *testing.T) {
	now := mustTime(t, "2026-08-30T10:00:00Z")
	catalog := newMemCatalogRepo()
	repo := newMemApplicationRepo(catalog)
	svc := NewApplicationService(repo, catalog, fakeClock{t: now})
	sch := seedScholarship(t, catalog)

	app, err := svc.Apply(context.Background(), ApplyCmd{
		ScholarshipID: sch.ID.Hex(), ApplyingDegree: "Masters",
	}, "a@x.com")
	require.NoError(t, err)

	t.Run("joined_view_projects_scholarship_fields", func(t *testing.T) {
		rows, err := svc.ListMine(context.Background(), "a@x.com")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Uni of Testing", rows[0].UniversityName)
		assert.Equal(t, "Dhaka, Bangladesh", rows[0].UniversityAddress)
		assert.Equal(t, float64(40), rows[0].ApplicationFees)
	})

	t.Run("cancel_is_a_hard_delete", func(t *testing.T) {
		require.NoError(t, svc.Cancel(context.Background(), app.ID.Hex(), "a@x.com"))

		rows, err := svc.ListMine(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("cancel_missing_id_not_found_without_error", func(t *testing.T) {
		err := svc.Cancel(context.Background(), app.ID.Hex(), "a@x.com")
		assertCode(t, err, domain.CodeNotFound)
	})

	t.Run("cancel_someone_elses_not_found", func(t *testing.T) {
		other, err := svc.Apply(context.Background(), ApplyCmd{ScholarshipID: sch.ID.Hex()}, "b@x.com")
		require.NoError(t, err)

		err = svc.Cancel(context.Background(), other.ID.Hex(), "a@x.com")
		assertCode(t, err, domain.CodeNotFound)
	})
}

func TestApplicationService_AdminListSorts(t *testing.T) {
	now := mustTime(t, "2026-08-30T10:00:00Z")
	catalog := newMemCatalogRepo()
	repo := newMemApplicationRepo(catalog)
	svc := NewApplicationService(repo, catalog, fakeClock{t: now})
	sch := seedScholarship(t, catalog)

	_, err := svc.Apply(context.Background(), ApplyCmd{ScholarshipID: sch.ID.Hex()}, "a@x.com")
	require.NoError(t, err)

	t.Run("default_sort_is_newest", func(t *testing.T) {
		rows, err := svc.AdminList(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("unknown_sort_rejected", func(t *testing.T) {
		_, err := svc.AdminList(context.Background(), "alphabetical")
		assertCode(t, err, domain.CodeValidation)
	})
}
