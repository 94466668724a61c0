package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opportunest/opportunest-server/internal/domain"
)

func TestCatalogService_Create(t *testing.T) {
	now := mustTime(t, "2026-08-30T10:00:00Z")
	repo := newMemCatalogRepo()
	svc := NewCatalogService(repo, fakeClock{t: now})

	t.Run("stamps_post_metadata", func(t *testing.T) {
		sch, err := svc.Create(context.Background(), ScholarshipCmd{
			ScholarshipName: "Merit Award",
			UniversityName:  "Uni of Testing",
			ApplicationFees: 50,
		}, "mod@opp.app")
		require.NoError(t, err)
		assert.Equal(t, now, sch.PostDate)
		assert.Equal(t, "mod@opp.app", sch.PostedUserEmail)
		assert.False(t, sch.ID.IsZero())
	})

	t.Run("required_fields", func(t *testing.T) {
		_, err := svc.Create(context.Background(), ScholarshipCmd{}, "mod@opp.app")
		assertCode(t, err, domain.CodeValidation)
	})

	t.Run("negative_fees", func(t *testing.T) {
		_, err := svc.Create(context.Background(), ScholarshipCmd{
			ScholarshipName: "X", UniversityName: "Y", ApplicationFees: -1,
		}, "mod@opp.app")
		assertCode(t, err, domain.CodeValidation)
	})
}

func TestCatalogService_TopRanking(t *testing.T) {
	now := mustTime(t, "2026-08-30T10:00:00Z")
	repo := newMemCatalogRepo()
	svc := NewCatalogService(repo, fakeClock{t: now})

	// spec scenario: 50-fee posted first, then 20-fee; the 20-fee one ranks first
	_, err := svc.Create(context.Background(), ScholarshipCmd{
		ScholarshipName: "Pricey", UniversityName: "U1", ApplicationFees: 50,
	}, "mod@opp.app")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), ScholarshipCmd{
		ScholarshipName: "Cheap", UniversityName: "U2", ApplicationFees: 20,
	}, "mod@opp.app")
	require.NoError(t, err)

	top, err := svc.Top(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Cheap", top[0].ScholarshipName)
	assert.Equal(t, "Pricey", top[1].ScholarshipName)
}

func TestCatalogService_Search(t *testing.T) {
	now := mustTime(t, "2026-08-30T10:00:00Z")
	repo := newMemCatalogRepo()
	svc := NewCatalogService(repo, fakeClock{t: now})

	names := []string{"Alpha Grant", "Beta Grant", "Gamma Fellowship", "Delta Grant", "Epsilon Grant", "Zeta Grant", "Eta Grant"}
	for _, n := range names {
		_, err := svc.Create(context.Background(), ScholarshipCmd{
			ScholarshipName: n, UniversityName: "Uni",
		}, "mod@opp.app")
		require.NoError(t, err)
	}

	t.Run("total_matches_filter", func(t *testing.T) {
		items, total, err := svc.Search(context.Background(), SearchFilter{Query: "grant"})
		require.NoError(t, err)
		assert.Equal(t, int64(6), total)
		assert.Len(t, items, 6, "default page size")
	})

	t.Run("pagination_defaults", func(t *testing.T) {
		items, total, err := svc.Search(context.Background(), SearchFilter{Page: 2, Limit: 6})
		require.NoError(t, err)
		assert.Equal(t, int64(7), total)
		assert.Len(t, items, 1)
	})

	t.Run("case_insensitive", func(t *testing.T) {
		_, total, err := svc.Search(context.Background(), SearchFilter{Query: "GAMMA"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}

func TestCatalogService_UpdateDelete(t *testing.T) {
	now := mustTime(t, "2026-08-30T10:00:00Z")
	repo := newMemCatalogRepo()
	svc := NewCatalogService(repo, fakeClock{t: now})

	sch, err := svc.Create(context.Background(), ScholarshipCmd{
		ScholarshipName: "Original", UniversityName: "Uni",
	}, "mod@opp.app")
	require.NoError(t, err)

	t.Run("update_preserves_identifier_and_post_metadata", func(t *testing.T) {
		err := svc.Update(context.Background(), sch.ID.Hex(), ScholarshipCmd{
			ScholarshipName: "Renamed", UniversityName: "Uni",
		})
		require.NoError(t, err)

		got, err := svc.Get(context.Background(), sch.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.ScholarshipName)
		assert.Equal(t, sch.ID, got.ID)
		assert.Equal(t, "mod@opp.app", got.PostedUserEmail)
	})

	t.Run("update_missing_id_not_found", func(t *testing.T) {
		err := svc.Update(context.Background(), "bbbbbbbbbbbbbbbbbbbbbbbb", ScholarshipCmd{
			ScholarshipName: "X", UniversityName: "Y",
		})
		assertCode(t, err, domain.CodeNotFound)
	})

	t.Run("delete_twice_second_not_found", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), sch.ID.Hex()))
		err := svc.Delete(context.Background(), sch.ID.Hex())
		assertCode(t, err, domain.CodeNotFound)
	})
}
