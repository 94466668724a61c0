package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignRoleAtCreation(t *testing.T) {
	admin := "admin@opportunest.app"
	mod := "mod@opportunest.app"

	assert.Equal(t, RoleAdmin, AssignRoleAtCreation(admin, admin, mod))
	assert.Equal(t, RoleModerator, AssignRoleAtCreation(mod, admin, mod))
	assert.Equal(t, RoleUser, AssignRoleAtCreation("someone@example.com", admin, mod))

	t.Run("empty_config_never_promotes", func(t *testing.T) {
		assert.Equal(t, RoleUser, AssignRoleAtCreation("", "", ""))
		assert.Equal(t, RoleUser, AssignRoleAtCreation("a@b.c", "", ""))
	})
}

func TestRole_AtLeastModerator(t *testing.T) {
	assert.False(t, RoleUser.AtLeastModerator())
	assert.True(t, RoleModerator.AtLeastModerator())
	assert.True(t, RoleAdmin.AtLeastModerator())
}

func TestApplicationStatus_Valid(t *testing.T) {
	for _, s := range []ApplicationStatus{StatusPending, StatusProcessing, StatusCompleted, StatusRejected} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, ApplicationStatus("rejected").Valid(), "status match is case sensitive")
	assert.False(t, ApplicationStatus("cancelled").Valid())
}

func TestCanApplicantEdit(t *testing.T) {
	app := &Application{ApplicantEmail: "a@x.com", Status: StatusPending}

	t.Run("owner_while_pending", func(t *testing.T) {
		assert.NoError(t, CanApplicantEdit(app, "a@x.com"))
	})

	t.Run("non_owner_reports_not_found", func(t *testing.T) {
		err := CanApplicantEdit(app, "b@x.com")
		ae := &AppError{}
		assert.ErrorAs(t, err, &ae)
		assert.Equal(t, CodeNotFound, ae.Code)
	})

	t.Run("owner_after_status_moved", func(t *testing.T) {
		moved := &Application{ApplicantEmail: "a@x.com", Status: StatusProcessing}
		err := CanApplicantEdit(moved, "a@x.com")
		ae := &AppError{}
		assert.ErrorAs(t, err, &ae)
		assert.Equal(t, CodeInvalidState, ae.Code)
	})
}

func TestIsSelfTarget(t *testing.T) {
	assert.True(t, IsSelfTarget("Admin@X.com", "admin@x.com"))
	assert.True(t, IsSelfTarget(" admin@x.com ", "admin@x.com"))
	assert.False(t, IsSelfTarget("other@x.com", "admin@x.com"))
}
