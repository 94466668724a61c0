package domain

import "strings"

// AssignRoleAtCreation computes the role for a first-seen email by exact match
// against the statically configured admin and moderator addresses. The role is
// assigned once; later logins never change it.
func AssignRoleAtCreation(email, adminEmail, moderatorEmail string) Role {
	switch {
	case adminEmail != "" && email == adminEmail:
		return RoleAdmin
	case moderatorEmail != "" && email == moderatorEmail:
		return RoleModerator
	default:
		return RoleUser
	}
}

func CanManageCatalog(role Role) bool { return role.AtLeastModerator() }

func CanAdministerUsers(role Role) bool { return role == RoleAdmin }

// CanApplicantEdit gates applicant-initiated edits: owner only, and only while
// the application is still pending. Moderators change status/feedback through
// their own routes regardless of current status.
func CanApplicantEdit(app *Application, applicantEmail string) error {
	if app.ApplicantEmail != applicantEmail {
		return ErrNotFound("application not found")
	}
	if app.Status != StatusPending {
		return ErrInvalidState("application is no longer pending")
	}
	return nil
}

// IsSelfTarget guards admin user mutations against the caller's own account.
func IsSelfTarget(targetEmail, actorEmail string) bool {
	return strings.EqualFold(strings.TrimSpace(targetEmail), strings.TrimSpace(actorEmail))
}
