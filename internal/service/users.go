package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opportunest/opportunest-server/internal/domain"
)

type UserService struct {
	repo           UserRepo
	clock          Clock
	adminEmail     string
	moderatorEmail string
}

func NewUserService(repo UserRepo, clock Clock, adminEmail, moderatorEmail string) *UserService {
	return &UserService{
		repo:           repo,
		clock:          clock,
		adminEmail:     strings.ToLower(adminEmail),
		moderatorEmail: strings.ToLower(moderatorEmail),
	}
}

// Sync maps a verified identity to the persisted user record, creating it on
// first sight. Role is computed from the static allowlist at creation only.
func (s *UserService) Sync(ctx context.Context, id SyncIdentity) (*domain.User, error) {
	id.Email = strings.ToLower(strings.TrimSpace(id.Email))
	if id.Email == "" {
		return nil, domain.ErrUnauthorized("token carries no email")
	}
	if id.Name == "" {
		id.Name = "N/A"
	}

	role := domain.AssignRoleAtCreation(id.Email, s.adminEmail, s.moderatorEmail)
	return s.repo.Sync(ctx, id, role, s.clock.Now())
}

// RoleOf re-reads the persisted role for the email on every call; callers must
// not cache the result.
func (s *UserService) RoleOf(ctx context.Context, email string) (domain.Role, error) {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

func (s *UserService) List(ctx context.Context, roleFilter string) ([]domain.User, error) {
	role := domain.Role(roleFilter)
	if roleFilter != "" && !role.Valid() {
		return nil, domain.ErrValidationMeta("invalid query param", map[string]string{
			"role": "must be one of: user, moderator, admin",
		})
	}
	return s.repo.List(ctx, role)
}

// ChangeRole updates a user's role. Changing your own role is forbidden.
func (s *UserService) ChangeRole(ctx context.Context, id string, newRole string, actorEmail string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	role := domain.Role(newRole)
	if !role.Valid() {
		return domain.ErrValidationMeta("invalid role", map[string]string{
			"newRole": "must be one of: user, moderator, admin",
		})
	}

	target, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if domain.IsSelfTarget(target.Email, actorEmail) {
		return domain.ErrSelfAction("Admin cannot change their own role.")
	}

	ok, err := s.repo.UpdateRole(ctx, oid, role)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound("user not found")
	}
	return nil
}

// Remove deletes a user account. Self-delete is forbidden.
func (s *UserService) Remove(ctx context.Context, id string, actorEmail string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	target, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if domain.IsSelfTarget(target.Email, actorEmail) {
		return domain.ErrSelfAction("Admin cannot delete their own account.")
	}

	ok, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound("user not found")
	}
	return nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, domain.ErrValidationMeta("invalid path param", map[string]string{
			"id": "must be a valid object id",
		})
	}
	return oid, nil
}
