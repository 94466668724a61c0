package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opportunest/opportunest-server/internal/domain"
	"github.com/opportunest/opportunest-server/internal/service"
)

type UserRepo struct {
	c *mongo.Collection
}

// Sync upserts by email. Role and createdAt are write-once ($setOnInsert);
// profile fields and lastLogin refresh on every login.
func (r *UserRepo) Sync(ctx context.Context, id service.SyncIdentity, roleAtCreation domain.Role, now time.Time) (*domain.User, error) {
	filter := bson.M{"email": id.Email}
	update := bson.M{
		"$setOnInsert": bson.M{
			"email":     id.Email,
			"role":      roleAtCreation,
			"createdAt": now,
		},
		"$set": bson.M{
			"name":      id.Name,
			"photoURL":  id.Picture,
			"lastLogin": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var u domain.User
	if err := r.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&u); err != nil {
		return nil, fmt.Errorf("sync user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var u domain.User
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context, role domain.Role) ([]domain.User, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	cur, err := r.c.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := []domain.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *UserRepo) UpdateRole(ctx context.Context, id primitive.ObjectID, role domain.Role) (bool, error) {
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return false, fmt.Errorf("update role: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *UserRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return res.DeletedCount > 0, nil
}
