// Package mongo holds the document-store repositories. All cross-collection
// read models are aggregation pipelines ($lookup/$unwind/$project/$group);
// single-document writes rely on the store's own atomicity and nothing else.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collUsers        = "users"
	collScholarships = "scholarships"
	collApplications = "applications"
	collReviews      = "reviews"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the cluster and pings it before handing the store out.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Users() *UserRepo               { return &UserRepo{c: s.db.Collection(collUsers)} }
func (s *Store) Scholarships() *CatalogRepo     { return &CatalogRepo{c: s.db.Collection(collScholarships)} }
func (s *Store) Applications() *ApplicationRepo { return &ApplicationRepo{c: s.db.Collection(collApplications)} }
func (s *Store) Reviews() *ReviewRepo           { return &ReviewRepo{c: s.db.Collection(collReviews)} }

func (s *Store) Stats() *StatsRepo {
	return &StatsRepo{
		users:        s.db.Collection(collUsers),
		scholarships: s.db.Collection(collScholarships),
		applications: s.db.Collection(collApplications),
	}
}
