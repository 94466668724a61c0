package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opportunest/opportunest-server/internal/domain"
)

type ReviewRepo struct {
	c *mongo.Collection
}

func (r *ReviewRepo) Create(ctx context.Context, rev *domain.Review) (primitive.ObjectID, error) {
	res, err := r.c.InsertOne(ctx, rev)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert review: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *ReviewRepo) ListByScholarship(ctx context.Context, scholarshipID primitive.ObjectID) ([]domain.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "reviewDate", Value: -1}})
	cur, err := r.c.Find(ctx, bson.M{"scholarship_id": scholarshipID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reviews by scholarship: %w", err)
	}
	out := []domain.Review{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return out, nil
}

func (r *ReviewRepo) ListByReviewer(ctx context.Context, reviewerEmail string) ([]domain.Review, error) {
	cur, err := r.c.Find(ctx, bson.M{"reviewerEmail": reviewerEmail})
	if err != nil {
		return nil, fmt.Errorf("list reviews by reviewer: %w", err)
	}
	out := []domain.Review{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return out, nil
}

// UpdateOwned writes through the id+reviewer compound filter so a reviewer can
// only touch their own document. ReviewDate moves to the edit time.
func (r *ReviewRepo) UpdateOwned(ctx context.Context, id primitive.ObjectID, reviewerEmail string, rating int, comments string, at time.Time) (bool, error) {
	filter := bson.M{"_id": id, "reviewerEmail": reviewerEmail}
	update := bson.M{"$set": bson.M{
		"ratingPoint":      rating,
		"reviewerComments": comments,
		"reviewDate":       at,
	}}
	res, err := r.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("update review: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *ReviewRepo) DeleteOwned(ctx context.Context, id primitive.ObjectID, reviewerEmail string) (bool, error) {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id, "reviewerEmail": reviewerEmail})
	if err != nil {
		return false, fmt.Errorf("delete review: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// adminReviewsPipeline joins every review with its scholarship so the
// moderation table can show university and subject alongside the review.
func adminReviewsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         collScholarships,
			"localField":   "scholarship_id",
			"foreignField": "_id",
			"as":           "scholarshipDetails",
		}}},
		{{Key: "$unwind", Value: "$scholarshipDetails"}},
		{{Key: "$project", Value: bson.M{
			"reviewerName":     1,
			"reviewerEmail":    1,
			"reviewerImage":    1,
			"reviewDate":       1,
			"ratingPoint":      1,
			"reviewerComments": 1,
			"universityName":   "$scholarshipDetails.universityName",
			"subjectCategory":  "$scholarshipDetails.subjectCategory",
		}}},
	}
}

func (r *ReviewRepo) AdminList(ctx context.Context) ([]domain.AdminReviewRow, error) {
	cur, err := r.c.Aggregate(ctx, adminReviewsPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate admin reviews: %w", err)
	}
	out := []domain.AdminReviewRow{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode admin reviews: %w", err)
	}
	return out, nil
}

// Delete removes by id regardless of owner; moderation only.
func (r *ReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete review: %w", err)
	}
	return res.DeletedCount > 0, nil
}
