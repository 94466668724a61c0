package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opportunest/opportunest-server/internal/domain"
)

type StatsRepo struct {
	users        *mongo.Collection
	scholarships *mongo.Collection
	applications *mongo.Collection
}

func (r *StatsRepo) CountUsers(ctx context.Context) (int64, error) {
	n, err := r.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *StatsRepo) CountScholarships(ctx context.Context) (int64, error) {
	n, err := r.scholarships.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count scholarships: %w", err)
	}
	return n, nil
}

func (r *StatsRepo) CountApplications(ctx context.Context) (int64, error) {
	n, err := r.applications.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return n, nil
}

// categoryBreakdownPipeline groups scholarships by scholarshipCategory into
// {name, value} pairs for the pie chart.
func categoryBreakdownPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$scholarshipCategory",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":   0,
			"name":  "$_id",
			"value": "$count",
		}}},
	}
}

func (r *StatsRepo) CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error) {
	cur, err := r.scholarships.Aggregate(ctx, categoryBreakdownPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate category breakdown: %w", err)
	}
	out := []domain.CategoryStat{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode category breakdown: %w", err)
	}
	return out, nil
}

// dailyApplicationsPipeline buckets applications submitted since the cutoff by
// calendar day, ascending. Days with no submissions produce no bucket.
func dailyApplicationsPipeline(since time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"applicationDate": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$applicationDate",
			}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":          0,
			"date":         "$_id",
			"applications": "$count",
		}}},
	}
}

func (r *StatsRepo) DailyApplications(ctx context.Context, since time.Time) ([]domain.DailyApplicationStat, error) {
	cur, err := r.applications.Aggregate(ctx, dailyApplicationsPipeline(since))
	if err != nil {
		return nil, fmt.Errorf("aggregate daily applications: %w", err)
	}
	out := []domain.DailyApplicationStat{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode daily applications: %w", err)
	}
	return out, nil
}
