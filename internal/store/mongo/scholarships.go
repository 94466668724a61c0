package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opportunest/opportunest-server/internal/domain"
)

type CatalogRepo struct {
	c *mongo.Collection
}

func (r *CatalogRepo) Create(ctx context.Context, s *domain.Scholarship) (primitive.ObjectID, error) {
	res, err := r.c.InsertOne(ctx, s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert scholarship: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *CatalogRepo) Get(ctx context.Context, id primitive.ObjectID) (*domain.Scholarship, error) {
	var s domain.Scholarship
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound("scholarship not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find scholarship: %w", err)
	}
	return &s, nil
}

func (r *CatalogRepo) ListAll(ctx context.Context) ([]domain.Scholarship, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list scholarships: %w", err)
	}
	out := []domain.Scholarship{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode scholarships: %w", err)
	}
	return out, nil
}

// searchFilter matches a case-insensitive literal substring across name,
// university and degree. The query is quoted so regex metacharacters in user
// input stay inert.
func searchFilter(query string) bson.M {
	if query == "" {
		return bson.M{}
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"scholarshipName": re},
		bson.M{"universityName": re},
		bson.M{"degree": re},
	}}
}

// Search counts and fetches under the same filter so the reported total is
// always consistent with the page.
func (r *CatalogRepo) Search(ctx context.Context, query string, page, limit int) ([]domain.Scholarship, int64, error) {
	filter := searchFilter(query)

	total, err := r.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count scholarships: %w", err)
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("search scholarships: %w", err)
	}
	out := []domain.Scholarship{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, fmt.Errorf("decode scholarships: %w", err)
	}
	return out, total, nil
}

// topSort ranks by best value: cheapest application fee first, newest post
// breaking ties.
func topSort() bson.D {
	return bson.D{
		{Key: "applicationFees", Value: 1},
		{Key: "postDate", Value: -1},
	}
}

func (r *CatalogRepo) Top(ctx context.Context, limit int) ([]domain.Scholarship, error) {
	opts := options.Find().SetSort(topSort()).SetLimit(int64(limit))
	cur, err := r.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("top scholarships: %w", err)
	}
	out := []domain.Scholarship{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode scholarships: %w", err)
	}
	return out, nil
}

// Replace rewrites the mutable fields wholesale. The identifier and posting
// metadata are never part of the $set.
func (r *CatalogRepo) Replace(ctx context.Context, id primitive.ObjectID, s *domain.Scholarship) (bool, error) {
	set := bson.M{
		"scholarshipName":     s.ScholarshipName,
		"universityName":      s.UniversityName,
		"universityImage":     s.UniversityImage,
		"universityCity":      s.UniversityCity,
		"universityCountry":   s.UniversityCountry,
		"universityWorldRank": s.UniversityWorldRank,
		"subjectCategory":     s.SubjectCategory,
		"scholarshipCategory": s.ScholarshipCategory,
		"degree":              s.Degree,
		"tuitionFees":         s.TuitionFees,
		"applicationFees":     s.ApplicationFees,
		"serviceCharge":       s.ServiceCharge,
		"applicationDeadline": s.ApplicationDeadline,
		"description":         s.Description,
	}
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("update scholarship: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *CatalogRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete scholarship: %w", err)
	}
	return res.DeletedCount > 0, nil
}
