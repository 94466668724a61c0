package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opportunest/opportunest-server/internal/domain"
	"github.com/opportunest/opportunest-server/internal/service"
)

type ApplicationRepo struct {
	c *mongo.Collection
}

func (r *ApplicationRepo) Create(ctx context.Context, a *domain.Application) (primitive.ObjectID, error) {
	res, err := r.c.InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert application: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *ApplicationRepo) GetOwned(ctx context.Context, id primitive.ObjectID, applicantEmail string) (*domain.Application, error) {
	var a domain.Application
	err := r.c.FindOne(ctx, bson.M{"_id": id, "applicantEmail": applicantEmail}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound("application not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find application: %w", err)
	}
	return &a, nil
}

// myApplicationsPipeline joins each of the applicant's applications against
// its scholarship and projects the denormalized row the dashboard shows. The
// application document itself stores none of the scholarship fields.
func myApplicationsPipeline(applicantEmail string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"applicantEmail": applicantEmail}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collScholarships,
			"localField":   "scholarshipId",
			"foreignField": "_id",
			"as":           "scholarshipDetails",
		}}},
		{{Key: "$unwind", Value: "$scholarshipDetails"}},
		{{Key: "$project", Value: bson.M{
			"_id":               1,
			"scholarshipId":     "$scholarshipDetails._id",
			"applicationStatus": "$status",
			"feedback":          "$feedback",
			"appliedDegree":     "$applyingDegree",
			"universityName":    "$scholarshipDetails.universityName",
			"scholarshipName":   "$scholarshipDetails.scholarshipName",
			"universityAddress": bson.M{"$concat": bson.A{
				"$scholarshipDetails.universityCity", ", ", "$scholarshipDetails.universityCountry",
			}},
			"subjectCategory": "$scholarshipDetails.subjectCategory",
			"applicationFees": "$scholarshipDetails.applicationFees",
			"serviceCharge":   "$scholarshipDetails.serviceCharge",
		}}},
	}
}

func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantEmail string) ([]domain.AppliedScholarship, error) {
	cur, err := r.c.Aggregate(ctx, myApplicationsPipeline(applicantEmail))
	if err != nil {
		return nil, fmt.Errorf("aggregate my applications: %w", err)
	}
	out := []domain.AppliedScholarship{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode applied scholarships: %w", err)
	}
	return out, nil
}

// UpdateOwnedPending writes through the id+owner+pending compound filter; a
// non-owner or a moved status matches zero documents.
func (r *ApplicationRepo) UpdateOwnedPending(ctx context.Context, id primitive.ObjectID, applicantEmail string, upd service.ApplicationUpdate) (bool, error) {
	filter := bson.M{
		"_id":            id,
		"applicantEmail": applicantEmail,
		"status":         domain.StatusPending,
	}

	set := bson.M{}
	setIf := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	setIf("phone", upd.Phone)
	setIf("address", upd.Address)
	setIf("gender", upd.Gender)
	setIf("applyingDegree", upd.ApplyingDegree)
	setIf("sscResult", upd.SSCResult)
	setIf("hscResult", upd.HSCResult)
	setIf("studyGap", upd.StudyGap)
	setIf("photoURL", upd.PhotoURL)
	if len(set) == 0 {
		// a body with no fields still goes through the same compound filter,
		// so the pending gate answers identically for empty and non-empty edits
		err := r.c.FindOne(ctx, filter).Err()
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("match application: %w", err)
		}
		return true, nil
	}

	res, err := r.c.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("update application: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *ApplicationRepo) DeleteOwned(ctx context.Context, id primitive.ObjectID, applicantEmail string) (bool, error) {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id, "applicantEmail": applicantEmail})
	if err != nil {
		return false, fmt.Errorf("delete application: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// adminApplicationsPipeline joins every application with its scholarship for
// the moderation table, sorted per the requested mode.
func adminApplicationsPipeline(sort service.AdminApplicationSort) mongo.Pipeline {
	var sortDoc bson.D
	switch sort {
	case service.SortOldestApplied:
		sortDoc = bson.D{{Key: "applicationDate", Value: 1}}
	case service.SortDeadlineAsc:
		sortDoc = bson.D{{Key: "scholarshipDetails.applicationDeadline", Value: 1}}
	case service.SortDeadlineDesc:
		sortDoc = bson.D{{Key: "scholarshipDetails.applicationDeadline", Value: -1}}
	default: // newest-applied
		sortDoc = bson.D{{Key: "applicationDate", Value: -1}}
	}

	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         collScholarships,
			"localField":   "scholarshipId",
			"foreignField": "_id",
			"as":           "scholarshipDetails",
		}}},
		{{Key: "$unwind", Value: "$scholarshipDetails"}},
		{{Key: "$sort", Value: sortDoc}},
		{{Key: "$project", Value: bson.M{
			"applicantName":   1,
			"applicantEmail":  1,
			"applyingDegree":  1,
			"status":          1,
			"feedback":        1,
			"universityName":  "$scholarshipDetails.universityName",
			"scholarshipName": "$scholarshipDetails.scholarshipName",
		}}},
	}
}

func (r *ApplicationRepo) AdminList(ctx context.Context, sort service.AdminApplicationSort) ([]domain.AdminApplicationRow, error) {
	cur, err := r.c.Aggregate(ctx, adminApplicationsPipeline(sort))
	if err != nil {
		return nil, fmt.Errorf("aggregate admin applications: %w", err)
	}
	out := []domain.AdminApplicationRow{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode admin applications: %w", err)
	}
	return out, nil
}

func (r *ApplicationRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status domain.ApplicationStatus) (bool, error) {
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return false, fmt.Errorf("set status: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *ApplicationRepo) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (bool, error) {
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"feedback": feedback}})
	if err != nil {
		return false, fmt.Errorf("set feedback: %w", err)
	}
	return res.MatchedCount > 0, nil
}
