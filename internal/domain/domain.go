package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// AtLeastModerator reports whether the role carries moderator privileges.
// Admin implies moderator.
func (r Role) AtLeastModerator() bool {
	return r == RoleModerator || r == RoleAdmin
}

type ApplicationStatus string

// The closed status set. "Rejected" keeps its historical capitalisation;
// clients match on the exact string.
const (
	StatusPending    ApplicationStatus = "pending"
	StatusProcessing ApplicationStatus = "processing"
	StatusCompleted  ApplicationStatus = "completed"
	StatusRejected   ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// User is created on first sight of a verified token and keyed by email.
// Role is assigned once at creation and only an admin may change it afterwards.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	PhotoURL  string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	LastLogin time.Time          `bson:"lastLogin" json:"lastLogin"`
}

type Scholarship struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ScholarshipName     string             `bson:"scholarshipName" json:"scholarshipName"`
	UniversityName      string             `bson:"universityName" json:"universityName"`
	UniversityImage     string             `bson:"universityImage,omitempty" json:"universityImage,omitempty"`
	UniversityCity      string             `bson:"universityCity" json:"universityCity"`
	UniversityCountry   string             `bson:"universityCountry" json:"universityCountry"`
	UniversityWorldRank int                `bson:"universityWorldRank,omitempty" json:"universityWorldRank,omitempty"`
	SubjectCategory     string             `bson:"subjectCategory" json:"subjectCategory"`
	ScholarshipCategory string             `bson:"scholarshipCategory" json:"scholarshipCategory"`
	Degree              string             `bson:"degree" json:"degree"`
	TuitionFees         float64            `bson:"tuitionFees,omitempty" json:"tuitionFees,omitempty"`
	ApplicationFees     float64            `bson:"applicationFees" json:"applicationFees"`
	ServiceCharge       float64            `bson:"serviceCharge" json:"serviceCharge"`
	ApplicationDeadline time.Time          `bson:"applicationDeadline" json:"applicationDeadline"`
	Description         string             `bson:"description,omitempty" json:"description,omitempty"`
	PostDate            time.Time          `bson:"postDate" json:"postDate"`
	PostedUserEmail     string             `bson:"postedUserEmail" json:"postedUserEmail"`
}

// Application stores a snapshot of the applicant profile at submission time.
// It carries no duplicated scholarship fields; joined read views project those
// from the catalog.
type Application struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ScholarshipID   primitive.ObjectID `bson:"scholarshipId" json:"scholarshipId"`
	ApplicantEmail  string             `bson:"applicantEmail" json:"applicantEmail"`
	ApplicantName   string             `bson:"applicantName" json:"applicantName"`
	Phone           string             `bson:"phone" json:"phone"`
	Address         string             `bson:"address" json:"address"`
	Gender          string             `bson:"gender" json:"gender"`
	ApplyingDegree  string             `bson:"applyingDegree" json:"applyingDegree"`
	SSCResult       string             `bson:"sscResult" json:"sscResult"`
	HSCResult       string             `bson:"hscResult" json:"hscResult"`
	StudyGap        string             `bson:"studyGap,omitempty" json:"studyGap,omitempty"`
	PhotoURL        string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Status          ApplicationStatus  `bson:"status" json:"status"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	ApplicationDate time.Time          `bson:"applicationDate" json:"applicationDate"`
}

// Review identity fields are stamped from the verified token, never from
// client input.
type Review struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ScholarshipID    primitive.ObjectID `bson:"scholarship_id" json:"scholarship_id"`
	ReviewerEmail    string             `bson:"reviewerEmail" json:"reviewerEmail"`
	ReviewerName     string             `bson:"reviewerName" json:"reviewerName"`
	ReviewerImage    string             `bson:"reviewerImage,omitempty" json:"reviewerImage,omitempty"`
	RatingPoint      int                `bson:"ratingPoint" json:"ratingPoint"`
	ReviewerComments string             `bson:"reviewerComments" json:"reviewerComments"`
	ReviewDate       time.Time          `bson:"reviewDate" json:"reviewDate"`
}

// AppliedScholarship is the denormalized row behind GET /my-applications:
// each application joined against its scholarship.
type AppliedScholarship struct {
	ID                primitive.ObjectID `bson:"_id" json:"_id"`
	ScholarshipID     primitive.ObjectID `bson:"scholarshipId" json:"scholarshipId"`
	ApplicationStatus ApplicationStatus  `bson:"applicationStatus" json:"applicationStatus"`
	Feedback          string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	AppliedDegree     string             `bson:"appliedDegree" json:"appliedDegree"`
	UniversityName    string             `bson:"universityName" json:"universityName"`
	ScholarshipName   string             `bson:"scholarshipName" json:"scholarshipName"`
	UniversityAddress string             `bson:"universityAddress" json:"universityAddress"`
	SubjectCategory   string             `bson:"subjectCategory" json:"subjectCategory"`
	ApplicationFees   float64            `bson:"applicationFees" json:"applicationFees"`
	ServiceCharge     float64            `bson:"serviceCharge" json:"serviceCharge"`
}

// AdminApplicationRow backs the moderator-facing application list.
type AdminApplicationRow struct {
	ID              primitive.ObjectID `bson:"_id" json:"_id"`
	ApplicantName   string             `bson:"applicantName" json:"applicantName"`
	ApplicantEmail  string             `bson:"applicantEmail" json:"applicantEmail"`
	ApplyingDegree  string             `bson:"applyingDegree" json:"applyingDegree"`
	UniversityName  string             `bson:"universityName" json:"universityName"`
	ScholarshipName string             `bson:"scholarshipName" json:"scholarshipName"`
	Status          ApplicationStatus  `bson:"status" json:"status"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

// AdminReviewRow backs the moderator-facing review list.
type AdminReviewRow struct {
	ID               primitive.ObjectID `bson:"_id" json:"_id"`
	ReviewerName     string             `bson:"reviewerName" json:"reviewerName"`
	ReviewerEmail    string             `bson:"reviewerEmail" json:"reviewerEmail"`
	ReviewerImage    string             `bson:"reviewerImage,omitempty" json:"reviewerImage,omitempty"`
	ReviewDate       time.Time          `bson:"reviewDate" json:"reviewDate"`
	RatingPoint      int                `bson:"ratingPoint" json:"ratingPoint"`
	ReviewerComments string             `bson:"reviewerComments" json:"reviewerComments"`
	UniversityName   string             `bson:"universityName" json:"universityName"`
	SubjectCategory  string             `bson:"subjectCategory" json:"subjectCategory"`
}

type CategoryStat struct {
	Name  string `bson:"name" json:"name"`
	Value int64  `bson:"value" json:"value"`
}

// DailyApplicationStat is one bucket of the 7-day submission histogram.
// Days with zero applications do not appear.
type DailyApplicationStat struct {
	Date         string `bson:"date" json:"date"`
	Applications int64  `bson:"applications" json:"applications"`
}

type StatsOverview struct {
	TotalUsers        int64                  `json:"totalUsers"`
	TotalScholarships int64                  `json:"totalScholarships"`
	TotalApplications int64                  `json:"totalApplications"`
	CategoryStats     []CategoryStat         `json:"categoryStats"`
	ApplicationStats  []DailyApplicationStat `json:"applicationStats"`
}
