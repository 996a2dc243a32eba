package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FeedbackCollection = "feedback"
)

// UserRoles holds the accepted answers for "what best describes your role?".
var UserRoles = map[string]struct{}{
	"Developer":        {},
	"Designer":         {},
	"Product Manager":  {},
	"Business Analyst": {},
	"Other":            {},
}

// ExperienceLevels holds the accepted answers for "how long have you been using our platform?".
var ExperienceLevels = map[string]struct{}{
	"Less than a month": {},
	"1-6 months":        {},
	"6-12 months":       {},
	"More than a year":  {},
}

func IsValidUserRole(role string) bool {
	_, ok := UserRoles[role]
	return ok
}

func IsValidExperienceLevel(level string) bool {
	_, ok := ExperienceLevels[level]
	return ok
}

type Feedback struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserRole            string             `json:"user_role" bson:"user_role"`
	ExperienceLevel     string             `json:"experience_level" bson:"experience_level"`
	FeedbackText        string             `json:"feedback_text" bson:"feedback_text"`
	UsabilityRating     int                `json:"usability_rating" bson:"usability_rating"`
	PerformanceRating   int                `json:"performance_rating" bson:"performance_rating"`
	UIRating            int                `json:"ui_rating" bson:"ui_rating"`
	DocumentationRating int                `json:"documentation_rating" bson:"documentation_rating"`
	SentimentLabel      string             `json:"sentiment_label" bson:"sentiment_label"`
	SentimentScore      float64            `json:"sentiment_score" bson:"sentiment_score"`
	SentimentConfidence float64            `json:"sentiment_confidence" bson:"sentiment_confidence"`
	CreatedAt           time.Time          `json:"created_at" bson:"created_at"`
}
