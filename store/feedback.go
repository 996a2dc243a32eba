package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulseboard/feedback-api/schema"
)

type Feedback interface {
	CreateFeedback(feedback schema.Feedback) (string, error)
	ListFeedback() ([]schema.Feedback, error)
	ListRecentFeedback(limit int64) ([]schema.Feedback, error)
	GetFeedbackMetrics() (*schema.AggregateMetrics, error)
	GetFeedbackTrend() ([]schema.TrendPoint, error)
}

// CreateFeedback appends one feedback document. The created_at field is
// stamped here, in UTC. Whatever the caller put there is overwritten.
func (m *mongoDB) CreateFeedback(feedback schema.Feedback) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	feedback.CreatedAt = time.Now().UTC()

	c := m.client.Database(m.database)

	r, err := c.Collection(schema.FeedbackCollection).InsertOne(ctx, &feedback)
	if err != nil {
		return "", err
	}

	id, ok := r.InsertedID.(primitive.ObjectID)
	if ok {
		return id.Hex(), nil
	}
	return "", fmt.Errorf("incorrect inserted id")
}

// ListFeedback returns every feedback document in natural storage order.
// The collection is append-only, so natural order is insertion order.
func (m *mongoDB) ListFeedback() ([]schema.Feedback, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("list feedback")
		return nil, err
	}

	feedbacks := make([]schema.Feedback, 0)
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}

	return feedbacks, nil
}

// ListRecentFeedback returns the newest feedback documents first.
func (m *mongoDB) ListRecentFeedback(limit int64) ([]schema.Feedback, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit)

	cursor, err := c.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("list recent feedback")
		return nil, err
	}

	feedbacks := make([]schema.Feedback, 0)
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}

	return feedbacks, nil
}

// GetFeedbackMetrics runs a single $group pass over the whole collection and
// returns the five averages plus the total count. It returns nil when the
// collection is empty so callers never see averages over zero documents.
func (m *mongoDB) GetFeedbackMetrics() (*schema.AggregateMetrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	cursor, err := c.Aggregate(ctx, mongo.Pipeline{
		AggregationGroup(nil, bson.D{
			bson.E{Key: "avg_usability", Value: bson.M{"$avg": "$usability_rating"}},
			bson.E{Key: "avg_performance", Value: bson.M{"$avg": "$performance_rating"}},
			bson.E{Key: "avg_ui", Value: bson.M{"$avg": "$ui_rating"}},
			bson.E{Key: "avg_documentation", Value: bson.M{"$avg": "$documentation_rating"}},
			bson.E{Key: "avg_sentiment", Value: bson.M{"$avg": "$sentiment_score"}},
			bson.E{Key: "total_feedback", Value: bson.M{"$sum": 1}},
		}),
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("aggregate feedback metrics")
		return nil, err
	}

	if !cursor.Next(ctx) {
		return nil, nil
	}

	var metrics schema.AggregateMetrics
	if err := cursor.Decode(&metrics); err != nil {
		return nil, err
	}

	return &metrics, nil
}

// GetFeedbackTrend buckets the collection by the UTC calendar day of
// created_at and returns one point per day, ascending by day key.
func (m *mongoDB) GetFeedbackTrend() ([]schema.TrendPoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	cursor, err := c.Aggregate(ctx, mongo.Pipeline{
		AggregationGroup(bson.M{
			"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$created_at",
			},
		}, bson.D{
			bson.E{Key: "count", Value: bson.M{"$sum": 1}},
			bson.E{Key: "avg_sentiment", Value: bson.M{"$avg": "$sentiment_score"}},
		}),
		AggregationSort(bson.M{"_id": 1}),
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("aggregate feedback trend")
		return nil, err
	}

	points := make([]schema.TrendPoint, 0)
	for cursor.Next(ctx) {
		var point schema.TrendPoint
		if err := cursor.Decode(&point); err != nil {
			return nil, err
		}
		points = append(points, point)
	}

	return points, nil
}
