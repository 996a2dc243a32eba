package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// MongoStore combines every mongodb operation this service performs.
type MongoStore interface {
	Feedback
	Account

	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore returns a MongoStore that operates on the given database.
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.client.Ping(ctx, nil)
}
