package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulseboard/feedback-api/schema"
)

type Account interface {
	EnsureAdminAccount(defaultPassword string) error
	VerifyAccount(username, password string) (bool, error)
}

// EnsureAdminAccount creates the single privileged account on a fresh
// deployment. It checks existence by username first, so running it on every
// start inserts at most one document.
func (m *mongoDB) EnsureAdminAccount(defaultPassword string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	count, err := c.CountDocuments(ctx, bson.M{"username": schema.AdminUsername})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := c.InsertOne(ctx, schema.Account{
		Username:     schema.AdminUsername,
		PasswordHash: hash,
		Role:         "admin",
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":   mongoLogPrefix,
		"username": schema.AdminUsername,
	}).Info("default admin account created")

	return nil
}

// VerifyAccount checks a username and password pair against the users
// collection. A missing account and a wrong password both come back as
// false without an error. The hash comparison is constant-time.
func (m *mongoDB) VerifyAccount(username, password string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	var account schema.Account
	err := c.FindOne(ctx, bson.M{"username": username}).Decode(&account)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return false, nil
	}

	return true, nil
}
