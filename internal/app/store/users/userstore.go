// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/unitops/rollcall/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var ErrDuplicateEmail = errors.New("a user with this email already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Create inserts an operator account, hashing the supplied password.
func (s *Store) Create(ctx context.Context, u models.User, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.FullNameCI = text.Fold(u.FullName)
	u.PasswordHash = string(hash)
	if u.Status == "" {
		u.Status = "active"
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// VerifyPassword checks a candidate password against the stored hash.
func VerifyPassword(u models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// EnsureAdmin creates the bootstrap admin account if no user with the
// given email exists yet. Called once at startup from config.
func (s *Store) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	err := s.c.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	_, err = s.Create(ctx, models.User{
		FullName:  "Administrator",
		Email:     email,
		Role:      "admin",
		DataScope: models.ScopeAllData,
	}, password)
	return err
}
