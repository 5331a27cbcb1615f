// Package store persists users, patients and heart-rate records.
//
// Two implementations exist: MongoStore, backed by a MongoDB database, and
// MemoryStore, used by tests and as a fallback when no MONGO_URI is set.
// Both assign ObjectID identifiers and createdAt/updatedAt timestamps on
// insert and enforce the same required-field rules.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harentsoaR/patient-monitor-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound        = errors.New("document not found")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrInvalidID       = errors.New("invalid object id")
	ErrInvalidDocument = errors.New("document failed validation")
)

// Store is the persistence surface used by the HTTP handlers. Each method is
// a single round trip; none of them retry.
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	CreatePatient(ctx context.Context, patient *models.Patient) error
	GetPatient(ctx context.Context, id string) (*models.Patient, error)
	CreateHeartRate(ctx context.Context, record *models.HeartRateRecord) error
	ListHeartRates(ctx context.Context, patientID string) ([]models.HeartRateRecord, error)
	Ping(ctx context.Context) error
}

var (
	_ Store = (*MongoStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// ParseID converts a hex string into an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, hex)
	}
	return id, nil
}

type validatable interface {
	Validate() error
}

func validate(doc validatable) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

// now matches the millisecond precision MongoDB stores dates with, so both
// stores return identical timestamps.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func stamp(id *primitive.ObjectID, createdAt, updatedAt *time.Time) {
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
	t := now()
	*createdAt = t
	*updatedAt = t
}
