package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harentsoaR/patient-monitor-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names follow the pluralised model names the data was
// originally written under.
const (
	UsersCollection      = "users"
	PatientsCollection   = "patients"
	HeartRatesCollection = "heartrates"
)

// MongoStore implements Store on top of a *mongo.Database. The database
// handle owns the connection pool; MongoStore never closes it.
type MongoStore struct {
	db         *mongo.Database
	users      *mongo.Collection
	patients   *mongo.Collection
	heartRates *mongo.Collection
	opTimeout  time.Duration
}

// NewMongoStore wraps db. A zero opTimeout leaves store calls bounded only by
// the caller's context.
func NewMongoStore(db *mongo.Database, opTimeout time.Duration) *MongoStore {
	return &MongoStore{
		db:         db,
		users:      db.Collection(UsersCollection),
		patients:   db.Collection(PatientsCollection),
		heartRates: db.Collection(HeartRatesCollection),
		opTimeout:  opTimeout,
	}
}

// EnsureIndexes creates the unique index on users.email, which is the
// authoritative guard against duplicate registrations, and an index on
// heartrates.patientId for listing.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users.email index: %w", err)
	}
	_, err = s.heartRates.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create heartrates.patientId index: %w", err)
	}
	return nil
}

func (s *MongoStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := validate(user); err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	stamp(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert user: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *MongoStore) CreatePatient(ctx context.Context, patient *models.Patient) error {
	if err := validate(patient); err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	stamp(&patient.ID, &patient.CreatedAt, &patient.UpdatedAt)
	if _, err := s.patients.InsertOne(ctx, patient); err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

func (s *MongoStore) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var patient models.Patient
	err = s.patients.FindOne(ctx, bson.M{"_id": oid}).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return &patient, nil
}

func (s *MongoStore) CreateHeartRate(ctx context.Context, record *models.HeartRateRecord) error {
	if err := validate(record); err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	stamp(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if _, err := s.heartRates.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert heart rate: %w", err)
	}
	return nil
}

func (s *MongoStore) ListHeartRates(ctx context.Context, patientID string) ([]models.HeartRateRecord, error) {
	oid, err := ParseID(patientID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	// ObjectIDs grow with insertion time, so sorting on _id keeps insertion order.
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.heartRates.Find(ctx, bson.M{"patientId": oid}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find heart rates: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.HeartRateRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode heart rates: %w", err)
	}
	return records, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}
