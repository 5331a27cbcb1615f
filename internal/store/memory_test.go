package store

import (
	"context"
	"testing"

	"github.com/harentsoaR/patient-monitor-api/internal/models"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ptr(f float64) *float64 { return &f }

func TestMemoryStore_Users(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.FindUserByEmail(ctx, "a@example.com")
	require.ErrorIs(t, err, ErrNotFound)

	u := &models.User{Name: "A", Email: "a@example.com", Password: "secret"}
	require.NoError(t, s.CreateUser(ctx, u))
	require.False(t, u.ID.IsZero())
	require.False(t, u.CreatedAt.IsZero())
	require.Equal(t, u.CreatedAt, u.UpdatedAt)

	got, err := s.FindUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "secret", got.Password)

	err = s.CreateUser(ctx, &models.User{Name: "B", Email: "a@example.com", Password: "other"})
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestMemoryStore_RejectsMissingFields(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	err := s.CreatePatient(ctx, &models.Patient{Name: "Alice", UserID: primitive.NewObjectID()})
	require.ErrorIs(t, err, ErrInvalidDocument)

	err = s.CreateHeartRate(ctx, &models.HeartRateRecord{HeartRate: ptr(72)})
	require.ErrorIs(t, err, ErrInvalidDocument)

	err = s.CreateUser(ctx, &models.User{Email: "x@example.com", Password: "p"})
	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestMemoryStore_Patients(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	userID := primitive.NewObjectID()

	p := &models.Patient{Name: "Alice", Age: ptr(0), UserID: userID}
	require.NoError(t, s.CreatePatient(ctx, p))

	got, err := s.GetPatient(ctx, p.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Name)
	require.Equal(t, 0.0, *got.Age)
	require.Equal(t, userID, got.UserID)

	_, err = s.GetPatient(ctx, primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetPatient(ctx, "not-an-id")
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestMemoryStore_HeartRatesInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	patient := primitive.NewObjectID()
	other := primitive.NewObjectID()

	for _, v := range []float64{72, 80, 65} {
		require.NoError(t, s.CreateHeartRate(ctx, &models.HeartRateRecord{PatientID: patient, HeartRate: ptr(v)}))
	}
	require.NoError(t, s.CreateHeartRate(ctx, &models.HeartRateRecord{PatientID: other, HeartRate: ptr(100)}))

	list, err := s.ListHeartRates(ctx, patient.Hex())
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, 72.0, *list[0].HeartRate)
	require.Equal(t, 80.0, *list[1].HeartRate)
	require.Equal(t, 65.0, *list[2].HeartRate)

	empty, err := s.ListHeartRates(ctx, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = s.ListHeartRates(ctx, "xyz")
	require.ErrorIs(t, err, ErrInvalidID)
}
