package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/harentsoaR/patient-monitor-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps every collection in process memory. Heart-rate records
// are kept in insertion order.
type MemoryStore struct {
	mu         sync.RWMutex
	users      map[string]*models.User // keyed by email
	patients   map[primitive.ObjectID]*models.Patient
	heartRates []models.HeartRateRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]*models.User),
		patients: make(map[primitive.ObjectID]*models.Patient),
	}
}

func (m *MemoryStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	if err := validate(user); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Email]; ok {
		return fmt.Errorf("insert user: %w", ErrDuplicateKey)
	}
	stamp(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	cp := *user
	m.users[user.Email] = &cp
	return nil
}

func (m *MemoryStore) CreatePatient(_ context.Context, patient *models.Patient) error {
	if err := validate(patient); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stamp(&patient.ID, &patient.CreatedAt, &patient.UpdatedAt)
	cp := *patient
	m.patients[patient.ID] = &cp
	return nil
}

func (m *MemoryStore) GetPatient(_ context.Context, id string) (*models.Patient, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.patients[oid]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MemoryStore) CreateHeartRate(_ context.Context, record *models.HeartRateRecord) error {
	if err := validate(record); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stamp(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	m.heartRates = append(m.heartRates, *record)
	return nil
}

func (m *MemoryStore) ListHeartRates(_ context.Context, patientID string) ([]models.HeartRateRecord, error) {
	oid, err := ParseID(patientID)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.HeartRateRecord{}
	for _, r := range m.heartRates {
		if r.PatientID == oid {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }
