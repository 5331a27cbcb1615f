package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HeartRateRecord is a single reading tied to a patient. The patient
// reference is not checked for existence.
type HeartRateRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PatientID primitive.ObjectID `bson:"patientId" json:"patientId"`
	HeartRate *float64           `bson:"heartRate" json:"heartRate"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (r *HeartRateRecord) Validate() error {
	switch {
	case r.PatientID.IsZero():
		return missing("patientId")
	case r.HeartRate == nil:
		return missing("heartRate")
	}
	return nil
}
