package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Age       *float64           `bson:"age" json:"age"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Validate reports whether every required field is set. Age zero is valid,
// only an absent age is rejected.
func (p *Patient) Validate() error {
	switch {
	case p.Name == "":
		return missing("name")
	case p.Age == nil:
		return missing("age")
	case p.UserID.IsZero():
		return missing("userId")
	}
	return nil
}
