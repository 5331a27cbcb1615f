package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateReportsMissingField(t *testing.T) {
	age := 0.0
	cases := []struct {
		doc   interface{ Validate() error }
		field string
	}{
		{&User{Email: "a@example.com", Password: "pw"}, "name"},
		{&Patient{Name: "Alice", UserID: primitive.NewObjectID()}, "age"},
		{&Patient{Name: "Alice", Age: &age}, "userId"},
		{&HeartRateRecord{PatientID: primitive.NewObjectID()}, "heartRate"},
	}
	for _, tc := range cases {
		var missing *MissingFieldError
		require.True(t, errors.As(tc.doc.Validate(), &missing))
		require.Equal(t, tc.field, missing.Field)
	}

	require.NoError(t, (&Patient{Name: "Alice", Age: &age, UserID: primitive.NewObjectID()}).Validate())
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	b, err := json.Marshal(User{Name: "A", Email: "a@example.com", Password: "secret"})
	require.NoError(t, err)
	require.NotContains(t, string(b), "secret")
	require.Contains(t, string(b), `"_id"`)
}

func TestNumberAcceptsNumericStrings(t *testing.T) {
	var req struct {
		Age *Number `json:"age"`
	}

	for body, want := range map[string]float64{
		`{"age":30}`:     30,
		`{"age":"30"}`:   30,
		`{"age":" 72 "}`: 72,
		`{"age":"0"}`:    0,
		`{"age":36.6}`:   36.6,
	} {
		req.Age = nil
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		require.Equal(t, want, *req.Age.Float64(), body)
	}

	for _, body := range []string{`{"age":"old"}`, `{"age":""}`, `{"age":"NaN"}`, `{"age":true}`} {
		require.Error(t, json.Unmarshal([]byte(body), &req), body)
	}

	req.Age = nil
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	require.Nil(t, req.Age.Float64())
}
