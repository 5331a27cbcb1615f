package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/patient-monitor-api/internal/errs"
	"github.com/harentsoaR/patient-monitor-api/internal/models"
	"github.com/harentsoaR/patient-monitor-api/internal/store"
)

type CreatePatientRequest struct {
	Name   string         `json:"name"`
	Age    *models.Number `json:"age"`
	UserID string         `json:"userId"`
}

// CreatePatient inserts a patient. Field rules live in the store, so a
// missing field or malformed userId is a server error, not a 400. The user
// reference is not checked for existence.
func (h *Handler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, errs.NewStoreError(err))
		return
	}

	patient := models.Patient{Name: req.Name, Age: req.Age.Float64()}
	if req.UserID != "" {
		userID, err := store.ParseID(req.UserID)
		if err != nil {
			fail(c, errs.NewStoreError(err))
			return
		}
		patient.UserID = userID
	}

	if err := h.Store.CreatePatient(c.Request.Context(), &patient); err != nil {
		fail(c, errs.NewStoreError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Patient added", "patientId": patient.ID.Hex()})
}

func (h *Handler) GetPatient(c *gin.Context) {
	patient, err := h.Store.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, errs.NewNotFoundError(errs.MsgPatientNotFound))
			return
		}
		fail(c, errs.NewStoreError(err))
		return
	}
	c.JSON(http.StatusOK, patient)
}
