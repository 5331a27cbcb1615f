package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/patient-monitor-api/internal/errs"
	"github.com/harentsoaR/patient-monitor-api/internal/models"
	"github.com/harentsoaR/patient-monitor-api/internal/store"
)

type RecordHeartRateRequest struct {
	PatientID string         `json:"patientId"`
	HeartRate *models.Number `json:"heartRate"`
}

// RecordHeartRate stores a reading. The patient reference is not checked
// for existence.
func (h *Handler) RecordHeartRate(c *gin.Context) {
	var req RecordHeartRateRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, errs.NewStoreError(err))
		return
	}

	record := models.HeartRateRecord{HeartRate: req.HeartRate.Float64()}
	if req.PatientID != "" {
		patientID, err := store.ParseID(req.PatientID)
		if err != nil {
			fail(c, errs.NewStoreError(err))
			return
		}
		record.PatientID = patientID
	}

	if err := h.Store.CreateHeartRate(c.Request.Context(), &record); err != nil {
		fail(c, errs.NewStoreError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Heart rate recorded", "recordId": record.ID.Hex()})
}

// GetHeartRates lists a patient's readings in insertion order. An empty
// result is a 404 whether or not the patient exists.
func (h *Handler) GetHeartRates(c *gin.Context) {
	records, err := h.Store.ListHeartRates(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		fail(c, errs.NewStoreError(err))
		return
	}
	if len(records) == 0 {
		fail(c, errs.NewNotFoundError(errs.MsgNoRecords))
		return
	}
	c.JSON(http.StatusOK, records)
}
