package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalog/vitalog/internal/database"
	"github.com/vitalog/vitalog/internal/entities"
)

// MedicinesController handles medicine catalog and dose tracking endpoints.
type MedicinesController struct {
	store *database.Store
}

func NewMedicinesController(store *database.Store) *MedicinesController {
	return &MedicinesController{store: store}
}

// ListMedicines returns all medicines sorted by name.
// GET /api/medicines
func (mc *MedicinesController) ListMedicines(c *gin.Context) {
	medicines, err := mc.store.ListMedicines(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "list medicines")
		return
	}
	c.JSON(http.StatusOK, medicines)
}

// GetMedicine returns a single medicine by ID.
// GET /api/medicines/:id
func (mc *MedicinesController) GetMedicine(c *gin.Context) {
	medicine, err := mc.store.GetMedicine(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "get medicine")
		return
	}
	if medicine == nil {
		respondNotFound(c, "medicine")
		return
	}
	c.JSON(http.StatusOK, medicine)
}

// CreateMedicine adds a new medicine to the catalog.
// POST /api/medicines
func (mc *MedicinesController) CreateMedicine(c *gin.Context) {
	var medicine entities.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	id, err := mc.store.AddMedicine(c.Request.Context(), medicine)
	if err != nil {
		respondStoreError(c, err, "create medicine")
		return
	}

	created, err := mc.store.GetMedicine(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "load created medicine")
		return
	}
	respondCreated(c, created)
}

// UpdateMedicine merges a partial update onto an existing medicine.
// PATCH /api/medicines/:id
func (mc *MedicinesController) UpdateMedicine(c *gin.Context) {
	var update entities.MedicineUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	medicine, err := mc.store.UpdateMedicine(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondStoreError(c, err, "update medicine")
		return
	}
	c.JSON(http.StatusOK, medicine)
}

// DeleteMedicine removes a medicine. Deleting an absent medicine is not
// an error; its dose history is kept either way.
// DELETE /api/medicines/:id
func (mc *MedicinesController) DeleteMedicine(c *gin.Context) {
	if err := mc.store.RemoveMedicine(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err, "delete medicine")
		return
	}
	respondSuccess(c, "medicine deleted")
}

// RecordDose logs an intake confirmation for a medicine.
// POST /api/medicines/:id/doses
func (mc *MedicinesController) RecordDose(c *gin.Context) {
	var req struct {
		DoseTime int `json:"dose_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	entry, err := mc.store.RecordDose(c.Request.Context(), c.Param("id"), req.DoseTime)
	if err != nil {
		respondStoreError(c, err, "record dose")
		return
	}
	respondCreated(c, entry)
}

// DoseHistory returns recent intake confirmations, newest first.
// GET /api/doses?limit=50
func (mc *MedicinesController) DoseHistory(c *gin.Context) {
	limit, ok := parseQueryInt(c, "limit", database.DefaultDoseHistoryLimit)
	if !ok {
		return
	}

	history, err := mc.store.GetDoseHistory(c.Request.Context(), limit)
	if err != nil {
		respondStoreError(c, err, "dose history")
		return
	}
	c.JSON(http.StatusOK, history)
}
