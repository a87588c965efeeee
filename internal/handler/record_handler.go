package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbcare/screening-api/internal/models"
	"github.com/tbcare/screening-api/pkg/response"
)

type recordService interface {
	CreateRecord(ctx context.Context, userID int64, fields models.RecordFields) (*models.Record, error)
	FindRecords(ctx context.Context, userID int64) ([]models.Record, error)
	CreateSpecimenCollection(ctx context.Context, userID, recordID int64, fields models.SpecimenCollectionFields) (*models.SpecimenCollection, error)
	FindSpecimenCollections(ctx context.Context, userID, recordID int64) ([]models.SpecimenCollection, error)
	CreateLab(ctx context.Context, userID, recordID int64, fields models.LabFields) (*models.Lab, error)
	FindLabs(ctx context.Context, userID, recordID int64) ([]models.Lab, error)
	CreateFollowUp(ctx context.Context, userID, recordID int64, fields models.FollowUpFields) (*models.FollowUp, error)
	FindFollowUps(ctx context.Context, userID, recordID int64) ([]models.FollowUp, error)
	CreateOutcomeRecorded(ctx context.Context, userID, recordID int64, fields models.OutcomeRecordedFields) (*models.OutcomeRecorded, error)
	FindOutcomeRecorded(ctx context.Context, userID, recordID int64) ([]models.OutcomeRecorded, error)
	CreateTBTreatmentOutcome(ctx context.Context, userID, recordID int64, fields models.TBTreatmentOutcomeFields) (*models.TBTreatmentOutcome, error)
	FindTBTreatmentOutcomes(ctx context.Context, userID, recordID int64) ([]models.TBTreatmentOutcome, error)
}

// Path parameters of the sub-record routes. The user id comes first and the record id last.
var (
	specimenParams   = []string{"user_id", "record_id"}
	siteScopedParams = []string{"user_id", "site_id", "region_id", "record_id"}
)

// RecordHandler serves patient records and their clinical sub-records.
type RecordHandler struct {
	service recordService
	logger  *zap.Logger
}

// NewRecordHandler creates a record handler.
func NewRecordHandler(svc recordService, logger *zap.Logger) *RecordHandler {
	return &RecordHandler{service: svc, logger: logger}
}

// CreateRecord godoc
// @Summary Create patient record
// @Description The record is stored under the site and region of the user.
// @Tags Records
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param payload body models.RecordFields true "Record payload"
// @Success 200 {object} models.Record
// @Failure 400 {string} string
// @Router /users/{user_id}/records [post]
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	userID, err := paramInt(c, "user_id")
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	var fields models.RecordFields
	if err := bindPayload(c, &fields); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	record, err := h.service.CreateRecord(c.Request.Context(), userID, fields)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, record)
}

// FindRecords godoc
// @Summary List records of the user's site
// @Tags Records
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} models.Record
// @Router /users/{user_id}/records [get]
func (h *RecordHandler) FindRecords(c *gin.Context) {
	userID, err := paramInt(c, "user_id")
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	records, err := h.service.FindRecords(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, records)
}

// CreateSpecimenCollection godoc
// @Summary Add specimen collection to record
// @Tags Records
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param record_id path int true "Record ID"
// @Param payload body models.SpecimenCollectionFields true "Specimen payload"
// @Success 200 {object} models.SpecimenCollection
// @Router /users/{user_id}/records/{record_id}/specimen_collections [post]
func (h *RecordHandler) CreateSpecimenCollection(c *gin.Context) {
	createSubRecord(h, c, specimenParams, recordService.CreateSpecimenCollection)
}

// FindSpecimenCollections godoc
// @Summary List specimen collections of record
// @Tags Records
// @Produce json
// @Param user_id path int true "User ID"
// @Param record_id path int true "Record ID"
// @Success 200 {array} models.SpecimenCollection
// @Router /users/{user_id}/records/{record_id}/specimen_collections [get]
func (h *RecordHandler) FindSpecimenCollections(c *gin.Context) {
	findSubRecords(h, c, specimenParams, recordService.FindSpecimenCollections)
}

// CreateLab godoc
// @Summary Add lab results to record
// @Tags Records
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param site_id path int true "Site ID"
// @Param region_id path int true "Region ID"
// @Param record_id path int true "Record ID"
// @Param payload body models.LabFields true "Lab payload"
// @Success 200 {object} models.Lab
// @Router /users/{user_id}/sites/{site_id}/regions/{region_id}/records/{record_id}/labs [post]
func (h *RecordHandler) CreateLab(c *gin.Context) {
	createSubRecord(h, c, siteScopedParams, recordService.CreateLab)
}

// FindLabs godoc
// @Summary List lab results of record
// @Tags Records
// @Produce json
// @Param user_id path int true "User ID"
// @Param site_id path int true "Site ID"
// @Param region_id path int true "Region ID"
// @Param record_id path int true "Record ID"
// @Success 200 {array} models.Lab
// @Router /users/{user_id}/sites/{site_id}/regions/{region_id}/records/{record_id}/labs [get]
func (h *RecordHandler) FindLabs(c *gin.Context) {
	findSubRecords(h, c, siteScopedParams, recordService.FindLabs)
}

// CreateFollowUp godoc
// @Summary Add follow up to record
// @Tags Records
// @Accept json
// @Produce json
// @Param payload body models.FollowUpFields true "Follow up payload"
// @Success 200 {object} models.FollowUp
// @Router /users/{user_id}/sites/{site_id}/regions/{region_id}/records/{record_id}/follow_ups [post]
func (h *RecordHandler) CreateFollowUp(c *gin.Context) {
	createSubRecord(h, c, siteScopedParams, recordService.CreateFollowUp)
}

// FindFollowUps godoc
// @Summary List follow ups of record
// @Tags Records
// @Produce json
// @Success 200 {array} models.FollowUp
// @Router /users/{user_id}/sites/{site_id}/regions/{region_id}/records/{record_id}/follow_ups [get]
func (h *RecordHandler) FindFollowUps(c *gin.Context) {
	findSubRecords(h, c, siteScopedParams, recordService.FindFollowUps)
}

// CreateOutcomeRecorded godoc
// @Summary Record outcome
// @Tags Records
// @Accept json
// @Produce json
// @Param payload body models.OutcomeRecordedFields true "Outcome payload"
// @Success 200 {object} models.OutcomeRecorded
// @Router /users/{user_id}/sites/{site_id}/regions/{region_id}/records/{record_id}/outcome_recorded [post]
func (h *RecordHandler) CreateOutcomeRecorded(c *gin.Context) {
	createSubRecord(h, c, siteScopedParams, recordService.CreateOutcomeRecorded)
}

// FindOutcomeRecorded godoc
// @Summary List recorded outcomes of record
// @Tags Records
// @Produce json
// @Success 200 {array} models.OutcomeRecorded
// @Router /users/{user_id}/sites/{site_id}/regions/{region_id}/records/{record_id}/outcome_recorded [get]
func (h *RecordHandler) FindOutcomeRecorded(c *gin.Context) {
	findSubRecords(h, c, siteScopedParams, recordService.FindOutcomeRecorded)
}

// CreateTBTreatmentOutcome godoc
// @Summary Record TB treatment outcome
// @Tags Records
// @Accept json
// @Produce json
// @Param payload body models.TBTreatmentOutcomeFields true "Treatment outcome payload"
// @Success 200 {object} models.TBTreatmentOutcome
// @Router /users/{user_id}/sites/{site_id}/regions/{region_id}/records/{record_id}/tb_treatment_outcomes [post]
func (h *RecordHandler) CreateTBTreatmentOutcome(c *gin.Context) {
	createSubRecord(h, c, siteScopedParams, recordService.CreateTBTreatmentOutcome)
}

// FindTBTreatmentOutcomes godoc
// @Summary List TB treatment outcomes of record
// @Tags Records
// @Produce json
// @Success 200 {array} models.TBTreatmentOutcome
// @Router /users/{user_id}/sites/{site_id}/regions/{region_id}/records/{record_id}/tb_treatment_outcomes [get]
func (h *RecordHandler) FindTBTreatmentOutcomes(c *gin.Context) {
	findSubRecords(h, c, siteScopedParams, recordService.FindTBTreatmentOutcomes)
}

func createSubRecord[F, T any](h *RecordHandler, c *gin.Context, params []string, create func(recordService, context.Context, int64, int64, F) (T, error)) {
	ids, err := paramInts(c, params...)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	var fields F
	if err := bindPayload(c, &fields); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	item, err := create(h.service, c.Request.Context(), ids[0], ids[len(ids)-1], fields)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, item)
}

func findSubRecords[T any](h *RecordHandler, c *gin.Context, params []string, find func(recordService, context.Context, int64, int64) ([]T, error)) {
	ids, err := paramInts(c, params...)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	items, err := find(h.service, c.Request.Context(), ids[0], ids[len(ids)-1])
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, items)
}
