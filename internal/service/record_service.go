package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tbcare/screening-api/internal/models"
)

type recordUserFinder interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

type recordRepository interface {
	CreateRecord(ctx context.Context, record *models.Record) (*models.Record, error)
	FindRecords(ctx context.Context, siteID, regionID int64) ([]models.Record, error)
	CreateSpecimenCollection(ctx context.Context, item *models.SpecimenCollection) (*models.SpecimenCollection, error)
	FindSpecimenCollections(ctx context.Context, recordID int64) ([]models.SpecimenCollection, error)
	CreateLab(ctx context.Context, item *models.Lab) (*models.Lab, error)
	FindLabs(ctx context.Context, userID, recordID int64) ([]models.Lab, error)
	CreateFollowUp(ctx context.Context, item *models.FollowUp) (*models.FollowUp, error)
	FindFollowUps(ctx context.Context, userID, recordID int64) ([]models.FollowUp, error)
	CreateOutcomeRecorded(ctx context.Context, item *models.OutcomeRecorded) (*models.OutcomeRecorded, error)
	FindOutcomeRecorded(ctx context.Context, userID, recordID int64) ([]models.OutcomeRecorded, error)
	CreateTBTreatmentOutcome(ctx context.Context, item *models.TBTreatmentOutcome) (*models.TBTreatmentOutcome, error)
	FindTBTreatmentOutcomes(ctx context.Context, userID, recordID int64) ([]models.TBTreatmentOutcome, error)
}

// RecordService stores patient records and the clinical sub-records attached to them.
// Payloads are passed through to storage once every documented key is present.
type RecordService struct {
	users     recordUserFinder
	repo      recordRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRecordService constructs the service.
func NewRecordService(users recordUserFinder, repo recordRepository, validate *validator.Validate, logger *zap.Logger) *RecordService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordService{users: users, repo: repo, validator: validate, logger: logger}
}

func (s *RecordService) user(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, "user", "find user")
	}
	return user, nil
}

// CreateRecord stores a record under the site and region of the submitting user.
func (s *RecordService) CreateRecord(ctx context.Context, userID int64, fields models.RecordFields) (*models.Record, error) {
	if err := validatePayload(s.validator, fields); err != nil {
		return nil, err
	}
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	record, err := s.repo.CreateRecord(ctx, &models.Record{
		SiteID:       user.SiteID,
		RegionID:     user.RegionID,
		UserID:       user.ID,
		RecordFields: fields,
	})
	if err != nil {
		return nil, classify(err, "record", "create record")
	}
	s.logger.Info("record created", zap.Int64("record_id", record.ID), zap.Int64("site_id", record.SiteID))
	return record, nil
}

// FindRecords lists the records of the user's site.
func (s *RecordService) FindRecords(ctx context.Context, userID int64) ([]models.Record, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.FindRecords(ctx, user.SiteID, user.RegionID)
	if err != nil {
		return nil, classify(err, "record", "find records")
	}
	return records, nil
}

func (s *RecordService) CreateSpecimenCollection(ctx context.Context, userID, recordID int64, fields models.SpecimenCollectionFields) (*models.SpecimenCollection, error) {
	if err := validatePayload(s.validator, fields); err != nil {
		return nil, err
	}
	if _, err := s.user(ctx, userID); err != nil {
		return nil, err
	}
	item, err := s.repo.CreateSpecimenCollection(ctx, &models.SpecimenCollection{
		SubRecord:                models.SubRecord{RecordsID: recordID, UserID: userID},
		SpecimenCollectionFields: fields,
	})
	if err != nil {
		return nil, classify(err, "specimen collection", "create specimen collection")
	}
	return item, nil
}

func (s *RecordService) FindSpecimenCollections(ctx context.Context, userID, recordID int64) ([]models.SpecimenCollection, error) {
	if _, err := s.user(ctx, userID); err != nil {
		return nil, err
	}
	items, err := s.repo.FindSpecimenCollections(ctx, recordID)
	if err != nil {
		return nil, classify(err, "specimen collection", "find specimen collections")
	}
	return items, nil
}

func (s *RecordService) CreateLab(ctx context.Context, userID, recordID int64, fields models.LabFields) (*models.Lab, error) {
	if err := validatePayload(s.validator, fields); err != nil {
		return nil, err
	}
	item, err := s.repo.CreateLab(ctx, &models.Lab{
		SubRecord: models.SubRecord{RecordsID: recordID, UserID: userID},
		LabFields: fields,
	})
	if err != nil {
		return nil, classify(err, "lab", "create lab")
	}
	return item, nil
}

func (s *RecordService) FindLabs(ctx context.Context, userID, recordID int64) ([]models.Lab, error) {
	items, err := s.repo.FindLabs(ctx, userID, recordID)
	if err != nil {
		return nil, classify(err, "lab", "find labs")
	}
	return items, nil
}

func (s *RecordService) CreateFollowUp(ctx context.Context, userID, recordID int64, fields models.FollowUpFields) (*models.FollowUp, error) {
	if err := validatePayload(s.validator, fields); err != nil {
		return nil, err
	}
	item, err := s.repo.CreateFollowUp(ctx, &models.FollowUp{
		SubRecord:      models.SubRecord{RecordsID: recordID, UserID: userID},
		FollowUpFields: fields,
	})
	if err != nil {
		return nil, classify(err, "follow up", "create follow up")
	}
	return item, nil
}

func (s *RecordService) FindFollowUps(ctx context.Context, userID, recordID int64) ([]models.FollowUp, error) {
	items, err := s.repo.FindFollowUps(ctx, userID, recordID)
	if err != nil {
		return nil, classify(err, "follow up", "find follow ups")
	}
	return items, nil
}

func (s *RecordService) CreateOutcomeRecorded(ctx context.Context, userID, recordID int64, fields models.OutcomeRecordedFields) (*models.OutcomeRecorded, error) {
	if err := validatePayload(s.validator, fields); err != nil {
		return nil, err
	}
	item, err := s.repo.CreateOutcomeRecorded(ctx, &models.OutcomeRecorded{
		SubRecord:             models.SubRecord{RecordsID: recordID, UserID: userID},
		OutcomeRecordedFields: fields,
	})
	if err != nil {
		return nil, classify(err, "outcome recorded", "create outcome recorded")
	}
	return item, nil
}

func (s *RecordService) FindOutcomeRecorded(ctx context.Context, userID, recordID int64) ([]models.OutcomeRecorded, error) {
	items, err := s.repo.FindOutcomeRecorded(ctx, userID, recordID)
	if err != nil {
		return nil, classify(err, "outcome recorded", "find outcome recorded")
	}
	return items, nil
}

func (s *RecordService) CreateTBTreatmentOutcome(ctx context.Context, userID, recordID int64, fields models.TBTreatmentOutcomeFields) (*models.TBTreatmentOutcome, error) {
	if err := validatePayload(s.validator, fields); err != nil {
		return nil, err
	}
	item, err := s.repo.CreateTBTreatmentOutcome(ctx, &models.TBTreatmentOutcome{
		SubRecord:                models.SubRecord{RecordsID: recordID, UserID: userID},
		TBTreatmentOutcomeFields: fields,
	})
	if err != nil {
		return nil, classify(err, "tb treatment outcome", "create tb treatment outcome")
	}
	return item, nil
}

func (s *RecordService) FindTBTreatmentOutcomes(ctx context.Context, userID, recordID int64) ([]models.TBTreatmentOutcome, error) {
	items, err := s.repo.FindTBTreatmentOutcomes(ctx, userID, recordID)
	if err != nil {
		return nil, classify(err, "tb treatment outcome", "find tb treatment outcomes")
	}
	return items, nil
}
