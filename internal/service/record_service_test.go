package service

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbcare/screening-api/internal/dto"
	"github.com/tbcare/screening-api/internal/models"
	"github.com/tbcare/screening-api/internal/repository"
	appErrors "github.com/tbcare/screening-api/pkg/errors"
)

type mockRecordRepo struct {
	records   []models.Record
	outcomes  []models.TBTreatmentOutcome
	labs      []models.Lab
	labErr    error
	creates   int
	lastSite  int64
	lastLabBy int64
}

func (m *mockRecordRepo) CreateRecord(ctx context.Context, record *models.Record) (*models.Record, error) {
	m.creates++
	record.ID = int64(len(m.records) + 1)
	record.CreatedAt = time.Now()
	m.records = append(m.records, *record)
	return record, nil
}

func (m *mockRecordRepo) FindRecords(ctx context.Context, siteID, regionID int64) ([]models.Record, error) {
	m.lastSite = siteID
	out := []models.Record{}
	for _, r := range m.records {
		if r.SiteID == siteID && r.RegionID == regionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRecordRepo) CreateSpecimenCollection(ctx context.Context, item *models.SpecimenCollection) (*models.SpecimenCollection, error) {
	m.creates++
	item.ID = 1
	return item, nil
}

func (m *mockRecordRepo) FindSpecimenCollections(ctx context.Context, recordID int64) ([]models.SpecimenCollection, error) {
	return []models.SpecimenCollection{}, nil
}

func (m *mockRecordRepo) CreateLab(ctx context.Context, item *models.Lab) (*models.Lab, error) {
	m.creates++
	if m.labErr != nil {
		return nil, m.labErr
	}
	m.labs = append(m.labs, *item)
	return item, nil
}

func (m *mockRecordRepo) FindLabs(ctx context.Context, userID, recordID int64) ([]models.Lab, error) {
	m.lastLabBy = userID
	return m.labs, nil
}

func (m *mockRecordRepo) CreateFollowUp(ctx context.Context, item *models.FollowUp) (*models.FollowUp, error) {
	m.creates++
	return item, nil
}

func (m *mockRecordRepo) FindFollowUps(ctx context.Context, userID, recordID int64) ([]models.FollowUp, error) {
	return []models.FollowUp{}, nil
}

func (m *mockRecordRepo) CreateOutcomeRecorded(ctx context.Context, item *models.OutcomeRecorded) (*models.OutcomeRecorded, error) {
	m.creates++
	return item, nil
}

func (m *mockRecordRepo) FindOutcomeRecorded(ctx context.Context, userID, recordID int64) ([]models.OutcomeRecorded, error) {
	return []models.OutcomeRecorded{}, nil
}

func (m *mockRecordRepo) CreateTBTreatmentOutcome(ctx context.Context, item *models.TBTreatmentOutcome) (*models.TBTreatmentOutcome, error) {
	m.creates++
	m.outcomes = append(m.outcomes, *item)
	return item, nil
}

func (m *mockRecordRepo) FindTBTreatmentOutcomes(ctx context.Context, userID, recordID int64) ([]models.TBTreatmentOutcome, error) {
	return m.outcomes, nil
}

func newRecordFixture() (*RecordService, *mockRecordRepo) {
	users := stubExportUsers{7: &models.User{ID: 7, SiteID: 2, RegionID: 1}}
	repo := &mockRecordRepo{}
	return NewRecordService(users, repo, nil, nil), repo
}

func TestRecordServiceCreateRecordUsesUserScope(t *testing.T) {
	svc, repo := newRecordFixture()
	fields := sampleRecord(0).RecordFields
	fields = fillRecordFields(fields)

	record, err := svc.CreateRecord(context.Background(), 7, fields)
	require.NoError(t, err)
	assert.Equal(t, int64(2), record.SiteID)
	assert.Equal(t, int64(1), record.RegionID)
	assert.Equal(t, int64(7), record.UserID)

	list, err := svc.FindRecords(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(2), repo.lastSite)
}

func TestRecordServiceCreateRecordRejectsMissingKey(t *testing.T) {
	svc, repo := newRecordFixture()
	fields := fillRecordFields(models.RecordFields{})
	fields.TBTreatmentHistory = nil

	_, err := svc.CreateRecord(context.Background(), 7, fields)
	require.Error(t, err)
	assert.Equal(t, "missing records_tb_treatment_history", appErrors.FromError(err).Message)
	assert.Zero(t, repo.creates)
}

func TestRecordServiceUnknownUser(t *testing.T) {
	svc, repo := newRecordFixture()

	_, err := svc.CreateRecord(context.Background(), 99, fillRecordFields(models.RecordFields{}))
	assert.ErrorIs(t, err, appErrors.ErrInvalidRequest)
	assert.Zero(t, repo.creates)

	_, err = svc.FindRecords(context.Background(), 99)
	assert.ErrorIs(t, err, appErrors.ErrInvalidRequest)

	_, err = svc.FindSpecimenCollections(context.Background(), 99, 1)
	assert.ErrorIs(t, err, appErrors.ErrInvalidRequest)
}

func TestRecordServiceTBTreatmentOutcome(t *testing.T) {
	svc, _ := newRecordFixture()
	result, comments, closed := "cured", "", false

	item, err := svc.CreateTBTreatmentOutcome(context.Background(), 7, 3, models.TBTreatmentOutcomeFields{
		Result: &result, Comments: &comments, ClosePatientFile: &closed,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), item.RecordsID)
	assert.Equal(t, int64(7), item.UserID)

	_, err = svc.CreateTBTreatmentOutcome(context.Background(), 7, 3, models.TBTreatmentOutcomeFields{Result: &result, Comments: &comments})
	require.Error(t, err)
	assert.Equal(t, "missing tb_treatment_outcome_close_patient_file", appErrors.FromError(err).Message)

	items, err := svc.FindTBTreatmentOutcomes(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRecordServiceLabMissingRecord(t *testing.T) {
	svc, repo := newRecordFixture()
	repo.labErr = fmt.Errorf("insert labs: %w", repository.ErrInvalidReference)

	_, err := svc.CreateLab(context.Background(), 7, 404, fillLabFields())
	assert.ErrorIs(t, err, appErrors.ErrInvalidRequest)
	assert.Equal(t, "lab references a missing entity", appErrors.FromError(err).Message)
}

func TestRecordServiceFindLabsScopedToCaller(t *testing.T) {
	svc, repo := newRecordFixture()
	_, err := svc.FindLabs(context.Background(), 42, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), repo.lastLabBy)
}

func fillRecordFields(f models.RecordFields) models.RecordFields {
	s := func() *string { v := "x"; return &v }
	b := func() *bool { v := false; return &v }
	if f.Name == nil {
		f.Name = s()
	}
	if f.Age == nil {
		age := 30
		f.Age = &age
	}
	f.Sex, f.DateOfTestRequest, f.Address, f.Telephone, f.Telephone2 = s(), s(), s(), s(), s()
	f.HasArtUniqueCode, f.ArtUniqueCode, f.Status, f.WardBedNumber = s(), s(), s(), s()
	f.CurrentlyPregnant, f.SymptomsCurrentCough, f.PatientCategoryOther = s(), s(), s()
	f.TBTreatmentHistory, f.TBTreatmentHistoryContactOfTBPatient = s(), s()
	if f.SymptomsFever == nil {
		f.SymptomsFever = b()
	}
	f.SymptomsNightSweats, f.SymptomsWeightLoss, f.SymptomsNoneOfTheAbove = b(), b(), b()
	f.PatientCategoryHospitalized, f.PatientCategoryChild, f.PatientCategoryToInitiateArt = b(), b(), b()
	f.PatientCategoryOnArtSymptomatic, f.PatientCategoryOutpatient, f.PatientCategoryAnc = b(), b(), b()
	f.PatientCategoryDiabetesClinic, f.ReasonForTestPresumptiveTB = b(), b()
	return f
}

func fillLabFields() models.LabFields {
	var f models.LabFields
	v := reflect.ValueOf(&f).Elem()
	for i := 0; i < v.NumField(); i++ {
		value := "pending"
		v.Field(i).Set(reflect.ValueOf(&value))
	}
	return f
}

type stubRegionRepo struct {
	regions map[int64]bool
}

func (s *stubRegionRepo) CreateRegion(ctx context.Context, name string) (*models.Region, error) {
	id := int64(len(s.regions) + 1)
	s.regions[id] = true
	return &models.Region{ID: id, Name: name}, nil
}

func (s *stubRegionRepo) CreateSite(ctx context.Context, regionID int64, name string) (*models.Site, error) {
	if !s.regions[regionID] {
		return nil, fmt.Errorf("insert site: %w", repository.ErrInvalidReference)
	}
	return &models.Site{ID: 1, RegionID: regionID, Name: name}, nil
}

func TestRegionServiceCreateRegionAndSite(t *testing.T) {
	svc := NewRegionService(&stubRegionRepo{regions: map[int64]bool{}}, nil, nil)

	region, err := svc.CreateRegion(context.Background(), dto.NameRequest{Name: "North"})
	require.NoError(t, err)

	site, err := svc.CreateSite(context.Background(), region.ID, dto.NameRequest{Name: "Clinic A"})
	require.NoError(t, err)
	assert.Equal(t, region.ID, site.RegionID)

	_, err = svc.CreateSite(context.Background(), 99, dto.NameRequest{Name: "Clinic B"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidRequest)

	_, err = svc.CreateRegion(context.Background(), dto.NameRequest{})
	require.Error(t, err)
	assert.Equal(t, "missing name", appErrors.FromError(err).Message)
}
