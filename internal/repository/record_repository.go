package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tbcare/screening-api/internal/models"
)

// table describes an insert-only clinical table. Columns exclude id, which the database assigns.
type table struct {
	name    string
	columns []string
}

func (t table) insertQuery() string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (:%s) RETURNING %s",
		t.name, strings.Join(t.columns, ", "), strings.Join(t.columns, ", :"), t.selectList())
}

func (t table) selectList() string {
	return "id, " + strings.Join(t.columns, ", ")
}

var subRecordColumns = []string{"records_id", "user_id", "created_at"}

var recordsTable = table{name: "records", columns: []string{
	"site_id", "region_id", "user_id", "created_at",
	"records_name", "records_age", "records_sex", "records_date_of_test_request", "records_address",
	"records_telephone", "records_telephone_2", "records_has_art_unique_code", "records_art_unique_code",
	"records_status", "records_ward_bed_number", "records_currently_pregnant", "records_symptoms_current_cough",
	"records_symptoms_fever", "records_symptoms_night_sweats", "records_symptoms_weight_loss",
	"records_symptoms_none_of_the_above", "records_patient_category_hospitalized", "records_patient_category_child",
	"records_patient_category_to_initiate_art", "records_patient_category_on_art_symptomatic",
	"records_patient_category_outpatient", "records_patient_category_anc", "records_patient_category_diabetes_clinic",
	"records_patient_category_other", "records_reason_for_test_presumptive_tb", "records_tb_treatment_history",
	"records_tb_treatment_history_contact_of_tb_patient",
}}

var specimenCollectionsTable = table{name: "specimen_collections", columns: append(append([]string{}, subRecordColumns...),
	"specimen_collection_1_date", "specimen_collection_1_specimen_collection_type", "specimen_collection_1_other",
	"specimen_collection_1_period", "specimen_collection_1_aspect", "specimen_collection_1_received_by",
	"specimen_collection_2_date", "specimen_collection_2_specimen_collection_type", "specimen_collection_2_other",
	"specimen_collection_2_period", "specimen_collection_2_aspect", "specimen_collection_2_received_by",
)}

var labsTable = table{name: "labs", columns: append(append([]string{}, subRecordColumns...),
	"lab_date_specimen_collection_received", "lab_received_by", "lab_registration_number",
	"lab_smear_microscopy_result_result_1", "lab_smear_microscopy_result_result_2",
	"lab_smear_microscopy_result_date", "lab_smear_microscopy_result_done_by",
	"lab_xpert_mtb_rif_assay_result", "lab_xpert_mtb_rif_assay_grades", "lab_xpert_mtb_rif_assay_rif_result",
	"lab_xpert_mtb_rif_assay_date", "lab_xpert_mtb_rif_assay_done_by",
	"lab_urine_lf_lam_result", "lab_urine_lf_lam_date", "lab_urine_lf_lam_done_by",
)}

var followUpsTable = table{name: "follow_ups", columns: append(append([]string{}, subRecordColumns...),
	"follow_up_xray", "follow_up_amoxicillin", "follow_up_other_antibiotic", "follow_up_schedule_date", "follow_up_comments",
)}

var outcomeRecordedTable = table{name: "outcome_recorded", columns: append(append([]string{}, subRecordColumns...),
	"outcome_recorded_started_tb_treatment_outcome", "outcome_recorded_tb_rx_number",
	"outcome_recorded_other", "outcome_recorded_comments",
)}

var tbTreatmentOutcomesTable = table{name: "tb_treatment_outcomes", columns: append(append([]string{}, subRecordColumns...),
	"tb_treatment_outcome_result", "tb_treatment_outcome_comments", "tb_treatment_outcome_close_patient_file",
)}

// RecordColumns lists the record columns in export order.
func RecordColumns() []string {
	return append([]string{"id"}, recordsTable.columns...)
}

// RecordRepository persists patient records and their clinical sub-records.
type RecordRepository struct {
	db *sqlx.DB
}

// NewRecordRepository constructs the repository.
func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func insertOne[T any](ctx context.Context, db *sqlx.DB, t table, entity *T) (*T, error) {
	query, args, err := sqlx.Named(t.insertQuery(), entity)
	if err != nil {
		return nil, fmt.Errorf("bind %s insert: %w", t.name, err)
	}
	var stored T
	if err := db.GetContext(ctx, &stored, db.Rebind(query), args...); err != nil {
		return nil, wrapPQ("insert "+t.name, err)
	}
	return &stored, nil
}

func selectMany[T any](ctx context.Context, db *sqlx.DB, t table, where string, args ...interface{}) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY id", t.selectList(), t.name, where)
	items := make([]T, 0)
	if err := db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("find %s: %w", t.name, err)
	}
	return items, nil
}

func stamp(sub *models.SubRecord) {
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
}

// CreateRecord inserts a patient record.
func (r *RecordRepository) CreateRecord(ctx context.Context, record *models.Record) (*models.Record, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	return insertOne(ctx, r.db, recordsTable, record)
}

// FindRecords returns records captured at a site.
func (r *RecordRepository) FindRecords(ctx context.Context, siteID, regionID int64) ([]models.Record, error) {
	return selectMany[models.Record](ctx, r.db, recordsTable, "site_id = $1 AND region_id = $2", siteID, regionID)
}

// FindInWindow returns the records of a site created inside [start, end].
func (r *RecordRepository) FindInWindow(ctx context.Context, regionID, siteID int64, start, end time.Time) ([]models.Record, error) {
	return selectMany[models.Record](ctx, r.db, recordsTable,
		"region_id = $1 AND site_id = $2 AND created_at BETWEEN $3 AND $4", regionID, siteID, start, end)
}

func (r *RecordRepository) CreateSpecimenCollection(ctx context.Context, item *models.SpecimenCollection) (*models.SpecimenCollection, error) {
	stamp(&item.SubRecord)
	return insertOne(ctx, r.db, specimenCollectionsTable, item)
}

// FindSpecimenCollections returns the specimen collections of a record.
func (r *RecordRepository) FindSpecimenCollections(ctx context.Context, recordID int64) ([]models.SpecimenCollection, error) {
	return selectMany[models.SpecimenCollection](ctx, r.db, specimenCollectionsTable, "records_id = $1", recordID)
}

func (r *RecordRepository) CreateLab(ctx context.Context, item *models.Lab) (*models.Lab, error) {
	stamp(&item.SubRecord)
	return insertOne(ctx, r.db, labsTable, item)
}

func (r *RecordRepository) FindLabs(ctx context.Context, userID, recordID int64) ([]models.Lab, error) {
	return selectMany[models.Lab](ctx, r.db, labsTable, "user_id = $1 AND records_id = $2", userID, recordID)
}

func (r *RecordRepository) CreateFollowUp(ctx context.Context, item *models.FollowUp) (*models.FollowUp, error) {
	stamp(&item.SubRecord)
	return insertOne(ctx, r.db, followUpsTable, item)
}

func (r *RecordRepository) FindFollowUps(ctx context.Context, userID, recordID int64) ([]models.FollowUp, error) {
	return selectMany[models.FollowUp](ctx, r.db, followUpsTable, "user_id = $1 AND records_id = $2", userID, recordID)
}

func (r *RecordRepository) CreateOutcomeRecorded(ctx context.Context, item *models.OutcomeRecorded) (*models.OutcomeRecorded, error) {
	stamp(&item.SubRecord)
	return insertOne(ctx, r.db, outcomeRecordedTable, item)
}

func (r *RecordRepository) FindOutcomeRecorded(ctx context.Context, userID, recordID int64) ([]models.OutcomeRecorded, error) {
	return selectMany[models.OutcomeRecorded](ctx, r.db, outcomeRecordedTable, "user_id = $1 AND records_id = $2", userID, recordID)
}

func (r *RecordRepository) CreateTBTreatmentOutcome(ctx context.Context, item *models.TBTreatmentOutcome) (*models.TBTreatmentOutcome, error) {
	stamp(&item.SubRecord)
	return insertOne(ctx, r.db, tbTreatmentOutcomesTable, item)
}

func (r *RecordRepository) FindTBTreatmentOutcomes(ctx context.Context, userID, recordID int64) ([]models.TBTreatmentOutcome, error) {
	return selectMany[models.TBTreatmentOutcome](ctx, r.db, tbTreatmentOutcomesTable, "user_id = $1 AND records_id = $2", userID, recordID)
}
