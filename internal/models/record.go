package models

import "time"

// RecordFields is the client-supplied part of a patient record. Every key is required to be present.
type RecordFields struct {
	Name                                 *string `db:"records_name" json:"records_name" validate:"required"`
	Age                                  *int    `db:"records_age" json:"records_age" validate:"required"`
	Sex                                  *string `db:"records_sex" json:"records_sex" validate:"required"`
	DateOfTestRequest                    *string `db:"records_date_of_test_request" json:"records_date_of_test_request" validate:"required"`
	Address                              *string `db:"records_address" json:"records_address" validate:"required"`
	Telephone                            *string `db:"records_telephone" json:"records_telephone" validate:"required"`
	Telephone2                           *string `db:"records_telephone_2" json:"records_telephone_2" validate:"required"`
	HasArtUniqueCode                     *string `db:"records_has_art_unique_code" json:"records_has_art_unique_code" validate:"required"`
	ArtUniqueCode                        *string `db:"records_art_unique_code" json:"records_art_unique_code" validate:"required"`
	Status                               *string `db:"records_status" json:"records_status" validate:"required"`
	WardBedNumber                        *string `db:"records_ward_bed_number" json:"records_ward_bed_number" validate:"required"`
	CurrentlyPregnant                    *string `db:"records_currently_pregnant" json:"records_currently_pregnant" validate:"required"`
	SymptomsCurrentCough                 *string `db:"records_symptoms_current_cough" json:"records_symptoms_current_cough" validate:"required"`
	SymptomsFever                        *bool   `db:"records_symptoms_fever" json:"records_symptoms_fever" validate:"required"`
	SymptomsNightSweats                  *bool   `db:"records_symptoms_night_sweats" json:"records_symptoms_night_sweats" validate:"required"`
	SymptomsWeightLoss                   *bool   `db:"records_symptoms_weight_loss" json:"records_symptoms_weight_loss" validate:"required"`
	SymptomsNoneOfTheAbove               *bool   `db:"records_symptoms_none_of_the_above" json:"records_symptoms_none_of_the_above" validate:"required"`
	PatientCategoryHospitalized          *bool   `db:"records_patient_category_hospitalized" json:"records_patient_category_hospitalized" validate:"required"`
	PatientCategoryChild                 *bool   `db:"records_patient_category_child" json:"records_patient_category_child" validate:"required"`
	PatientCategoryToInitiateArt         *bool   `db:"records_patient_category_to_initiate_art" json:"records_patient_category_to_initiate_art" validate:"required"`
	PatientCategoryOnArtSymptomatic      *bool   `db:"records_patient_category_on_art_symptomatic" json:"records_patient_category_on_art_symptomatic" validate:"required"`
	PatientCategoryOutpatient            *bool   `db:"records_patient_category_outpatient" json:"records_patient_category_outpatient" validate:"required"`
	PatientCategoryAnc                   *bool   `db:"records_patient_category_anc" json:"records_patient_category_anc" validate:"required"`
	PatientCategoryDiabetesClinic        *bool   `db:"records_patient_category_diabetes_clinic" json:"records_patient_category_diabetes_clinic" validate:"required"`
	PatientCategoryOther                 *string `db:"records_patient_category_other" json:"records_patient_category_other" validate:"required"`
	ReasonForTestPresumptiveTB           *bool   `db:"records_reason_for_test_presumptive_tb" json:"records_reason_for_test_presumptive_tb" validate:"required"`
	TBTreatmentHistory                   *string `db:"records_tb_treatment_history" json:"records_tb_treatment_history" validate:"required"`
	TBTreatmentHistoryContactOfTBPatient *string `db:"records_tb_treatment_history_contact_of_tb_patient" json:"records_tb_treatment_history_contact_of_tb_patient" validate:"required"`
}

// Record is a patient encounter scoped to the creating user's site and region.
type Record struct {
	ID        int64     `db:"id" json:"id"`
	SiteID    int64     `db:"site_id" json:"site_id"`
	RegionID  int64     `db:"region_id" json:"region_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	RecordFields
}

// SubRecord carries the server-assigned columns shared by every clinical sub-record.
type SubRecord struct {
	ID        int64     `db:"id" json:"id"`
	RecordsID int64     `db:"records_id" json:"records_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SpecimenCollectionFields covers the two specimen collections taken per patient.
type SpecimenCollectionFields struct {
	Collection1Date     *string `db:"specimen_collection_1_date" json:"specimen_collection_1_date" validate:"required"`
	Collection1Type     *string `db:"specimen_collection_1_specimen_collection_type" json:"specimen_collection_1_specimen_collection_type" validate:"required"`
	Collection1Other    *string `db:"specimen_collection_1_other" json:"specimen_collection_1_other" validate:"required"`
	Collection1Period   *string `db:"specimen_collection_1_period" json:"specimen_collection_1_period" validate:"required"`
	Collection1Aspect   *string `db:"specimen_collection_1_aspect" json:"specimen_collection_1_aspect" validate:"required"`
	Collection1Received *string `db:"specimen_collection_1_received_by" json:"specimen_collection_1_received_by" validate:"required"`
	Collection2Date     *string `db:"specimen_collection_2_date" json:"specimen_collection_2_date" validate:"required"`
	Collection2Type     *string `db:"specimen_collection_2_specimen_collection_type" json:"specimen_collection_2_specimen_collection_type" validate:"required"`
	Collection2Other    *string `db:"specimen_collection_2_other" json:"specimen_collection_2_other" validate:"required"`
	Collection2Period   *string `db:"specimen_collection_2_period" json:"specimen_collection_2_period" validate:"required"`
	Collection2Aspect   *string `db:"specimen_collection_2_aspect" json:"specimen_collection_2_aspect" validate:"required"`
	Collection2Received *string `db:"specimen_collection_2_received_by" json:"specimen_collection_2_received_by" validate:"required"`
}

type SpecimenCollection struct {
	SubRecord
	SpecimenCollectionFields
}

// LabFields holds smear microscopy, Xpert MTB/RIF and urine LF-LAM results.
type LabFields struct {
	DateSpecimenCollectionReceived *string `db:"lab_date_specimen_collection_received" json:"lab_date_specimen_collection_received" validate:"required"`
	ReceivedBy                     *string `db:"lab_received_by" json:"lab_received_by" validate:"required"`
	RegistrationNumber             *string `db:"lab_registration_number" json:"lab_registration_number" validate:"required"`
	SmearMicroscopyResult1         *string `db:"lab_smear_microscopy_result_result_1" json:"lab_smear_microscopy_result_result_1" validate:"required"`
	SmearMicroscopyResult2         *string `db:"lab_smear_microscopy_result_result_2" json:"lab_smear_microscopy_result_result_2" validate:"required"`
	SmearMicroscopyDate            *string `db:"lab_smear_microscopy_result_date" json:"lab_smear_microscopy_result_date" validate:"required"`
	SmearMicroscopyDoneBy          *string `db:"lab_smear_microscopy_result_done_by" json:"lab_smear_microscopy_result_done_by" validate:"required"`
	XpertResult                    *string `db:"lab_xpert_mtb_rif_assay_result" json:"lab_xpert_mtb_rif_assay_result" validate:"required"`
	XpertGrades                    *string `db:"lab_xpert_mtb_rif_assay_grades" json:"lab_xpert_mtb_rif_assay_grades" validate:"required"`
	XpertRifResult                 *string `db:"lab_xpert_mtb_rif_assay_rif_result" json:"lab_xpert_mtb_rif_assay_rif_result" validate:"required"`
	XpertDate                      *string `db:"lab_xpert_mtb_rif_assay_date" json:"lab_xpert_mtb_rif_assay_date" validate:"required"`
	XpertDoneBy                    *string `db:"lab_xpert_mtb_rif_assay_done_by" json:"lab_xpert_mtb_rif_assay_done_by" validate:"required"`
	UrineLFLAMResult               *string `db:"lab_urine_lf_lam_result" json:"lab_urine_lf_lam_result" validate:"required"`
	UrineLFLAMDate                 *string `db:"lab_urine_lf_lam_date" json:"lab_urine_lf_lam_date" validate:"required"`
	UrineLFLAMDoneBy               *string `db:"lab_urine_lf_lam_done_by" json:"lab_urine_lf_lam_done_by" validate:"required"`
}

type Lab struct {
	SubRecord
	LabFields
}

type FollowUpFields struct {
	Xray            *string `db:"follow_up_xray" json:"follow_up_xray" validate:"required"`
	Amoxicillin     *string `db:"follow_up_amoxicillin" json:"follow_up_amoxicillin" validate:"required"`
	OtherAntibiotic *string `db:"follow_up_other_antibiotic" json:"follow_up_other_antibiotic" validate:"required"`
	ScheduleDate    *string `db:"follow_up_schedule_date" json:"follow_up_schedule_date" validate:"required"`
	Comments        *string `db:"follow_up_comments" json:"follow_up_comments" validate:"required"`
}

type FollowUp struct {
	SubRecord
	FollowUpFields
}

type OutcomeRecordedFields struct {
	StartedTBTreatmentOutcome *string `db:"outcome_recorded_started_tb_treatment_outcome" json:"outcome_recorded_started_tb_treatment_outcome" validate:"required"`
	TBRxNumber                *string `db:"outcome_recorded_tb_rx_number" json:"outcome_recorded_tb_rx_number" validate:"required"`
	Other                     *string `db:"outcome_recorded_other" json:"outcome_recorded_other" validate:"required"`
	Comments                  *string `db:"outcome_recorded_comments" json:"outcome_recorded_comments" validate:"required"`
}

type OutcomeRecorded struct {
	SubRecord
	OutcomeRecordedFields
}

type TBTreatmentOutcomeFields struct {
	Result           *string `db:"tb_treatment_outcome_result" json:"tb_treatment_outcome_result" validate:"required"`
	Comments         *string `db:"tb_treatment_outcome_comments" json:"tb_treatment_outcome_comments" validate:"required"`
	ClosePatientFile *bool   `db:"tb_treatment_outcome_close_patient_file" json:"tb_treatment_outcome_close_patient_file" validate:"required"`
}

type TBTreatmentOutcome struct {
	SubRecord
	TBTreatmentOutcomeFields
}
