package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "TB Screening API",
        "description": "Clinical data capture and export for TB screening sites.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http",
        "https"
    ],
    "consumes": [
        "application/json"
    ],
    "produces": [
        "application/json"
    ],
    "tags": [
        {
            "name": "Users",
            "description": "Clinician accounts"
        },
        {
            "name": "Regions",
            "description": "Region and site hierarchy"
        },
        {
            "name": "Records",
            "description": "Patient records and clinical sub-records"
        },
        {
            "name": "Exports",
            "description": "Record exports"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Liveness",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "Dependency unavailable"
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/signup": {
            "post": {
                "tags": [
                    "Users"
                ],
                "summary": "Register a clinician",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SignupRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/User"
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    },
                    "409": {
                        "description": "Email already registered"
                    }
                }
            }
        },
        "/login": {
            "post": {
                "tags": [
                    "Users"
                ],
                "summary": "Verify credentials",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/User"
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    },
                    "401": {
                        "description": "Invalid email or password"
                    }
                }
            }
        },
        "/users": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "List users",
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/User"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/users/{user_id}": {
            "put": {
                "tags": [
                    "Users"
                ],
                "summary": "Update user",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/User"
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/users/{user_id}/sites/{site_id}/regions/{region_id}": {
            "put": {
                "tags": [
                    "Users"
                ],
                "summary": "Assign role",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "site_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "region_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RoleRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/regions": {
            "post": {
                "tags": [
                    "Regions"
                ],
                "summary": "Create region",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/NameRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Region"
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/regions/{region_id}/sites": {
            "post": {
                "tags": [
                    "Regions"
                ],
                "summary": "Create site",
                "parameters": [
                    {
                        "name": "region_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/NameRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Site"
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/users/{user_id}/regions/{region_id}/sites/{site_id}/exports/{format}": {
            "get": {
                "tags": [
                    "Exports"
                ],
                "summary": "Export site records",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "region_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "site_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "format",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    },
                    {
                        "name": "start_date",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "end_date",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Download path",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    },
                    "403": {
                        "description": "Export not permitted"
                    }
                },
                "produces": [
                    "text/plain"
                ]
            }
        },
        "/exports/{token}": {
            "get": {
                "tags": [
                    "Exports"
                ],
                "summary": "Download export",
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    },
                    "403": {
                        "description": "Expired or invalid token"
                    }
                },
                "produces": [
                    "text/csv",
                    "application/pdf"
                ]
            }
        },
        "/users/{user_id}/records": {
            "post": {
                "tags": [
                    "Records"
                ],
                "summary": "Create record",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RecordFields"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Record"
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Records"
                ],
                "summary": "List records",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Record"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/users/{user_id}/records/{record_id}/specimen_collections": {
            "post": {
                "tags": [
                    "Records"
                ],
                "summary": "Add specimen collection",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "record_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SpecimenCollectionFields"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/SpecimenCollection"
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Records"
                ],
                "summary": "List specimen collections",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "record_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/SpecimenCollection"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/users/{user_id}/sites/{site_id}/regions/{region_id}/records/{record_id}/labs": {
            "post": {
                "tags": [
                    "Records"
                ],
                "summary": "Add lab results",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "site_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "region_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "record_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LabFields"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Lab"
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Records"
                ],
                "summary": "List lab results",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "site_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "region_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "record_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Lab"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/users/{user_id}/sites/{site_id}/regions/{region_id}/records/{record_id}/follow_ups": {
            "post": {
                "tags": [
                    "Records"
                ],
                "summary": "Add follow ups",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "site_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "region_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "record_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/FollowUpFields"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/FollowUp"
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Records"
                ],
                "summary": "List follow ups",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "site_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "region_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "record_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/FollowUp"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/users/{user_id}/sites/{site_id}/regions/{region_id}/records/{record_id}/outcome_recorded": {
            "post": {
                "tags": [
                    "Records"
                ],
                "summary": "Add recorded outcomes",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "site_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "region_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "record_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/OutcomeRecordedFields"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/OutcomeRecorded"
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Records"
                ],
                "summary": "List recorded outcomes",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "site_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "region_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "record_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/OutcomeRecorded"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/users/{user_id}/sites/{site_id}/regions/{region_id}/records/{record_id}/tb_treatment_outcomes": {
            "post": {
                "tags": [
                    "Records"
                ],
                "summary": "Add TB treatment outcomes",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "site_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "region_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "record_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TBTreatmentOutcomeFields"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/TBTreatmentOutcome"
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Records"
                ],
                "summary": "List TB treatment outcomes",
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "site_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "region_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "record_id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/TBTreatmentOutcome"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        }
    },
    "definitions": {
        "User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone_number": {
                    "type": "string"
                },
                "occupation": {
                    "type": "string"
                },
                "region_id": {
                    "type": "integer"
                },
                "site_id": {
                    "type": "integer"
                },
                "state": {
                    "type": "string"
                },
                "type_of_user": {
                    "type": "string"
                },
                "exportable_range": {
                    "type": "integer"
                },
                "type_of_export": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "Region": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "Site": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "region_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "RecordFields": {
            "type": "object",
            "properties": {
                "records_name": {
                    "type": "string"
                },
                "records_age": {
                    "type": "integer"
                },
                "records_sex": {
                    "type": "string"
                },
                "records_date_of_test_request": {
                    "type": "string"
                },
                "records_address": {
                    "type": "string"
                },
                "records_telephone": {
                    "type": "string"
                },
                "records_telephone_2": {
                    "type": "string"
                },
                "records_has_art_unique_code": {
                    "type": "string"
                },
                "records_art_unique_code": {
                    "type": "string"
                },
                "records_status": {
                    "type": "string"
                },
                "records_ward_bed_number": {
                    "type": "string"
                },
                "records_currently_pregnant": {
                    "type": "string"
                },
                "records_symptoms_current_cough": {
                    "type": "string"
                },
                "records_symptoms_fever": {
                    "type": "boolean"
                },
                "records_symptoms_night_sweats": {
                    "type": "boolean"
                },
                "records_symptoms_weight_loss": {
                    "type": "boolean"
                },
                "records_symptoms_none_of_the_above": {
                    "type": "boolean"
                },
                "records_patient_category_hospitalized": {
                    "type": "boolean"
                },
                "records_patient_category_child": {
                    "type": "boolean"
                },
                "records_patient_category_to_initiate_art": {
                    "type": "boolean"
                },
                "records_patient_category_on_art_symptomatic": {
                    "type": "boolean"
                },
                "records_patient_category_outpatient": {
                    "type": "boolean"
                },
                "records_patient_category_anc": {
                    "type": "boolean"
                },
                "records_patient_category_diabetes_clinic": {
                    "type": "boolean"
                },
                "records_patient_category_other": {
                    "type": "string"
                },
                "records_reason_for_test_presumptive_tb": {
                    "type": "boolean"
                },
                "records_tb_treatment_history": {
                    "type": "string"
                },
                "records_tb_treatment_history_contact_of_tb_patient": {
                    "type": "string"
                }
            },
            "required": [
                "records_name",
                "records_age",
                "records_sex",
                "records_date_of_test_request",
                "records_address",
                "records_telephone",
                "records_telephone_2",
                "records_has_art_unique_code",
                "records_art_unique_code",
                "records_status",
                "records_ward_bed_number",
                "records_currently_pregnant",
                "records_symptoms_current_cough",
                "records_symptoms_fever",
                "records_symptoms_night_sweats",
                "records_symptoms_weight_loss",
                "records_symptoms_none_of_the_above",
                "records_patient_category_hospitalized",
                "records_patient_category_child",
                "records_patient_category_to_initiate_art",
                "records_patient_category_on_art_symptomatic",
                "records_patient_category_outpatient",
                "records_patient_category_anc",
                "records_patient_category_diabetes_clinic",
                "records_patient_category_other",
                "records_reason_for_test_presumptive_tb",
                "records_tb_treatment_history",
                "records_tb_treatment_history_contact_of_tb_patient"
            ]
        },
        "Record": {
            "type": "object",
            "properties": {
                "records_name": {
                    "type": "string"
                },
                "records_age": {
                    "type": "integer"
                },
                "records_sex": {
                    "type": "string"
                },
                "records_date_of_test_request": {
                    "type": "string"
                },
                "records_address": {
                    "type": "string"
                },
                "records_telephone": {
                    "type": "string"
                },
                "records_telephone_2": {
                    "type": "string"
                },
                "records_has_art_unique_code": {
                    "type": "string"
                },
                "records_art_unique_code": {
                    "type": "string"
                },
                "records_status": {
                    "type": "string"
                },
                "records_ward_bed_number": {
                    "type": "string"
                },
                "records_currently_pregnant": {
                    "type": "string"
                },
                "records_symptoms_current_cough": {
                    "type": "string"
                },
                "records_symptoms_fever": {
                    "type": "boolean"
                },
                "records_symptoms_night_sweats": {
                    "type": "boolean"
                },
                "records_symptoms_weight_loss": {
                    "type": "boolean"
                },
                "records_symptoms_none_of_the_above": {
                    "type": "boolean"
                },
                "records_patient_category_hospitalized": {
                    "type": "boolean"
                },
                "records_patient_category_child": {
                    "type": "boolean"
                },
                "records_patient_category_to_initiate_art": {
                    "type": "boolean"
                },
                "records_patient_category_on_art_symptomatic": {
                    "type": "boolean"
                },
                "records_patient_category_outpatient": {
                    "type": "boolean"
                },
                "records_patient_category_anc": {
                    "type": "boolean"
                },
                "records_patient_category_diabetes_clinic": {
                    "type": "boolean"
                },
                "records_patient_category_other": {
                    "type": "string"
                },
                "records_reason_for_test_presumptive_tb": {
                    "type": "boolean"
                },
                "records_tb_treatment_history": {
                    "type": "string"
                },
                "records_tb_treatment_history_contact_of_tb_patient": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "site_id": {
                    "type": "integer"
                },
                "region_id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "SpecimenCollectionFields": {
            "type": "object",
            "properties": {
                "specimen_collection_1_date": {
                    "type": "string"
                },
                "specimen_collection_1_specimen_collection_type": {
                    "type": "string"
                },
                "specimen_collection_1_other": {
                    "type": "string"
                },
                "specimen_collection_1_period": {
                    "type": "string"
                },
                "specimen_collection_1_aspect": {
                    "type": "string"
                },
                "specimen_collection_1_received_by": {
                    "type": "string"
                },
                "specimen_collection_2_date": {
                    "type": "string"
                },
                "specimen_collection_2_specimen_collection_type": {
                    "type": "string"
                },
                "specimen_collection_2_other": {
                    "type": "string"
                },
                "specimen_collection_2_period": {
                    "type": "string"
                },
                "specimen_collection_2_aspect": {
                    "type": "string"
                },
                "specimen_collection_2_received_by": {
                    "type": "string"
                }
            },
            "required": [
                "specimen_collection_1_date",
                "specimen_collection_1_specimen_collection_type",
                "specimen_collection_1_other",
                "specimen_collection_1_period",
                "specimen_collection_1_aspect",
                "specimen_collection_1_received_by",
                "specimen_collection_2_date",
                "specimen_collection_2_specimen_collection_type",
                "specimen_collection_2_other",
                "specimen_collection_2_period",
                "specimen_collection_2_aspect",
                "specimen_collection_2_received_by"
            ]
        },
        "SpecimenCollection": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "records_id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "specimen_collection_1_date": {
                    "type": "string"
                },
                "specimen_collection_1_specimen_collection_type": {
                    "type": "string"
                },
                "specimen_collection_1_other": {
                    "type": "string"
                },
                "specimen_collection_1_period": {
                    "type": "string"
                },
                "specimen_collection_1_aspect": {
                    "type": "string"
                },
                "specimen_collection_1_received_by": {
                    "type": "string"
                },
                "specimen_collection_2_date": {
                    "type": "string"
                },
                "specimen_collection_2_specimen_collection_type": {
                    "type": "string"
                },
                "specimen_collection_2_other": {
                    "type": "string"
                },
                "specimen_collection_2_period": {
                    "type": "string"
                },
                "specimen_collection_2_aspect": {
                    "type": "string"
                },
                "specimen_collection_2_received_by": {
                    "type": "string"
                }
            }
        },
        "LabFields": {
            "type": "object",
            "properties": {
                "lab_date_specimen_collection_received": {
                    "type": "string"
                },
                "lab_received_by": {
                    "type": "string"
                },
                "lab_registration_number": {
                    "type": "string"
                },
                "lab_smear_microscopy_result_result_1": {
                    "type": "string"
                },
                "lab_smear_microscopy_result_result_2": {
                    "type": "string"
                },
                "lab_smear_microscopy_result_date": {
                    "type": "string"
                },
                "lab_smear_microscopy_result_done_by": {
                    "type": "string"
                },
                "lab_xpert_mtb_rif_assay_result": {
                    "type": "string"
                },
                "lab_xpert_mtb_rif_assay_grades": {
                    "type": "string"
                },
                "lab_xpert_mtb_rif_assay_rif_result": {
                    "type": "string"
                },
                "lab_xpert_mtb_rif_assay_date": {
                    "type": "string"
                },
                "lab_xpert_mtb_rif_assay_done_by": {
                    "type": "string"
                },
                "lab_urine_lf_lam_result": {
                    "type": "string"
                },
                "lab_urine_lf_lam_date": {
                    "type": "string"
                },
                "lab_urine_lf_lam_done_by": {
                    "type": "string"
                }
            },
            "required": [
                "lab_date_specimen_collection_received",
                "lab_received_by",
                "lab_registration_number",
                "lab_smear_microscopy_result_result_1",
                "lab_smear_microscopy_result_result_2",
                "lab_smear_microscopy_result_date",
                "lab_smear_microscopy_result_done_by",
                "lab_xpert_mtb_rif_assay_result",
                "lab_xpert_mtb_rif_assay_grades",
                "lab_xpert_mtb_rif_assay_rif_result",
                "lab_xpert_mtb_rif_assay_date",
                "lab_xpert_mtb_rif_assay_done_by",
                "lab_urine_lf_lam_result",
                "lab_urine_lf_lam_date",
                "lab_urine_lf_lam_done_by"
            ]
        },
        "Lab": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "records_id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "lab_date_specimen_collection_received": {
                    "type": "string"
                },
                "lab_received_by": {
                    "type": "string"
                },
                "lab_registration_number": {
                    "type": "string"
                },
                "lab_smear_microscopy_result_result_1": {
                    "type": "string"
                },
                "lab_smear_microscopy_result_result_2": {
                    "type": "string"
                },
                "lab_smear_microscopy_result_date": {
                    "type": "string"
                },
                "lab_smear_microscopy_result_done_by": {
                    "type": "string"
                },
                "lab_xpert_mtb_rif_assay_result": {
                    "type": "string"
                },
                "lab_xpert_mtb_rif_assay_grades": {
                    "type": "string"
                },
                "lab_xpert_mtb_rif_assay_rif_result": {
                    "type": "string"
                },
                "lab_xpert_mtb_rif_assay_date": {
                    "type": "string"
                },
                "lab_xpert_mtb_rif_assay_done_by": {
                    "type": "string"
                },
                "lab_urine_lf_lam_result": {
                    "type": "string"
                },
                "lab_urine_lf_lam_date": {
                    "type": "string"
                },
                "lab_urine_lf_lam_done_by": {
                    "type": "string"
                }
            }
        },
        "FollowUpFields": {
            "type": "object",
            "properties": {
                "follow_up_xray": {
                    "type": "string"
                },
                "follow_up_amoxicillin": {
                    "type": "string"
                },
                "follow_up_other_antibiotic": {
                    "type": "string"
                },
                "follow_up_schedule_date": {
                    "type": "string"
                },
                "follow_up_comments": {
                    "type": "string"
                }
            },
            "required": [
                "follow_up_xray",
                "follow_up_amoxicillin",
                "follow_up_other_antibiotic",
                "follow_up_schedule_date",
                "follow_up_comments"
            ]
        },
        "FollowUp": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "records_id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "follow_up_xray": {
                    "type": "string"
                },
                "follow_up_amoxicillin": {
                    "type": "string"
                },
                "follow_up_other_antibiotic": {
                    "type": "string"
                },
                "follow_up_schedule_date": {
                    "type": "string"
                },
                "follow_up_comments": {
                    "type": "string"
                }
            }
        },
        "OutcomeRecordedFields": {
            "type": "object",
            "properties": {
                "outcome_recorded_started_tb_treatment_outcome": {
                    "type": "string"
                },
                "outcome_recorded_tb_rx_number": {
                    "type": "string"
                },
                "outcome_recorded_other": {
                    "type": "string"
                },
                "outcome_recorded_comments": {
                    "type": "string"
                }
            },
            "required": [
                "outcome_recorded_started_tb_treatment_outcome",
                "outcome_recorded_tb_rx_number",
                "outcome_recorded_other",
                "outcome_recorded_comments"
            ]
        },
        "OutcomeRecorded": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "records_id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "outcome_recorded_started_tb_treatment_outcome": {
                    "type": "string"
                },
                "outcome_recorded_tb_rx_number": {
                    "type": "string"
                },
                "outcome_recorded_other": {
                    "type": "string"
                },
                "outcome_recorded_comments": {
                    "type": "string"
                }
            }
        },
        "TBTreatmentOutcomeFields": {
            "type": "object",
            "properties": {
                "tb_treatment_outcome_result": {
                    "type": "string"
                },
                "tb_treatment_outcome_comments": {
                    "type": "string"
                },
                "tb_treatment_outcome_close_patient_file": {
                    "type": "boolean"
                }
            },
            "required": [
                "tb_treatment_outcome_result",
                "tb_treatment_outcome_comments",
                "tb_treatment_outcome_close_patient_file"
            ]
        },
        "TBTreatmentOutcome": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "records_id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "tb_treatment_outcome_result": {
                    "type": "string"
                },
                "tb_treatment_outcome_comments": {
                    "type": "string"
                },
                "tb_treatment_outcome_close_patient_file": {
                    "type": "boolean"
                }
            }
        },
        "SignupRequest": {
            "type": "object",
            "required": [
                "email",
                "password",
                "phone_number",
                "name",
                "occupation",
                "site_id",
                "region_id"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "phone_number": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "occupation": {
                    "type": "string"
                },
                "site_id": {
                    "type": "integer"
                },
                "region_id": {
                    "type": "integer"
                }
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "UpdateUserRequest": {
            "type": "object",
            "required": [
                "occupation",
                "phone_number",
                "region_id",
                "site_id",
                "state",
                "type_of_export",
                "type_of_user",
                "exportable_range"
            ],
            "properties": {
                "occupation": {
                    "type": "string"
                },
                "phone_number": {
                    "type": "string"
                },
                "region_id": {
                    "type": "integer"
                },
                "site_id": {
                    "type": "integer"
                },
                "state": {
                    "type": "string"
                },
                "type_of_export": {
                    "type": "string"
                },
                "type_of_user": {
                    "type": "string"
                },
                "exportable_range": {
                    "type": "integer"
                }
            }
        },
        "NameRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string"
                }
            }
        },
        "RoleRequest": {
            "type": "object",
            "required": [
                "role"
            ],
            "properties": {
                "role": {
                    "type": "string"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
