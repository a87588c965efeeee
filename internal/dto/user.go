package dto

// SignupRequest is the body of POST /signup. Every field must be present and non-empty.
type SignupRequest struct {
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Occupation  string `json:"occupation" validate:"required"`
	SiteID      int64  `json:"site_id" validate:"required"`
	RegionID    int64  `json:"region_id" validate:"required"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is the body of PUT /users/:user_id. Every key must be present and non-null.
type UpdateUserRequest struct {
	Occupation      *string `json:"occupation" validate:"required"`
	PhoneNumber     *string `json:"phone_number" validate:"required"`
	RegionID        *int64  `json:"region_id" validate:"required"`
	SiteID          *int64  `json:"site_id" validate:"required"`
	State           *string `json:"state" validate:"required"`
	TypeOfExport    *string `json:"type_of_export" validate:"required"`
	TypeOfUser      *string `json:"type_of_user" validate:"required"`
	ExportableRange *int    `json:"exportable_range" validate:"required"`
}

// AssignRoleRequest is the body of PUT /users/:user_id/sites/:site_id/regions/:region_id.
type AssignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}
