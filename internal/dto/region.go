package dto

// NameRequest is the body of POST /regions and POST /regions/:region_id/sites.
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}
