package models

import (
	"strings"
	"time"
)

// UserState tracks the lifecycle of a clinician account.
type UserState string

const (
	// UserStateUnverified is written by the initial insert and never observed by callers.
	UserStateUnverified UserState = "unverified"
	// UserStateVerified is the state every successful signup ends in.
	UserStateVerified UserState = "verified"
)

// User is a registered clinician belonging to a region and site.
type User struct {
	ID              int64     `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"`
	PasswordHash    string    `db:"password_hash" json:"-"`
	Name            string    `db:"name" json:"name"`
	PhoneNumber     string    `db:"phone_number" json:"phone_number"`
	Occupation      string    `db:"occupation" json:"occupation"`
	RegionID        int64     `db:"region_id" json:"region_id"`
	SiteID          int64     `db:"site_id" json:"site_id"`
	State           UserState `db:"state" json:"state"`
	TypeOfUser      *string   `db:"type_of_user" json:"type_of_user"`
	ExportableRange *int      `db:"exportable_range" json:"exportable_range"`
	TypeOfExport    *string   `db:"type_of_export" json:"type_of_export"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// ExportFormats splits TypeOfExport on commas without trimming, so " pdf" never matches "pdf".
func (u *User) ExportFormats() []string {
	if u == nil || u.TypeOfExport == nil || *u.TypeOfExport == "" {
		return nil
	}
	return strings.Split(*u.TypeOfExport, ",")
}

// LoginResult carries the authenticated user and an optional session token.
type LoginResult struct {
	User         *User
	SessionToken string
	ExpiresAt    time.Time
}
