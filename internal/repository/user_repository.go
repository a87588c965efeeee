package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tbcare/screening-api/internal/models"
)

const userColumns = `id, email, password_hash, name, phone_number, occupation, region_id, site_id, state, type_of_user, exportable_range, type_of_export, created_at, updated_at`

// UserRepository provides database access for clinician accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID returns a user by identifier. A missing row is reported as sql.ErrNoRows.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// FindByEmail returns a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// List returns every user ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	users := make([]models.User, 0)
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Signup inserts the user and marks it verified inside one transaction.
// Callers never observe the intermediate unverified row.
func (r *UserRepository) Signup(ctx context.Context, user *models.User) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin signup: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	user.State = models.UserStateUnverified
	user.CreatedAt = now
	user.UpdatedAt = now

	const insert = `INSERT INTO users (email, password_hash, name, phone_number, occupation, region_id, site_id, state, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`
	if err = tx.QueryRowxContext(ctx, insert,
		user.Email, user.PasswordHash, user.Name, user.PhoneNumber, user.Occupation,
		user.RegionID, user.SiteID, user.State, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID); err != nil {
		return wrapPQ("insert user", err)
	}

	if err = changeState(ctx, tx, user.ID, models.UserStateVerified, now); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit signup: %w", err)
	}
	user.State = models.UserStateVerified
	return nil
}

func changeState(ctx context.Context, tx *sqlx.Tx, id int64, state models.UserState, ts time.Time) error {
	const query = `UPDATE users SET state = $2, updated_at = $3 WHERE id = $1`
	res, err := tx.ExecContext(ctx, query, id, state, ts)
	if err != nil {
		return fmt.Errorf("change user state: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Update overwrites the administrative profile fields and returns the stored row.
func (r *UserRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	user.UpdatedAt = time.Now().UTC()
	named := `UPDATE users SET occupation = :occupation, phone_number = :phone_number, region_id = :region_id,
site_id = :site_id, state = :state, type_of_export = :type_of_export, type_of_user = :type_of_user,
exportable_range = :exportable_range, updated_at = :updated_at
WHERE id = :id RETURNING ` + userColumns
	query, args, err := sqlx.Named(named, user)
	if err != nil {
		return nil, fmt.Errorf("bind user update: %w", err)
	}
	var stored models.User
	if err := r.db.GetContext(ctx, &stored, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, wrapPQ("update user", err)
	}
	return &stored, nil
}

// AssignRole sets type_of_user for a user registered at the given site and region.
func (r *UserRepository) AssignRole(ctx context.Context, userID, siteID, regionID int64, role string) error {
	const query = `UPDATE users SET type_of_user = $2, updated_at = $3 WHERE id = $1 AND site_id = $4 AND region_id = $5`
	res, err := r.db.ExecContext(ctx, query, userID, role, time.Now().UTC(), siteID, regionID)
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("assign role rows: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
