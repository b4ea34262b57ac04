package repository

import (
	"context"
	"errors"
	"fmt"

	"content_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByToken(ctx context.Context, token string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `u.id, u.public_id::text, u.email, u.password_hash, u.full_name, u.phone_number,
	u.address, u.city, u.state, u.country, u.admin, u.created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.PublicID, &user.Email, &user.PasswordHash, &user.FullName, &user.PhoneNumber,
		&user.Address, &user.City, &user.State, &user.Country, &user.Admin, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (public_id, email, password_hash, full_name, phone_number, address, city, state, country, admin)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, user.PublicID, user.Email, user.PasswordHash, user.FullName, user.PhoneNumber,
		user.Address, user.City, user.State, user.Country, user.Admin).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users u WHERE u.email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found is not an error for this method's contract, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByToken retrieves the user whose active session token equals token
func (r *userRepository) FindByToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, nil
	}
	sql := `SELECT ` + userColumns + ` FROM users u
            JOIN sessions s ON s.user_id = u.id
            WHERE s.token = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by token: %w", err)
	}
	return user, nil
}

// List returns every user ordered by id
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users u ORDER BY u.id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}
