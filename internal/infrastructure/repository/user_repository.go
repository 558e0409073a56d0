package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/domain"
	"github.com/taskflow/backend/internal/infrastructure/models/dto"
)

const (
	insertUserQuery = `
INSERT INTO users (id, first_name, last_name, email, avatar_url, role)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, first_name, last_name, email, avatar_url, role, created_at, last_active_at;`

	selectUserQuery = `
SELECT id, first_name, last_name, email, avatar_url, role, created_at, last_active_at
FROM users
WHERE id = $1;`

	setRoleQuery = `
UPDATE users
SET role = $1
WHERE id = $2
RETURNING id, first_name, last_name, email, avatar_url, role, created_at, last_active_at;`

	touchUserQuery = `
UPDATE users
SET last_active_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, first_name, last_name, email, avatar_url, role, created_at, last_active_at;`
)

type UserRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, log *zap.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log,
	}
}

func (r *UserRepository) Create(ctx context.Context, d *dto.CreateUserDTO) (*domain.User, error) {
	r.log.Info("create user",
		zap.String("user_id", d.Id.String()),
		zap.String("email", d.Email),
	)

	user := &domain.User{}
	var avatar sql.NullString
	err := r.db.QueryRow(ctx, insertUserQuery,
		d.Id, d.FirstName, d.LastName, d.Email, d.AvatarURL, d.Role,
	).Scan(
		&user.Id,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&avatar,
		&user.Role,
		&user.CreatedAt,
		&user.LastActiveAt,
	)
	if err != nil {
		r.log.Error("failed to insert user",
			zap.String("email", d.Email),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}
	if avatar.Valid {
		user.AvatarURL = &avatar.String
	}

	return user, nil
}

func (r *UserRepository) GetById(ctx context.Context, userId uuid.UUID) (*domain.User, error) {
	r.log.Debug("get user", zap.String("user_id", userId.String()))

	return r.scanUser(r.db.QueryRow(ctx, selectUserQuery, userId))
}

func (r *UserRepository) SetRole(ctx context.Context, d *dto.SetRoleDTO) (*domain.User, error) {
	r.log.Info("set user role",
		zap.String("user_id", d.UserId.String()),
		zap.String("role", string(d.Role)),
	)

	user, err := r.scanUser(r.db.QueryRow(ctx, setRoleQuery, d.Role, d.UserId))
	if err != nil {
		r.log.Error("failed to set user role",
			zap.String("user_id", d.UserId.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) Touch(ctx context.Context, userId uuid.UUID) (*domain.User, error) {
	r.log.Debug("touch user activity", zap.String("user_id", userId.String()))

	return r.scanUser(r.db.QueryRow(ctx, touchUserQuery, userId))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *UserRepository) scanUser(row rowScanner) (*domain.User, error) {
	user := &domain.User{}
	var avatar sql.NullString
	err := row.Scan(
		&user.Id,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&avatar,
		&user.Role,
		&user.CreatedAt,
		&user.LastActiveAt,
	)
	if err != nil {
		return nil, handleDBError(err)
	}
	if avatar.Valid {
		user.AvatarURL = &avatar.String
	}
	return user, nil
}
