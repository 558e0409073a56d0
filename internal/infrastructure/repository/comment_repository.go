package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/domain"
	"github.com/taskflow/backend/internal/infrastructure/models/dto"
)

const (
	insertCommentQuery = `
INSERT INTO comments (id, task_id, author_id, body)
VALUES ($1, $2, $3, $4)
RETURNING id, task_id, author_id, body, created_at;`

	listCommentsQuery = `
SELECT id, task_id, author_id, body, created_at
FROM comments
WHERE task_id = $1
ORDER BY created_at ASC;`

	deleteCommentQuery = `
DELETE FROM comments
WHERE id = $1;`
)

type CommentRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewCommentRepository(db *pgxpool.Pool, log *zap.Logger) *CommentRepository {
	return &CommentRepository{
		db:  db,
		log: log,
	}
}

func (r *CommentRepository) Add(ctx context.Context, d *dto.AddCommentDTO) (*domain.Comment, error) {
	r.log.Info("add comment",
		zap.String("comment_id", d.Id.String()),
		zap.String("task_id", d.TaskId.String()),
		zap.String("author_id", d.AuthorId.String()),
	)

	comment := &domain.Comment{}
	err := r.db.QueryRow(ctx, insertCommentQuery, d.Id, d.TaskId, d.AuthorId, d.Body).Scan(
		&comment.Id,
		&comment.TaskId,
		&comment.AuthorId,
		&comment.Body,
		&comment.CreatedAt,
	)
	if err != nil {
		r.log.Error("failed to insert comment",
			zap.String("task_id", d.TaskId.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}

	return comment, nil
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskId uuid.UUID) ([]*domain.Comment, error) {
	r.log.Debug("list comments", zap.String("task_id", taskId.String()))

	rows, err := r.db.Query(ctx, listCommentsQuery, taskId)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		comment := &domain.Comment{}
		err := rows.Scan(
			&comment.Id,
			&comment.TaskId,
			&comment.AuthorId,
			&comment.Body,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, handleDBError(err)
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentId uuid.UUID) error {
	r.log.Info("delete comment", zap.String("comment_id", commentId.String()))

	cmdTag, err := r.db.Exec(ctx, deleteCommentQuery, commentId)
	if err != nil {
		return handleDBError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
