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
	insertAttachmentQuery = `
INSERT INTO attachments (id, task_id, uploader_id, file_name, content_type, size_bytes)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, task_id, uploader_id, file_name, content_type, size_bytes, created_at;`

	listAttachmentsQuery = `
SELECT id, task_id, uploader_id, file_name, content_type, size_bytes, created_at
FROM attachments
WHERE task_id = $1
ORDER BY created_at ASC;`

	deleteAttachmentQuery = `
DELETE FROM attachments
WHERE id = $1;`
)

type AttachmentRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewAttachmentRepository(db *pgxpool.Pool, log *zap.Logger) *AttachmentRepository {
	return &AttachmentRepository{
		db:  db,
		log: log,
	}
}

func (r *AttachmentRepository) Add(ctx context.Context, d *dto.AddAttachmentDTO) (*domain.Attachment, error) {
	r.log.Info("add attachment",
		zap.String("attachment_id", d.Id.String()),
		zap.String("task_id", d.TaskId.String()),
		zap.String("file_name", d.FileName),
	)

	attachment := &domain.Attachment{}
	err := r.db.QueryRow(ctx, insertAttachmentQuery,
		d.Id, d.TaskId, d.UploaderId, d.FileName, d.ContentType, d.SizeBytes,
	).Scan(
		&attachment.Id,
		&attachment.TaskId,
		&attachment.UploaderId,
		&attachment.FileName,
		&attachment.ContentType,
		&attachment.SizeBytes,
		&attachment.CreatedAt,
	)
	if err != nil {
		r.log.Error("failed to insert attachment",
			zap.String("task_id", d.TaskId.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}

	return attachment, nil
}

func (r *AttachmentRepository) ListByTask(ctx context.Context, taskId uuid.UUID) ([]*domain.Attachment, error) {
	r.log.Debug("list attachments", zap.String("task_id", taskId.String()))

	rows, err := r.db.Query(ctx, listAttachmentsQuery, taskId)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var attachments []*domain.Attachment
	for rows.Next() {
		attachment := &domain.Attachment{}
		err := rows.Scan(
			&attachment.Id,
			&attachment.TaskId,
			&attachment.UploaderId,
			&attachment.FileName,
			&attachment.ContentType,
			&attachment.SizeBytes,
			&attachment.CreatedAt,
		)
		if err != nil {
			return nil, handleDBError(err)
		}
		attachments = append(attachments, attachment)
	}

	return attachments, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, attachmentId uuid.UUID) error {
	r.log.Info("delete attachment", zap.String("attachment_id", attachmentId.String()))

	cmdTag, err := r.db.Exec(ctx, deleteAttachmentQuery, attachmentId)
	if err != nil {
		return handleDBError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
