package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/domain"
	"github.com/taskflow/backend/internal/infrastructure/models/dto"
	"github.com/taskflow/backend/internal/infrastructure/models/result"
)

const (
	projectExistsQuery = `
SELECT EXISTS (
    SELECT 1 FROM projects
    WHERE id = $1
);`

	insertTaskQuery = `
INSERT INTO tasks (id, project_id, title, description, priority, assignee_id, due_date)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, project_id, title, description, status, priority, assignee_id, due_date, created_at, updated_at;`

	selectTaskQuery = `
SELECT id, project_id, title, description, status, priority, assignee_id, due_date, created_at, updated_at
FROM tasks
WHERE id = $1;`

	listTasksBaseQuery = `
SELECT id, project_id, title, description, status, priority, assignee_id, due_date, created_at, updated_at
FROM tasks
WHERE project_id = $1`

	listTasksOrderClause = `
ORDER BY
    CASE priority
        WHEN 'urgent' THEN 0
        WHEN 'high' THEN 1
        WHEN 'medium' THEN 2
        WHEN 'low' THEN 3
    END,
    created_at DESC;`

	updateTaskQuery = `
UPDATE tasks
SET title = COALESCE($1, title),
    description = COALESCE($2, description),
    priority = COALESCE($3, priority),
    due_date = COALESCE($4, due_date),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $5
RETURNING id, project_id, title, description, status, priority, assignee_id, due_date, created_at, updated_at;`

	setStatusQuery = `
UPDATE tasks
SET status = $1,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $2
RETURNING id, project_id, title, description, status, priority, assignee_id, due_date, created_at, updated_at;`

	assignTaskQuery = `
UPDATE tasks
SET assignee_id = $1,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $2
RETURNING id, project_id, title, description, status, priority, assignee_id, due_date, created_at, updated_at;`

	deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1;`

	selectTaskCommentsQuery = `
SELECT id, task_id, author_id, body, created_at
FROM comments
WHERE task_id = $1
ORDER BY created_at ASC;`

	selectTaskAttachmentsQuery = `
SELECT id, task_id, uploader_id, file_name, content_type, size_bytes, created_at
FROM attachments
WHERE task_id = $1
ORDER BY created_at ASC;`
)

type TaskRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewTaskRepository(db *pgxpool.Pool, log *zap.Logger) *TaskRepository {
	return &TaskRepository{
		db:  db,
		log: log,
	}
}

func (r *TaskRepository) Create(ctx context.Context, d *dto.CreateTaskDTO) (*domain.Task, error) {
	r.log.Info("create task",
		zap.String("task_id", d.Id.String()),
		zap.String("project_id", d.ProjectId.String()),
	)

	var exists bool
	if err := r.db.QueryRow(ctx, projectExistsQuery, d.ProjectId).Scan(&exists); err != nil {
		return nil, handleDBError(err)
	}
	if !exists {
		r.log.Warn("project not found while creating task",
			zap.String("project_id", d.ProjectId.String()),
		)
		return nil, ErrNotFound
	}

	task, err := scanTask(r.db.QueryRow(ctx, insertTaskQuery,
		d.Id, d.ProjectId, d.Title, d.Description, d.Priority, d.AssigneeId, d.DueDate,
	))
	if err != nil {
		r.log.Error("failed to insert task",
			zap.String("task_id", d.Id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) Get(ctx context.Context, taskId uuid.UUID) (*result.TaskDetailResult, error) {
	r.log.Debug("get task", zap.String("task_id", taskId.String()))

	task, err := scanTask(r.db.QueryRow(ctx, selectTaskQuery, taskId))
	if err != nil {
		return nil, err
	}

	comments, err := r.readComments(ctx, taskId)
	if err != nil {
		r.log.Error("failed to load task comments",
			zap.String("task_id", taskId.String()),
			zap.Error(err),
		)
		return nil, err
	}

	attachments, err := r.readAttachments(ctx, taskId)
	if err != nil {
		r.log.Error("failed to load task attachments",
			zap.String("task_id", taskId.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return &result.TaskDetailResult{
		Task:        task,
		Comments:    comments,
		Attachments: attachments,
	}, nil
}

func (r *TaskRepository) List(ctx context.Context, d *dto.ListTasksDTO) ([]*domain.Task, error) {
	r.log.Debug("list tasks", zap.String("project_id", d.ProjectId.String()))

	// Board filters are optional and compose into the WHERE clause
	query := listTasksBaseQuery
	args := []any{d.ProjectId}
	if d.Status != nil {
		args = append(args, *d.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if d.Priority != nil {
		args = append(args, *d.Priority)
		query += fmt.Sprintf(" AND priority = $%d", len(args))
	}
	if d.AssigneeId != nil {
		args = append(args, *d.AssigneeId)
		query += fmt.Sprintf(" AND assignee_id = $%d", len(args))
	}
	query += listTasksOrderClause

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	r.log.Debug("tasks loaded",
		zap.String("project_id", d.ProjectId.String()),
		zap.Int("tasks", len(tasks)),
	)
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, d *dto.UpdateTaskDTO) (*domain.Task, error) {
	r.log.Info("update task", zap.String("task_id", d.TaskId.String()))

	task, err := scanTask(r.db.QueryRow(ctx, updateTaskQuery,
		d.Title, d.Description, d.Priority, d.DueDate, d.TaskId,
	))
	if err != nil {
		r.log.Error("failed to update task",
			zap.String("task_id", d.TaskId.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) SetStatus(ctx context.Context, d *dto.SetStatusDTO) (*domain.Task, error) {
	r.log.Info("set task status",
		zap.String("task_id", d.TaskId.String()),
		zap.String("status", string(d.Status)),
	)

	task, err := scanTask(r.db.QueryRow(ctx, setStatusQuery, d.Status, d.TaskId))
	if err != nil {
		r.log.Error("failed to set task status",
			zap.String("task_id", d.TaskId.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) Assign(ctx context.Context, d *dto.AssignTaskDTO) (*domain.Task, error) {
	r.log.Info("assign task", zap.String("task_id", d.TaskId.String()))

	task, err := scanTask(r.db.QueryRow(ctx, assignTaskQuery, d.AssigneeId, d.TaskId))
	if err != nil {
		r.log.Error("failed to assign task",
			zap.String("task_id", d.TaskId.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskId uuid.UUID) error {
	r.log.Info("delete task", zap.String("task_id", taskId.String()))

	cmdTag, err := r.db.Exec(ctx, deleteTaskQuery, taskId)
	if err != nil {
		return handleDBError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *TaskRepository) MemberExists(ctx context.Context, projectId, userId uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, memberExistsQuery, projectId, userId).Scan(&exists)
	if err != nil {
		return false, handleDBError(err)
	}
	return exists, nil
}

func (r *TaskRepository) readComments(ctx context.Context, taskId uuid.UUID) ([]*domain.Comment, error) {
	rows, err := r.db.Query(ctx, selectTaskCommentsQuery, taskId)
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

func (r *TaskRepository) readAttachments(ctx context.Context, taskId uuid.UUID) ([]*domain.Attachment, error) {
	rows, err := r.db.Query(ctx, selectTaskAttachmentsQuery, taskId)
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

func scanTask(row rowScanner) (*domain.Task, error) {
	task := &domain.Task{}
	var (
		description sql.NullString
		assigneeId  *uuid.UUID
		dueDate     sql.NullTime
	)
	err := row.Scan(
		&task.Id,
		&task.ProjectId,
		&task.Title,
		&description,
		&task.Status,
		&task.Priority,
		&assigneeId,
		&dueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, handleDBError(err)
	}
	if description.Valid {
		task.Description = &description.String
	}
	task.AssigneeId = assigneeId
	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}
	return task, nil
}
