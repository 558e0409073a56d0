package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/domain"
	"github.com/taskflow/backend/internal/infrastructure/models/dto"
	"github.com/taskflow/backend/internal/infrastructure/models/result"
)

const (
	insertProjectQuery = `
INSERT INTO projects (id, title, description, color, owner_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, title, description, color, owner_id, created_at, updated_at;`

	insertMemberQuery = `
INSERT INTO project_members (project_id, user_id, role)
VALUES ($1, $2, $3)
RETURNING project_id, user_id, role, joined_at;`

	selectProjectQuery = `
SELECT id, title, description, color, owner_id, created_at, updated_at
FROM projects
WHERE id = $1;`

	selectMembersQuery = `
SELECT
    u.id,
    u.first_name,
    u.last_name,
    u.email,
    pm.role,
    pm.joined_at
FROM project_members pm
JOIN users u ON u.id = pm.user_id
WHERE pm.project_id = $1
ORDER BY pm.joined_at ASC;`

	selectTaskCountsQuery = `
SELECT
    COUNT(*),
    COUNT(*) FILTER (WHERE status = 'done')
FROM tasks
WHERE project_id = $1;`

	listProjectsQuery = `
SELECT
    p.id,
    p.title,
    p.description,
    p.color,
    p.owner_id,
    p.created_at,
    p.updated_at,
    COUNT(t.id),
    COUNT(t.id) FILTER (WHERE t.status = 'done')
FROM projects p
JOIN project_members pm ON pm.project_id = p.id
LEFT JOIN tasks t ON t.project_id = p.id
WHERE pm.user_id = $1
GROUP BY p.id
ORDER BY p.created_at DESC;`

	updateProjectQuery = `
UPDATE projects
SET title = COALESCE($1, title),
    description = COALESCE($2, description),
    color = COALESCE($3, color),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $4
RETURNING id, title, description, color, owner_id, created_at, updated_at;`

	deleteProjectQuery = `
DELETE FROM projects
WHERE id = $1;`

	memberExistsQuery = `
SELECT EXISTS (
    SELECT 1 FROM project_members
    WHERE project_id = $1 AND user_id = $2
);`

	deleteMemberQuery = `
DELETE FROM project_members
WHERE project_id = $1 AND user_id = $2;`

	unassignMemberTasksQuery = `
UPDATE tasks
SET assignee_id = NULL,
    updated_at = CURRENT_TIMESTAMP
WHERE project_id = $1 AND assignee_id = $2;`
)

type ProjectRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewProjectRepository(db *pgxpool.Pool, log *zap.Logger) *ProjectRepository {
	return &ProjectRepository{
		db:  db,
		log: log,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, d *dto.CreateProjectDTO) (*result.ProjectResult, error) {
	r.log.Info("create project",
		zap.String("project_id", d.Id.String()),
		zap.String("owner_id", d.OwnerId.String()),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer tx.Rollback(ctx)

	project, err := scanProject(tx.QueryRow(ctx, insertProjectQuery,
		d.Id, d.Title, d.Description, d.Color, d.OwnerId,
	))
	if err != nil {
		r.log.Error("failed to insert project",
			zap.String("project_id", d.Id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	// Owner joins the project as admin member
	member := &domain.ProjectMember{}
	err = tx.QueryRow(ctx, insertMemberQuery, project.Id, d.OwnerId, domain.RoleAdmin).Scan(
		&member.ProjectId,
		&member.UserId,
		&member.Role,
		&member.JoinedAt,
	)
	if err != nil {
		r.log.Error("failed to insert owner membership",
			zap.String("project_id", d.Id.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}

	members, err := readMembers(ctx, tx, project.Id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("failed to commit project creation",
			zap.String("project_id", d.Id.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}

	return &result.ProjectResult{
		Project: project,
		Members: members,
	}, nil
}

func (r *ProjectRepository) Get(ctx context.Context, projectId uuid.UUID) (*result.ProjectResult, error) {
	r.log.Debug("get project", zap.String("project_id", projectId.String()))

	project, err := scanProject(r.db.QueryRow(ctx, selectProjectQuery, projectId))
	if err != nil {
		return nil, err
	}

	members, err := readMembers(ctx, r.db, projectId)
	if err != nil {
		r.log.Error("failed to load project members",
			zap.String("project_id", projectId.String()),
			zap.Error(err),
		)
		return nil, err
	}

	var total, done int
	err = r.db.QueryRow(ctx, selectTaskCountsQuery, projectId).Scan(&total, &done)
	if err != nil {
		return nil, handleDBError(err)
	}

	return &result.ProjectResult{
		Project:            project,
		Members:            members,
		TaskCount:          total,
		CompletedTaskCount: done,
	}, nil
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userId uuid.UUID) ([]*result.ProjectSummary, error) {
	r.log.Debug("list projects", zap.String("user_id", userId.String()))

	rows, err := r.db.Query(ctx, listProjectsQuery, userId)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var projects []*result.ProjectSummary
	for rows.Next() {
		project := &domain.Project{}
		summary := &result.ProjectSummary{Project: project}
		var description sql.NullString
		err := rows.Scan(
			&project.Id,
			&project.Title,
			&description,
			&project.Color,
			&project.OwnerId,
			&project.CreatedAt,
			&project.UpdatedAt,
			&summary.TaskCount,
			&summary.CompletedTaskCount,
		)
		if err != nil {
			return nil, handleDBError(err)
		}
		if description.Valid {
			project.Description = &description.String
		}
		projects = append(projects, summary)
	}

	r.log.Debug("projects loaded",
		zap.String("user_id", userId.String()),
		zap.Int("projects", len(projects)),
	)
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, d *dto.UpdateProjectDTO) (*domain.Project, error) {
	r.log.Info("update project", zap.String("project_id", d.ProjectId.String()))

	project, err := scanProject(r.db.QueryRow(ctx, updateProjectQuery,
		d.Title, d.Description, d.Color, d.ProjectId,
	))
	if err != nil {
		r.log.Error("failed to update project",
			zap.String("project_id", d.ProjectId.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return project, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, projectId uuid.UUID) error {
	r.log.Info("delete project", zap.String("project_id", projectId.String()))

	cmdTag, err := r.db.Exec(ctx, deleteProjectQuery, projectId)
	if err != nil {
		r.log.Error("failed to delete project",
			zap.String("project_id", projectId.String()),
			zap.Error(err),
		)
		return handleDBError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *ProjectRepository) AddMember(ctx context.Context, d *dto.AddMemberDTO) (*domain.ProjectMember, error) {
	r.log.Info("add project member",
		zap.String("project_id", d.ProjectId.String()),
		zap.String("user_id", d.UserId.String()),
		zap.String("role", string(d.Role)),
	)

	member := &domain.ProjectMember{}
	err := r.db.QueryRow(ctx, insertMemberQuery, d.ProjectId, d.UserId, d.Role).Scan(
		&member.ProjectId,
		&member.UserId,
		&member.Role,
		&member.JoinedAt,
	)
	if err != nil {
		r.log.Error("failed to add project member",
			zap.String("project_id", d.ProjectId.String()),
			zap.String("user_id", d.UserId.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}

	return member, nil
}

func (r *ProjectRepository) RemoveMember(ctx context.Context, d *dto.RemoveMemberDTO) error {
	r.log.Info("remove project member",
		zap.String("project_id", d.ProjectId.String()),
		zap.String("user_id", d.UserId.String()),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return handleDBError(err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, deleteMemberQuery, d.ProjectId, d.UserId)
	if err != nil {
		return handleDBError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.log.Warn("member not found on project",
			zap.String("project_id", d.ProjectId.String()),
			zap.String("user_id", d.UserId.String()),
		)
		return ErrNotFound
	}

	// Tasks assigned to the removed member stay in the project unassigned
	if _, err := tx.Exec(ctx, unassignMemberTasksQuery, d.ProjectId, d.UserId); err != nil {
		r.log.Error("failed to unassign member tasks",
			zap.String("project_id", d.ProjectId.String()),
			zap.String("user_id", d.UserId.String()),
			zap.Error(err),
		)
		return handleDBError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return handleDBError(err)
	}

	return nil
}

func (r *ProjectRepository) IsMember(ctx context.Context, projectId, userId uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, memberExistsQuery, projectId, userId).Scan(&exists)
	if err != nil {
		return false, handleDBError(err)
	}
	return exists, nil
}

type queryRunner interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func readMembers(ctx context.Context, q queryRunner, projectId uuid.UUID) ([]*result.MemberResult, error) {
	rows, err := q.Query(ctx, selectMembersQuery, projectId)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var members []*result.MemberResult
	for rows.Next() {
		member := &result.MemberResult{}
		err := rows.Scan(
			&member.UserId,
			&member.FirstName,
			&member.LastName,
			&member.Email,
			&member.Role,
			&member.JoinedAt,
		)
		if err != nil {
			return nil, handleDBError(err)
		}
		members = append(members, member)
	}

	return members, nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	project := &domain.Project{}
	var description sql.NullString
	err := row.Scan(
		&project.Id,
		&project.Title,
		&description,
		&project.Color,
		&project.OwnerId,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, handleDBError(err)
	}
	if description.Valid {
		project.Description = &description.String
	}
	return project, nil
}
