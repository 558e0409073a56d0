package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/infrastructure/models/result"
)

const (
	projectStatsQuery = `
SELECT
    p.id,
    p.title,
    COUNT(t.id),
    COUNT(t.id) FILTER (WHERE t.status = 'done')
FROM projects p
LEFT JOIN tasks t ON t.project_id = p.id
GROUP BY p.id
ORDER BY p.created_at DESC;`

	userStatsQuery = `
SELECT
    u.id,
    u.first_name || ' ' || u.last_name,
    COUNT(t.id) FILTER (WHERE t.status <> 'done')
FROM users u
JOIN tasks t ON t.assignee_id = u.id
GROUP BY u.id
ORDER BY COUNT(t.id) FILTER (WHERE t.status <> 'done') DESC;`
)

type StatsRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewStatsRepository(db *pgxpool.Pool, log *zap.Logger) *StatsRepository {
	return &StatsRepository{
		db:  db,
		log: log,
	}
}

func (r *StatsRepository) GetStats(ctx context.Context) (*result.StatsResult, error) {
	r.log.Debug("get dashboard stats")

	rows, err := r.db.Query(ctx, projectStatsQuery)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var projects []result.ProjectStats
	for rows.Next() {
		var p result.ProjectStats
		err := rows.Scan(&p.ProjectId, &p.Title, &p.TaskCount, &p.CompletedTaskCount)
		if err != nil {
			return nil, handleDBError(err)
		}
		projects = append(projects, p)
	}
	rows.Close()

	rows, err = r.db.Query(ctx, userStatsQuery)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var users []result.UserStats
	for rows.Next() {
		var u result.UserStats
		err := rows.Scan(&u.UserId, &u.Name, &u.OpenTasks)
		if err != nil {
			return nil, handleDBError(err)
		}
		users = append(users, u)
	}

	r.log.Debug("dashboard stats loaded",
		zap.Int("projects", len(projects)),
		zap.Int("users", len(users)),
	)
	return &result.StatsResult{
		Projects: projects,
		Users:    users,
	}, nil
}
