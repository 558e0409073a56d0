package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/infrastructure/models/result"
	"github.com/taskflow/backend/internal/transport/dto/response"
)

var getStatsError = errors.New("get stats error")

type StatsRepository interface {
	GetStats(ctx context.Context) (*result.StatsResult, error)
}

type StatsService struct {
	repo StatsRepository
	log  *zap.Logger
}

func NewStatsService(repo StatsRepository, log *zap.Logger) *StatsService {
	return &StatsService{
		repo: repo,
		log:  log,
	}
}

func (s *StatsService) GetStats(ctx context.Context) (*response.StatsResponse, error) {
	res, err := s.repo.GetStats(ctx)
	if err != nil {
		s.log.Error("failed to get dashboard stats", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", getStatsError, err)
	}

	projects := make([]response.ProjectStat, 0, len(res.Projects))
	for _, p := range res.Projects {
		projects = append(projects, response.ProjectStat{
			ProjectId:          p.ProjectId.String(),
			Title:              p.Title,
			TaskCount:          p.TaskCount,
			CompletedTaskCount: p.CompletedTaskCount,
		})
	}

	users := make([]response.UserStat, 0, len(res.Users))
	for _, u := range res.Users {
		users = append(users, response.UserStat{
			UserId:    u.UserId.String(),
			Name:      u.Name,
			OpenTasks: u.OpenTasks,
		})
	}

	return &response.StatsResponse{
		Projects: projects,
		Users:    users,
	}, nil
}
