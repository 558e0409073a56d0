package result

import "github.com/google/uuid"

type ProjectStats struct {
	ProjectId          uuid.UUID
	Title              string
	TaskCount          int
	CompletedTaskCount int
}

type UserStats struct {
	UserId    uuid.UUID
	Name      string
	OpenTasks int
}

type StatsResult struct {
	Projects []ProjectStats
	Users    []UserStats
}
