package response

type ProjectStat struct {
	ProjectId          string `json:"project_id"`
	Title              string `json:"title"`
	TaskCount          int    `json:"task_count"`
	CompletedTaskCount int    `json:"completed_task_count"`
}

type UserStat struct {
	UserId    string `json:"user_id"`
	Name      string `json:"name"`
	OpenTasks int    `json:"open_tasks"`
}

type StatsResponse struct {
	Projects []ProjectStat `json:"projects"`
	Users    []UserStat    `json:"users"`
}
