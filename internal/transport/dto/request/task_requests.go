package request

type CreateTaskRequest struct {
	ProjectId   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	AssigneeId  string `json:"assignee_id,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

type GetTaskRequest struct {
	TaskId string `json:"task_id"`
}

type ListTasksRequest struct {
	ProjectId  string `json:"project_id"`
	Status     string `json:"status,omitempty"`
	Priority   string `json:"priority,omitempty"`
	AssigneeId string `json:"assignee_id,omitempty"`
}

type UpdateTaskRequest struct {
	TaskId      string  `json:"task_id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

type SetStatusRequest struct {
	TaskId string `json:"task_id"`
	Status string `json:"status"`
}

type AssignTaskRequest struct {
	TaskId     string `json:"task_id"`
	AssigneeId string `json:"assignee_id,omitempty"`
}

type DeleteTaskRequest struct {
	TaskId string `json:"task_id"`
}
