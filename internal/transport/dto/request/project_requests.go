package request

type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	OwnerId     string `json:"owner_id"`
}

type GetProjectRequest struct {
	ProjectId string `json:"project_id"`
}

type ListProjectsRequest struct {
	UserId string `json:"user_id"`
}

type UpdateProjectRequest struct {
	ProjectId   string  `json:"project_id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

type DeleteProjectRequest struct {
	ProjectId string `json:"project_id"`
}

type AddMemberRequest struct {
	ProjectId string `json:"project_id"`
	UserId    string `json:"user_id"`
	Role      string `json:"role,omitempty"`
}

type RemoveMemberRequest struct {
	ProjectId string `json:"project_id"`
	UserId    string `json:"user_id"`
}
