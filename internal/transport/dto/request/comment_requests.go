package request

type AddCommentRequest struct {
	TaskId   string `json:"task_id"`
	AuthorId string `json:"author_id"`
	Body     string `json:"body"`
}

type ListCommentsRequest struct {
	TaskId string `json:"task_id"`
}

type DeleteCommentRequest struct {
	CommentId string `json:"comment_id"`
}
