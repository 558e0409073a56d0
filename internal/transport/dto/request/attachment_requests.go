package request

type AddAttachmentRequest struct {
	TaskId      string `json:"task_id"`
	UploaderId  string `json:"uploader_id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
}

type ListAttachmentsRequest struct {
	TaskId string `json:"task_id"`
}

type DeleteAttachmentRequest struct {
	AttachmentId string `json:"attachment_id"`
}
