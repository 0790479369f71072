package task

type CreateTaskRequest struct {
	Text string `json:"text" validate:"required"`
}

type UpdateTaskRequest struct {
	Completed *bool `json:"completed"`
}
