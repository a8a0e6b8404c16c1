package model

import "time"

type TaskStatus string

const (
	TaskActive   TaskStatus = "ACTIVE"
	TaskInactive TaskStatus = "INACTIVE"
)

func (s TaskStatus) Valid() bool {
	return s == TaskActive || s == TaskInactive
}

type Task struct {
	ID          int64      `json:"id"`
	Owner       string     `json:"-"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskRequest is the body of task create and update calls. Unknown fields are ignored.
type TaskRequest struct {
	Name        string     `json:"name" validate:"required,max=255"`
	Description string     `json:"description" validate:"max=4096"`
	Status      TaskStatus `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

type TaskListResponse struct {
	Status TaskStatus `json:"status"`
	Tasks  []Task     `json:"tasks"`
}
