package entity

import (
	"database/sql"
	"time"
)

// JobStatus is the state of a job execution.
type JobStatus string

const (
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// JobTrigger records what started a job execution.
type JobTrigger string

const (
	JobTriggerCron   JobTrigger = "cron"
	JobTriggerManual JobTrigger = "manual"
)

// JobExecution is one run of a background job.
type JobExecution struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	JobType      string       `gorm:"index;not null" json:"job_type"`
	Trigger      JobTrigger   `gorm:"not null" json:"trigger"`
	Status       JobStatus    `gorm:"not null" json:"status"`
	Output       string       `json:"output,omitempty"`
	ErrorMessage string       `json:"error_message,omitempty"`
	StartedAt    time.Time    `gorm:"not null" json:"started_at"`
	CompletedAt  sql.NullTime `json:"completed_at"`
}

func (JobExecution) TableName() string {
	return "job_executions"
}
