package model

import "time"

type ImportJobType string

const (
	ImportJobTypeImport ImportJobType = "import"
	ImportJobTypeExport ImportJobType = "export"
)

type ImportJobStatus string

const (
	ImportJobStatusPending   ImportJobStatus = "pending"
	ImportJobStatusRunning   ImportJobStatus = "running"
	ImportJobStatusCompleted ImportJobStatus = "completed"
	ImportJobStatusFailed    ImportJobStatus = "failed"
)

// ImportJob tracks one bulk import/export run. It is a progress record,
// not a resumable job queue: a crashed run stays in its last state.
type ImportJob struct {
	BaseModel
	Type     ImportJobType   `gorm:"type:varchar(10);not null" json:"type"`
	FileName string          `gorm:"type:varchar(512);not null" json:"fileName"`
	Status   ImportJobStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	TotalRows     int `gorm:"default:0" json:"totalRows"`
	ProcessedRows int `gorm:"default:0" json:"processedRows"`
	SucceededRows int `gorm:"default:0" json:"succeededRows"`
	ErrorCount    int `gorm:"default:0" json:"errorCount"`

	LastError  string     `gorm:"type:text" json:"lastError,omitempty"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}
