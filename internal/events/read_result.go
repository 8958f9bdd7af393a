package events

import (
	"time"

	"github.com/google/uuid"

	"plantviewer/internal/models"
)

type ReadStatus string

const (
	ReadOK         ReadStatus = "ok"
	ReadAbsent     ReadStatus = "absent"
	ReadParseError ReadStatus = "parse_error"
	ReadIOError    ReadStatus = "io_error"
)

// ReadResult is the outcome of one settings read. Record is set only when
// Status is ReadOK.
type ReadResult struct {
	RequestID string                 `json:"requestId"`
	Status    ReadStatus             `json:"status"`
	Record    *models.SettingsRecord `json:"record,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (r ReadResult) OK() bool {
	return r.Status == ReadOK
}

func NewReadSuccess(record *models.SettingsRecord) ReadResult {
	return ReadResult{
		RequestID: uuid.NewString(),
		Status:    ReadOK,
		Record:    record,
		Timestamp: time.Now(),
	}
}

func NewReadFailure(status ReadStatus, err error) ReadResult {
	res := ReadResult{
		RequestID: uuid.NewString(),
		Status:    status,
		Timestamp: time.Now(),
	}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}
