package model

import "time"

// SubmissionStatus is the lifecycle stage of a download request
type SubmissionStatus string

const (
	SubmissionStatusIdle       SubmissionStatus = "idle"
	SubmissionStatusSubmitting SubmissionStatus = "submitting"
	SubmissionStatusSucceeded  SubmissionStatus = "succeeded"
	SubmissionStatusFailed     SubmissionStatus = "failed"
)

func (s SubmissionStatus) String() string { return string(s) }

// IsActive returns true while a request is outstanding
func (s SubmissionStatus) IsActive() bool {
	return s == SubmissionStatusSubmitting
}

// IsFinished returns true for terminal states
func (s SubmissionStatus) IsFinished() bool {
	return s == SubmissionStatusSucceeded || s == SubmissionStatusFailed
}

// SubmissionState is a snapshot of the single submission owned by the controller
type SubmissionState struct {
	ID         string            `json:"id,omitempty"`
	Status     SubmissionStatus  `json:"status"`
	Progress   int               `json:"progress"` // 0 to 100, meaningful while submitting
	Message    string            `json:"message,omitempty"`
	URL        string            `json:"url,omitempty"`
	Arguments  ArgumentList      `json:"arguments,omitempty"`
	Result     *DownloadResponse `json:"result,omitempty"`
	StartedAt  *time.Time        `json:"started_at,omitempty"`
	FinishedAt *time.Time        `json:"finished_at,omitempty"`
}

// IdleState returns the state before any submission
func IdleState() SubmissionState {
	return SubmissionState{Status: SubmissionStatusIdle}
}

// DownloadRequest is the body posted to the backend download endpoint
type DownloadRequest struct {
	URL       string       `json:"url"`
	Options   ArgumentList `json:"options"`
	OutputDir string       `json:"output_dir"`
}

// DownloadResponse is the backend's acknowledgement of a finished job
type DownloadResponse struct {
	Message  string `json:"message"`
	Title    string `json:"title,omitempty"`
	Filename string `json:"filename,omitempty"`
	Duration any    `json:"duration,omitempty"` // seconds, or "Unknown"
}
