package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
)

func TestSubmissionStatus(t *testing.T) {
	tests := []struct {
		status   model.SubmissionStatus
		active   bool
		finished bool
	}{
		{model.SubmissionStatusIdle, false, false},
		{model.SubmissionStatusSubmitting, true, false},
		{model.SubmissionStatusSucceeded, false, true},
		{model.SubmissionStatusFailed, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			gt.Equal(t, tt.status.IsActive(), tt.active)
			gt.Equal(t, tt.status.IsFinished(), tt.finished)
		})
	}
}

func TestRemoteError(t *testing.T) {
	gt.Equal(t, (&model.RemoteError{StatusCode: 500, Detail: "disk full"}).Error(), "disk full")
	gt.Equal(t, (&model.RemoteError{StatusCode: 404}).Error(), "request failed with status code 404")
}
