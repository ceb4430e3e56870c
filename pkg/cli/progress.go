package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
)

var (
	progressColor = color.New(color.FgCyan)
	successColor  = color.New(color.FgGreen, color.Bold)
	failureColor  = color.New(color.FgRed, color.Bold)
	labelColor    = color.New(color.Faint)
)

// progressPrinter renders submission state changes on a terminal
type progressPrinter struct {
	w          io.Writer
	inProgress bool
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{w: w}
}

func (p *progressPrinter) update(s model.SubmissionState) {
	switch s.Status {
	case model.SubmissionStatusSubmitting:
		_, _ = progressColor.Fprintf(p.w, "\rSubmitting %s %3d%%", s.URL, s.Progress)
		p.inProgress = true

	case model.SubmissionStatusSucceeded:
		p.endLine()
		_, _ = successColor.Fprintln(p.w, s.Message)
		if r := s.Result; r != nil {
			p.field("Title", r.Title)
			p.field("File", r.Filename)
			if r.Duration != nil {
				p.field("Duration", fmt.Sprint(r.Duration))
			}
		}

	case model.SubmissionStatusFailed:
		p.endLine()
		_, _ = failureColor.Fprintln(p.w, s.Message)
	}
}

func (p *progressPrinter) endLine() {
	if p.inProgress {
		_, _ = fmt.Fprintln(p.w)
		p.inProgress = false
	}
}

func (p *progressPrinter) field(label, value string) {
	if value == "" {
		return
	}
	_, _ = fmt.Fprintf(p.w, "  %s %s\n", labelColor.Sprint(label+":"), value)
}
