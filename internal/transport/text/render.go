// Package text renders company reports into the plain-text report artifact.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/dimerman/thrivemycareer/internal/entities"
)

// Render formats a company report. The block starts with an empty line.
func Render(r entities.CompanyReport) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "Company Id: %d\n", r.CompanyID)
	fmt.Fprintf(&b, "Company Name: %s\n", r.CompanyName)
	b.WriteString("Users Emailed:\n")
	writeLines(&b, r.Emailed.Lines)
	b.WriteString("Users Not Emailed:\n")
	writeLines(&b, r.NotEmailed.Lines)
	fmt.Fprintf(&b, "Total amount of top ups for %s: %s\n", r.CompanyName, r.Total)

	return b.String()
}

func writeLines(b *strings.Builder, lines []entities.ReportLine) {
	for _, l := range lines {
		fmt.Fprintf(b, "\t%s, %s, %s\n", l.LastName, l.FirstName, l.Email)
		fmt.Fprintf(b, "\t\tPrevious Token Balance, %s\n", l.PreviousBalance)
		fmt.Fprintf(b, "\t\tNew Token Balance %s\n", l.NewBalance)
	}
}

// Sink writes rendered reports to an output stream.
type Sink struct {
	w io.Writer
}

// NewSink wraps w; the caller owns opening and closing it.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// WriteReport renders r and writes it in one call.
func (s *Sink) WriteReport(r entities.CompanyReport) error {
	if _, err := io.WriteString(s.w, Render(r)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
