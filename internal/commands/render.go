package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/hay-kot/eventhub/internal/core/catalog"
	"github.com/hay-kot/eventhub/internal/printer"
)

// parseParams turns repeated key=value flags into list filters.
func parseParams(pairs []string) (catalog.Params, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	params := make(catalog.Params, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid filter %q, expected key=value", pair)
		}
		params[k] = v
	}
	return params, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeEventTable(w io.Writer, events []catalog.Event) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tDATE\tTIME\tLOCATION\tSPOTS")

	for _, e := range events {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Title, e.Date, e.TimeRange(), e.Location, e.Attendance())
	}

	return tw.Flush()
}

func writeClubTable(w io.Writer, clubs []catalog.Club) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tMEMBERS\tCREATED BY")

	for _, c := range clubs {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", c.ID, c.Name, c.MemberCount, c.CreatorName)
	}

	return tw.Flush()
}

// finding is one line of a doctor or config validate report.
type finding struct {
	level  printer.Level
	label  string
	detail string
}

func printFindings(p *printer.Printer, title string, findings []finding) {
	if len(findings) == 0 {
		return
	}
	p.Section(title)
	for _, f := range findings {
		p.Item(f.level, f.label, f.detail)
	}
	p.Printf("")
}

// conclude prints a one-line verdict for subject. Any failure yields
// ErrReported so the process exits non-zero without a second error box.
func conclude(p *printer.Printer, subject string, failed, warned int) error {
	switch {
	case failed > 0:
		p.Errorf("%s: %d failed, %d warning(s)", subject, failed, warned)
		return ErrReported
	case warned > 0:
		p.Warnf("%s passed with %d warning(s)", subject, warned)
	default:
		p.Successf("%s passed", subject)
	}
	return nil
}
