// Package export writes top results to JSON, CSV and TXT files. Every file is
// written to a temporary sibling first and renamed into place.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"startgg-results/internal/domain"
	"startgg-results/internal/logging"
)

// Targets names the files to write. Empty paths are skipped.
type Targets struct {
	JSON string
	CSV  string
	TXT  string
}

// Empty reports whether no target is set.
func (t Targets) Empty() bool {
	return t.JSON == "" && t.CSV == "" && t.TXT == ""
}

// Row is one exported placement.
type Row struct {
	Placement int    `json:"placement"`
	Name      string `json:"name"`
	Tag       string `json:"tag"`
	EntrantID string `json:"entrantId,omitempty"`
}

// EventRows is the exported top results of one event.
type EventRows struct {
	Event string `json:"event"`
	Total int    `json:"total"`
	Rows  []Row  `json:"results"`
}

// Writer exports results to disk.
type Writer struct {
	logger *slog.Logger
}

// NewWriter constructs a Writer. logger may be nil.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{logger: logger}
}

// Export writes results to every non-empty target. A failing target does not
// stop the others; all failures are joined into the returned error.
func (w *Writer) Export(results []domain.EventResults, targets Targets) error {
	if targets.Empty() {
		return nil
	}
	var logger *slog.Logger
	if w != nil {
		logger = w.logger
	}
	rows := Rows(results)
	var errs []error
	for _, job := range []struct {
		path   string
		format string
		encode func([]EventRows) ([]byte, error)
	}{
		{targets.JSON, "json", EncodeJSON},
		{targets.CSV, "csv", EncodeCSV},
		{targets.TXT, "txt", EncodeTXT},
	} {
		if job.path == "" {
			continue
		}
		data, err := job.encode(rows)
		if err == nil {
			err = writeAtomic(job.path, data)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("export %s: %w", job.format, err))
			continue
		}
		logging.Info(logger, "results exported", "format", job.format, "path", job.path, logging.FieldCount, len(rows))
	}
	return errors.Join(errs...)
}

// Rows flattens event results into export rows, keeping event order.
func Rows(results []domain.EventResults) []EventRows {
	out := make([]EventRows, 0, len(results))
	for _, r := range results {
		ev := EventRows{Event: r.Event.Name, Total: r.Total, Rows: make([]Row, 0, len(r.Standings))}
		for _, s := range r.Standings {
			ev.Rows = append(ev.Rows, Row{
				Placement: s.Placement,
				Name:      s.Entrant.Name,
				Tag:       s.Entrant.Tag,
				EntrantID: s.Entrant.ID.String(),
			})
		}
		out = append(out, ev)
	}
	return out
}

// EncodeJSON renders rows as indented JSON.
func EncodeJSON(rows []EventRows) ([]byte, error) {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// EncodeCSV renders rows under an "Event,Placement,Name" header.
func EncodeCSV(rows []EventRows) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write([]string{"Event", "Placement", "Name"}); err != nil {
		return nil, err
	}
	for _, ev := range rows {
		for _, r := range ev.Rows {
			if err := cw.Write([]string{ev.Event, strconv.Itoa(r.Placement), r.Name}); err != nil {
				return nil, err
			}
		}
	}
	cw.Flush()
	return buf.Bytes(), cw.Error()
}

// EncodeTXT renders one block per event: a header line, then
// "placement: name" lines, then a blank separator.
func EncodeTXT(rows []EventRows) ([]byte, error) {
	var buf bytes.Buffer
	for _, ev := range rows {
		fmt.Fprintf(&buf, "%s:\n", ev.Event)
		for _, r := range ev.Rows {
			fmt.Fprintf(&buf, "%d: %s\n", r.Placement, r.Name)
		}
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

func writeAtomic(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
