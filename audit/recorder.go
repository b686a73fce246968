package audit

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
)

// Recorder is an append-only trail of generation and matching runs.
// Commands pass one in explicitly; the core packages never log on
// their own. RecordStart marks that an operation was attempted, Record
// marks that it finished and how many results it produced.
type Recorder interface {
	RecordStart(operation string, params lager.Data) error
	Record(operation string, params lager.Data, resultCount int) error
}

type fileRecorder struct {
	path string
	now  func() time.Time
}

// NewFileRecorder records one timestamped line per invocation to the
// file at path, creating it on first use. Each call opens the file in
// append mode so concurrent tools sharing a log interleave whole lines
// rather than corrupting each other.
func NewFileRecorder(path string) Recorder {
	return &fileRecorder{path: path, now: time.Now}
}

func (r *fileRecorder) RecordStart(operation string, params lager.Data) error {
	return r.appendLine(formatRecord(r.now().UTC(), operation+"-start", params))
}

func (r *fileRecorder) Record(operation string, params lager.Data, resultCount int) error {
	return r.appendLine(formatRecord(r.now().UTC(), operation, params, fmt.Sprintf("results=%d", resultCount)))
}

func (r *fileRecorder) appendLine(line string) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintln(f, line)
	return err
}

func formatRecord(ts time.Time, operation string, params lager.Data, extra ...string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := []string{ts.Format(time.RFC3339), operation}
	for _, k := range keys {
		fields = append(fields, fmt.Sprintf("%s=%v", k, params[k]))
	}
	fields = append(fields, extra...)

	return strings.Join(fields, " ")
}

type nullRecorder struct{}

func NewNullRecorder() Recorder {
	return nullRecorder{}
}

func (nullRecorder) RecordStart(string, lager.Data) error {
	return nil
}

func (nullRecorder) Record(string, lager.Data, int) error {
	return nil
}
