package audit

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	coreaudit "github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/audit"
)

const textTimeLayout = "2006-01-02 15:04:05"

// TextStore appends entries as timestamped text lines, one per entry, in
// call order. It is the classic rental_log.txt sink: humans read it with
// tail, and Query re-parses the timestamp prefix so the history commands
// work on the default backend too.
type TextStore struct {
	mu   sync.Mutex
	path string
	f    *os.File
}

// NewTextStore opens or creates the file at path for appending. Callers
// treat a failure here as fatal: transactions must not run without their
// audit trail.
func NewTextStore(path string) (*TextStore, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log %s: %w", path, err)
	}
	return &TextStore{path: path, f: f}, nil
}

// Append writes one line with a timestamp prefix.
func (s *TextStore) Append(_ context.Context, e coreaudit.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.f, "[%s] %s\n", e.Time.Format(textTimeLayout), e.Message)
	return err
}

// Query re-reads the file and parses each line's timestamp prefix back into
// an entry. Only Time and Message survive the text round trip; the other
// fields stay zero, so only the time window filters apply. Lines without a
// valid prefix are skipped.
func (s *TextStore) Query(_ context.Context, q coreaudit.Query) ([]coreaudit.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("read audit log %s: %w", s.path, err)
	}
	defer f.Close()

	var out []coreaudit.Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		e, ok := parseTextLine(sc.Text())
		if !ok {
			continue
		}
		if q.Matches(e) {
			out = append(out, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan audit log %s: %w", s.path, err)
	}
	return out, nil
}

// parseTextLine splits "[2006-01-02 15:04:05] message" into an entry.
func parseTextLine(line string) (coreaudit.Entry, bool) {
	if !strings.HasPrefix(line, "[") {
		return coreaudit.Entry{}, false
	}
	end := strings.Index(line, "] ")
	if end < 0 {
		return coreaudit.Entry{}, false
	}
	ts, err := time.Parse(textTimeLayout, line[1:end])
	if err != nil {
		return coreaudit.Entry{}, false
	}
	return coreaudit.Entry{Time: ts, Message: line[end+2:]}, true
}

// Close releases the underlying file.
func (s *TextStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}
