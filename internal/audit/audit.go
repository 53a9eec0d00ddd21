package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/git-credential-pass/internal/configs"
	"github.com/google/uuid"
)

// Entry represents a single lookup audit record. Secrets are never logged;
// the record only describes which entry, if any, answered a request.
type Entry struct {
	ID        string `json:"id"`      // Random UUID for this lookup.
	Timestamp string `json:"ts"`      // RFC3339 with microseconds.
	Host      string `json:"host"`    // Request host.
	Path      string `json:"path"`    // Request path, may be empty.
	Probed    int    `json:"probed"`  // Number of candidates generated.
	Matched   string `json:"matched"` // Matched candidate, "" if none.
}

// NewEntry creates an audit entry for a lookup.
func NewEntry(host, path string) Entry {
	return Entry{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000000Z"),
		Host:      host,
		Path:      path,
	}
}

// Log appends an entry to the audit log when auditing is enabled.
// Logging is best-effort: a lookup must never fail because its audit
// record could not be written.
func Log(settings *configs.Settings, entry Entry) {
	if !settings.AuditEnabled || settings.AuditPath == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(settings.AuditPath), 0700); err != nil {
		return
	}

	// #nosec G306 -- the audit log holds no secret material.
	f, err := os.OpenFile(settings.AuditPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}
