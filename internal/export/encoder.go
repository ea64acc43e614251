// Package export serializes the roster to the downloadable project files.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/beofficial/commandcenter/internal/domain"
)

// ProjectName tags every export document.
const ProjectName = "BeOfficial"

// The two files an export produces.
const (
	AgentsFilename = "beofficial_agents.json"
	ReadmeFilename = "README_beofficial.txt"
)

// ReadmeText is the static note written alongside the agents file.
const ReadmeText = "BeOfficial Agents configuration exported from the command center.\n\n" +
	"Files: beofficial_agents.json (agents).\n" +
	"Next: connect automations for news fetching, email delivery, social scheduling, lead capture, and day-of dashboards."

// Document is the export payload. Struct field order fixes the JSON key
// order.
type Document struct {
	ExportedAt string                `json:"exportedAt"`
	Project    string                `json:"project"`
	Agents     []domain.AgentProfile `json:"agents"`
}

// Encoder renders export documents. The clock is injectable so tests can pin
// the embedded timestamp.
type Encoder struct {
	now func() time.Time
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithClock overrides the wall clock used for the exportedAt timestamp.
func WithClock(now func() time.Time) Option {
	return func(e *Encoder) { e.now = now }
}

// NewEncoder creates an Encoder using the system clock.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode serializes the roster with a current timestamp, 2-space indented.
func (e *Encoder) Encode(agents []domain.AgentProfile) ([]byte, error) {
	doc := Document{
		ExportedAt: e.now().Format(time.RFC3339),
		Project:    ProjectName,
		Agents:     agents,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// WriteFiles writes the agents JSON and the README note into dir.
func (e *Encoder) WriteFiles(dir string, agents []domain.AgentProfile) error {
	data, err := e.Encode(agents)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, AgentsFilename), data, 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ReadmeFilename), []byte(ReadmeText), 0o644)
}
