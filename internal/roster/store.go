// Package roster holds the in-session collection of agent profiles.
// Membership is fixed at construction; only field contents change.
package roster

import (
	"strings"
	"sync"

	"github.com/beofficial/commandcenter/internal/domain"
)

// Field names accepted by SetText and SetList. These match the JSON keys of
// domain.AgentProfile.
const (
	FieldName             = "name"
	FieldCodename         = "codename"
	FieldMission          = "mission"
	FieldTargetAudience   = "targetAudience"
	FieldValueProposition = "valueProposition"
	FieldCoreTasks        = "coreTasks"
	FieldInputs           = "inputs"
	FieldOutputs          = "outputs"
	FieldDataSources      = "dataSources"
	FieldKPIs             = "kpis"
	FieldGuardrails       = "guardrails"
	FieldNotes            = "notes"
	FieldExamplePrompts   = "examplePrompts"
)

var textFields = []string{
	FieldName, FieldCodename, FieldMission,
	FieldTargetAudience, FieldValueProposition, FieldNotes,
}

var listFields = []string{
	FieldCoreTasks, FieldInputs, FieldOutputs,
	FieldDataSources, FieldKPIs, FieldGuardrails, FieldExamplePrompts,
}

// Fields returns every editable field name in canonical profile order.
func Fields() []string {
	return []string{
		FieldName, FieldCodename, FieldMission,
		FieldTargetAudience, FieldValueProposition,
		FieldCoreTasks, FieldInputs, FieldOutputs,
		FieldDataSources, FieldKPIs, FieldGuardrails,
		FieldNotes, FieldExamplePrompts,
	}
}

// IsListField reports whether field holds an ordered sequence of text.
func IsListField(field string) bool {
	for _, f := range listFields {
		if f == field {
			return true
		}
	}
	return false
}

// IsTextField reports whether field holds a single text value.
func IsTextField(field string) bool {
	for _, f := range textFields {
		if f == field {
			return true
		}
	}
	return false
}

// Store is the in-memory roster of agent profiles for one session. It is
// safe for concurrent use; the HTTP API shares one Store across handlers.
type Store struct {
	mu     sync.RWMutex
	agents []domain.AgentProfile
	index  map[string]int
}

// New builds a store from the given profiles. Profiles with an empty name or
// codename are rejected, as are duplicate codenames.
func New(profiles []domain.AgentProfile) (*Store, error) {
	s := &Store{
		agents: make([]domain.AgentProfile, 0, len(profiles)),
		index:  make(map[string]int, len(profiles)),
	}
	for _, p := range profiles {
		if strings.TrimSpace(p.Name) == "" {
			return nil, &ValidationError{Field: FieldName, Message: "must not be empty"}
		}
		if strings.TrimSpace(p.Codename) == "" {
			return nil, &ValidationError{Field: FieldCodename, Message: "must not be empty"}
		}
		if _, dup := s.index[p.Codename]; dup {
			return nil, &ValidationError{Field: FieldCodename, Message: "duplicate codename " + p.Codename}
		}
		s.index[p.Codename] = len(s.agents)
		s.agents = append(s.agents, p.Clone())
	}
	return s, nil
}

// NewDefault builds a store seeded with the five BeOfficial agents.
func NewDefault() *Store {
	s, err := New(domain.DefaultAgents())
	if err != nil {
		// The seed roster is a compile-time constant; this is unreachable
		// unless the seeds themselves are broken.
		panic(err)
	}
	return s
}

// Len returns the number of profiles in the roster.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.agents)
}

// List returns copies of all profiles in roster order.
func (s *Store) List() []domain.AgentProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AgentProfile, len(s.agents))
	for i, a := range s.agents {
		out[i] = a.Clone()
	}
	return out
}

// Get returns a copy of the profile with the given codename.
func (s *Store) Get(codename string) (domain.AgentProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[codename]
	if !ok {
		return domain.AgentProfile{}, &NotFoundError{Codename: codename}
	}
	return s.agents[i].Clone(), nil
}

// SetText updates a single-text field. An empty value clears notes but is
// rejected for name and codename. The write is all-or-nothing.
func (s *Store) SetText(codename, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[codename]
	if !ok {
		return &NotFoundError{Codename: codename}
	}

	switch field {
	case FieldName:
		if strings.TrimSpace(value) == "" {
			return &ValidationError{Field: field, Message: "must not be empty"}
		}
		s.agents[i].Name = value
	case FieldCodename:
		next := strings.TrimSpace(value)
		if next == "" {
			return &ValidationError{Field: field, Message: "must not be empty"}
		}
		if j, dup := s.index[next]; dup && j != i {
			return &ValidationError{Field: field, Message: "duplicate codename " + next}
		}
		delete(s.index, s.agents[i].Codename)
		s.agents[i].Codename = next
		s.index[next] = i
	case FieldMission:
		s.agents[i].Mission = value
	case FieldTargetAudience:
		s.agents[i].TargetAudience = value
	case FieldValueProposition:
		s.agents[i].ValueProposition = value
	case FieldNotes:
		if strings.TrimSpace(value) == "" {
			s.agents[i].Notes = nil
		} else {
			v := value
			s.agents[i].Notes = &v
		}
	default:
		if IsListField(field) {
			return &ValidationError{Field: field, Message: "is a list field"}
		}
		return &ValidationError{Field: field, Message: "unknown field"}
	}
	return nil
}

// SetList replaces a list field. Blank and whitespace-only entries are
// dropped before storing; order of the remaining entries is preserved.
func (s *Store) SetList(codename, field string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[codename]
	if !ok {
		return &NotFoundError{Codename: codename}
	}

	kept := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		kept = append(kept, v)
	}

	switch field {
	case FieldCoreTasks:
		s.agents[i].CoreTasks = kept
	case FieldInputs:
		s.agents[i].Inputs = kept
	case FieldOutputs:
		s.agents[i].Outputs = kept
	case FieldDataSources:
		s.agents[i].DataSources = kept
	case FieldKPIs:
		s.agents[i].KPIs = kept
	case FieldGuardrails:
		s.agents[i].Guardrails = kept
	case FieldExamplePrompts:
		s.agents[i].ExamplePrompts = kept
	default:
		if IsTextField(field) {
			return &ValidationError{Field: field, Message: "is a text field"}
		}
		return &ValidationError{Field: field, Message: "unknown field"}
	}
	return nil
}
