package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Seed roster tests ---

func TestDefaultAgents_Roster(t *testing.T) {
	agents := DefaultAgents()
	require.Len(t, agents, 5)

	var codenames []string
	for _, a := range agents {
		codenames = append(codenames, a.Codename)
		assert.NotEmpty(t, a.Name, "agent %s", a.Codename)
		assert.NotEmpty(t, a.Mission, "agent %s", a.Codename)
		assert.NotEmpty(t, a.KPIs, "agent %s", a.Codename)
		assert.NotEmpty(t, a.Guardrails, "agent %s", a.Codename)
	}
	assert.Equal(t, []string{"SCRIBE", "SPARK", "EARLYBIRD", "MAGNET", "RALLY"}, codenames)
}

func TestDefaultAgents_NotesOptional(t *testing.T) {
	agents := DefaultAgents()

	// Only EARLYBIRD ships with implementation notes.
	for _, a := range agents {
		if a.Codename == "EARLYBIRD" {
			require.NotNil(t, a.Notes)
			assert.Contains(t, *a.Notes, "news API")
		} else {
			assert.Nil(t, a.Notes, "agent %s", a.Codename)
		}
	}
}

func TestDefaultStatuses_CoversRoster(t *testing.T) {
	statuses := DefaultStatuses()
	for _, a := range DefaultAgents() {
		st, ok := statuses[a.Codename]
		require.True(t, ok, "missing status for %s", a.Codename)
		assert.NotEmpty(t, st.Status)
		assert.GreaterOrEqual(t, st.Progress, 0.0)
		assert.LessOrEqual(t, st.Progress, 1.0)
	}
}

// --- Profile serialization tests ---

func TestAgentProfileJSON_FieldOrder(t *testing.T) {
	data, err := json.Marshal(DefaultAgents()[0])
	require.NoError(t, err)

	order := []string{
		`"name"`, `"codename"`, `"mission"`, `"targetAudience"`, `"valueProposition"`,
		`"coreTasks"`, `"inputs"`, `"outputs"`, `"dataSources"`, `"kpis"`,
		`"guardrails"`, `"notes"`, `"examplePrompts"`,
	}
	s := string(data)
	last := -1
	for _, key := range order {
		idx := strings.Index(s, key)
		require.Greater(t, idx, last, "key %s out of order", key)
		last = idx
	}
}

func TestAgentProfileJSON_NilNotesNull(t *testing.T) {
	data, err := json.Marshal(AgentProfile{Name: "n", Codename: "C"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"notes":null`)
}

func TestClone_Isolated(t *testing.T) {
	orig := DefaultAgents()[0]
	c := orig.Clone()

	c.KPIs[0] = "mutated"
	c.Name = "mutated"
	notes := "mutated"
	c.Notes = &notes

	assert.NotEqual(t, c.KPIs[0], orig.KPIs[0])
	assert.NotEqual(t, c.Name, orig.Name)
	assert.Nil(t, orig.Notes)
}

func TestClone_PreservesNilSlices(t *testing.T) {
	c := AgentProfile{Name: "n", Codename: "C"}.Clone()
	assert.Nil(t, c.CoreTasks)
	assert.Nil(t, c.ExamplePrompts)
}
