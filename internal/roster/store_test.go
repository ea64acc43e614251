package roster

import (
	"errors"
	"testing"

	"github.com/beofficial/commandcenter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Construction tests ---

func TestNew_RejectsEmptyName(t *testing.T) {
	_, err := New([]domain.AgentProfile{{Name: "  ", Codename: "X"}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldName, verr.Field)
}

func TestNew_RejectsEmptyCodename(t *testing.T) {
	_, err := New([]domain.AgentProfile{{Name: "x", Codename: ""}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldCodename, verr.Field)
}

func TestNew_RejectsDuplicateCodename(t *testing.T) {
	_, err := New([]domain.AgentProfile{
		{Name: "a", Codename: "X"},
		{Name: "b", Codename: "X"},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "duplicate")
}

func TestNewDefault_SeedsFive(t *testing.T) {
	s := NewDefault()
	assert.Equal(t, 5, s.Len())
}

// --- Lookup tests ---

func TestGet_SeedCodename(t *testing.T) {
	s := NewDefault()

	a, err := s.Get("SCRIBE")
	require.NoError(t, err)
	assert.NotEmpty(t, a.Mission)
}

func TestGet_NotFound(t *testing.T) {
	s := NewDefault()

	_, err := s.Get("NOPE")
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "NOPE", nferr.Codename)
}

func TestList_OrderAndIsolation(t *testing.T) {
	s := NewDefault()

	agents := s.List()
	require.Len(t, agents, 5)
	assert.Equal(t, "SCRIBE", agents[0].Codename)
	assert.Equal(t, "RALLY", agents[4].Codename)

	// Mutating the returned slice must not touch the store.
	agents[0].KPIs[0] = "mutated"
	fresh, err := s.Get("SCRIBE")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh.KPIs[0])
}

// --- Text field updates ---

func TestSetText_Mission(t *testing.T) {
	s := NewDefault()

	require.NoError(t, s.SetText("SCRIBE", FieldMission, "new mission"))
	a, err := s.Get("SCRIBE")
	require.NoError(t, err)
	assert.Equal(t, "new mission", a.Mission)
}

func TestSetText_EmptyNameRejected(t *testing.T) {
	s := NewDefault()

	err := s.SetText("SCRIBE", FieldName, "   ")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// All-or-nothing: the old value survives a rejected write.
	a, getErr := s.Get("SCRIBE")
	require.NoError(t, getErr)
	assert.Equal(t, "Weekly Recruiting Newsletter Writer", a.Name)
}

func TestSetText_RenameCodename(t *testing.T) {
	s := NewDefault()

	require.NoError(t, s.SetText("SCRIBE", FieldCodename, "QUILL"))

	_, err := s.Get("SCRIBE")
	assert.Error(t, err)

	a, err := s.Get("QUILL")
	require.NoError(t, err)
	assert.Equal(t, "QUILL", a.Codename)
}

func TestSetText_RenameToExistingCodenameRejected(t *testing.T) {
	s := NewDefault()

	err := s.SetText("SCRIBE", FieldCodename, "SPARK")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "duplicate")
}

func TestSetText_NotesSetAndClear(t *testing.T) {
	s := NewDefault()

	require.NoError(t, s.SetText("SCRIBE", FieldNotes, "remember the voice guide"))
	a, err := s.Get("SCRIBE")
	require.NoError(t, err)
	require.NotNil(t, a.Notes)
	assert.Equal(t, "remember the voice guide", *a.Notes)

	require.NoError(t, s.SetText("SCRIBE", FieldNotes, ""))
	a, err = s.Get("SCRIBE")
	require.NoError(t, err)
	assert.Nil(t, a.Notes)
}

func TestSetText_UnknownField(t *testing.T) {
	s := NewDefault()

	err := s.SetText("SCRIBE", "budget", "x")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "unknown field", verr.Message)
}

func TestSetText_ListFieldRejected(t *testing.T) {
	s := NewDefault()

	err := s.SetText("SCRIBE", FieldKPIs, "x")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is a list field", verr.Message)
}

func TestSetText_NotFound(t *testing.T) {
	s := NewDefault()

	err := s.SetText("NOPE", FieldMission, "x")
	var nferr *NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

// --- List field updates ---

func TestSetList_ReplacesAndFiltersBlanks(t *testing.T) {
	s := NewDefault()

	require.NoError(t, s.SetList("SPARK", FieldKPIs, []string{"", "  ", "reach", "\t", "saves"}))
	a, err := s.Get("SPARK")
	require.NoError(t, err)
	assert.Equal(t, []string{"reach", "saves"}, a.KPIs)
}

func TestSetList_AllBlanksYieldsEmpty(t *testing.T) {
	s := NewDefault()

	require.NoError(t, s.SetList("SPARK", FieldGuardrails, []string{"", "   "}))
	a, err := s.Get("SPARK")
	require.NoError(t, err)
	assert.Empty(t, a.Guardrails)
	assert.NotNil(t, a.Guardrails)
}

func TestSetList_TextFieldRejected(t *testing.T) {
	s := NewDefault()

	err := s.SetList("SPARK", FieldMission, []string{"x"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is a text field", verr.Message)
}

func TestSetList_NotFound(t *testing.T) {
	s := NewDefault()

	err := s.SetList("NOPE", FieldKPIs, []string{"x"})
	var nferr *NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

// --- Field classification ---

func TestFieldClassification(t *testing.T) {
	assert.True(t, IsTextField(FieldMission))
	assert.True(t, IsTextField(FieldNotes))
	assert.False(t, IsTextField(FieldKPIs))

	assert.True(t, IsListField(FieldKPIs))
	assert.True(t, IsListField(FieldExamplePrompts))
	assert.False(t, IsListField(FieldName))

	assert.False(t, IsTextField("nope"))
	assert.False(t, IsListField("nope"))
}

func TestErrorsAreComparable(t *testing.T) {
	err := error(&NotFoundError{Codename: "X"})
	assert.False(t, errors.As(err, new(*ValidationError)))
	assert.Contains(t, err.Error(), `"X"`)
}
