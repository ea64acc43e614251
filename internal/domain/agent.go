// Package domain defines the core types of the BeOfficial command center:
// marketing agent profiles, digest drafts, and roster status entries.
package domain

// AgentProfile describes one marketing/operations function of the BeOfficial
// team — a mission, its tasks, KPIs, and guardrails. Field order here is the
// canonical serialization order for exports.
type AgentProfile struct {
	Name             string   `json:"name"`
	Codename         string   `json:"codename"`
	Mission          string   `json:"mission"`
	TargetAudience   string   `json:"targetAudience"`
	ValueProposition string   `json:"valueProposition"`
	CoreTasks        []string `json:"coreTasks"`
	Inputs           []string `json:"inputs"`
	Outputs          []string `json:"outputs"`
	DataSources      []string `json:"dataSources"`
	KPIs             []string `json:"kpis"`
	Guardrails       []string `json:"guardrails"`
	Notes            *string  `json:"notes"`
	ExamplePrompts   []string `json:"examplePrompts"`
}

// Clone returns a deep copy so callers can mutate the result without
// aliasing the stored record.
func (a AgentProfile) Clone() AgentProfile {
	c := a
	c.CoreTasks = cloneStrings(a.CoreTasks)
	c.Inputs = cloneStrings(a.Inputs)
	c.Outputs = cloneStrings(a.Outputs)
	c.DataSources = cloneStrings(a.DataSources)
	c.KPIs = cloneStrings(a.KPIs)
	c.Guardrails = cloneStrings(a.Guardrails)
	c.ExamplePrompts = cloneStrings(a.ExamplePrompts)
	if a.Notes != nil {
		n := *a.Notes
		c.Notes = &n
	}
	return c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// EmailDraft is the transient input to the digest composer. It is built on
// demand, rendered once, and discarded.
type EmailDraft struct {
	Subject string   `json:"subject"`
	Intro   string   `json:"intro"`
	Bullets []string `json:"bullets"`
	Footer  string   `json:"footer"`
}

// AgentStatus is a dashboard entry for one agent: a short status label,
// completion fraction in [0,1], and the next planned action.
type AgentStatus struct {
	Status     string  `json:"status"`
	Progress   float64 `json:"progress"`
	NextAction string  `json:"nextAction"`
}
