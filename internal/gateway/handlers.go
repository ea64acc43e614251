package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/beofficial/commandcenter/internal/digest"
	"github.com/beofficial/commandcenter/internal/domain"
	"github.com/beofficial/commandcenter/internal/export"
	"github.com/beofficial/commandcenter/internal/mail"
	"github.com/beofficial/commandcenter/internal/roster"
)

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Agents  int    `json:"agents,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeRosterError maps store errors onto HTTP statuses.
func writeRosterError(w http.ResponseWriter, err error) {
	var nferr *roster.NotFoundError
	if errors.As(err, &nferr) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	var verr *roster.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Version: s.version,
		Agents:  s.store.Len(),
	}
	if !s.startedAt.IsZero() {
		resp.Uptime = time.Since(s.startedAt).Round(time.Second).String()
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleNotFound returns a 404 for unknown routes.
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": "not found",
		"path":  r.URL.Path,
	})
}

// --- Roster handlers ---

type agentListResponse struct {
	Agents []domain.AgentProfile `json:"agents"`
}

func (s *Server) handleAgentList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, agentListResponse{Agents: s.store.List()})
}

func (s *Server) handleAgentGet(w http.ResponseWriter, r *http.Request) {
	agent, err := s.store.Get(r.PathValue("codename"))
	if err != nil {
		writeRosterError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agent)
}

// agentUpdate carries one field write. Value is a JSON string for text
// fields and a JSON array of strings for list fields.
type agentUpdate struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

func (s *Server) handleAgentUpdate(w http.ResponseWriter, r *http.Request) {
	codename := r.PathValue("codename")

	var upd agentUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if upd.Field == "" {
		writeError(w, http.StatusBadRequest, "field is required")
		return
	}

	var err error
	if roster.IsListField(upd.Field) {
		var values []string
		if jsonErr := json.Unmarshal(upd.Value, &values); jsonErr != nil {
			writeError(w, http.StatusBadRequest, upd.Field+": value must be an array of strings")
			return
		}
		err = s.store.SetList(codename, upd.Field, values)
	} else {
		var value string
		if jsonErr := json.Unmarshal(upd.Value, &value); jsonErr != nil {
			writeError(w, http.StatusBadRequest, upd.Field+": value must be a string")
			return
		}
		err = s.store.SetText(codename, upd.Field, value)
	}
	if err != nil {
		writeRosterError(w, err)
		return
	}

	agent, err := s.store.Get(codename)
	if err != nil {
		// The write may have renamed the codename; re-read is best effort.
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
		return
	}
	writeJSON(w, http.StatusOK, agent)
}

// --- Export handler ---

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.encoder.Encode(s.store.List())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.AgentsFilename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// --- Digest handlers ---

type digestPreviewResponse struct {
	Body string `json:"body"`
}

func (s *Server) handleDigestPreview(w http.ResponseWriter, r *http.Request) {
	var draft domain.EmailDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, digestPreviewResponse{Body: digest.Render(draft)})
}

type digestSendRequest struct {
	To      string   `json:"to"`
	Subject string   `json:"subject"`
	Intro   string   `json:"intro"`
	Bullets []string `json:"bullets"`
	Footer  string   `json:"footer"`
}

func (s *Server) handleDigestSend(w http.ResponseWriter, r *http.Request) {
	var req digestSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.To == "" {
		writeError(w, http.StatusBadRequest, "to is required")
		return
	}

	body := digest.Compose(req.Subject, req.Intro, req.Bullets, req.Footer)

	// Synchronous single attempt; the server's write timeout bounds it.
	if err := s.mailer.SendFromEnv(r.Context(), req.To, req.Subject, body); err != nil {
		var terr *mail.TransportError
		if errors.As(err, &terr) {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		// Missing or malformed SMTP_* environment configuration.
		writeError(w, http.StatusFailedDependency, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "sent", "to": req.To})
}
