package v1handler

import (
	"net/http"

	"guardian/internal/privacy"
)

// removalRequestRequest is the payload for generating a removal letter.
type removalRequestRequest struct {
	DataType string `json:"dataType"`
	Service  string `json:"service"`
}

// GetRemovalGuides returns the opt-out guide catalog.
func (h Handler) GetRemovalGuides(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, privacy.Guides())
}

// GetPrivacyChecklist returns the recurring privacy maintenance checklist.
func (h Handler) GetPrivacyChecklist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, privacy.Checklist())
}

// CreateRemovalRequest renders a data removal letter for a data type and
// target service. Generation is stateless; nothing is persisted.
func (h Handler) CreateRemovalRequest(w http.ResponseWriter, r *http.Request) {
	var req removalRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	letter, err := privacy.GenerateRemovalRequest(req.DataType, req.Service)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, letter)
}
