package v1handler

import (
	"net/http"
	"strconv"

	"guardian/pkg/domain"
	"guardian/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// exposureCheckRequest is the payload for starting an exposure check.
type exposureCheckRequest struct {
	Email          string `json:"email"`
	Identifier     string `json:"identifier"`
	IdentifierKind string `json:"identifierKind"`
}

// hygieneReportRequest is the payload for submitting questionnaire answers.
type hygieneReportRequest struct {
	Answers []hygieneAnswer `json:"answers"`
}

type hygieneAnswer struct {
	QuestionID string `json:"questionId"`
	Value      int    `json:"value"`
}

// reportListResponse is the paginated report history payload.
type reportListResponse struct {
	Reports    []domain.Report `json:"reports"`
	TotalPages uint            `json:"totalPages"`
}

// CreateExposureCheck runs an exposure check for the authenticated owner and
// returns the persisted report.
func (h Handler) CreateExposureCheck(w http.ResponseWriter, r *http.Request) {
	var req exposureCheckRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	report, err := h.deps.Monitor.CheckExposure(r.Context(), GetOwnerIDFromContext(r.Context()),
		domain.ExposureQuery{
			Email:          req.Email,
			Identifier:     req.Identifier,
			IdentifierKind: domain.IdentifierKind(req.IdentifierKind),
		})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, report)
}

// CreateHygieneReport scores a questionnaire submission for the authenticated
// owner and returns the persisted report.
func (h Handler) CreateHygieneReport(w http.ResponseWriter, r *http.Request) {
	var req hygieneReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	answers := make(map[string]domain.HygieneAnswer, len(req.Answers))
	for _, a := range req.Answers {
		answers[a.QuestionID] = domain.HygieneAnswer{QuestionID: a.QuestionID, Value: a.Value}
	}

	report, err := h.deps.Monitor.AssessHygiene(r.Context(), GetOwnerIDFromContext(r.Context()), answers)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, report)
}

// GetQuestionnaire returns the active questionnaire definition.
func (h Handler) GetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.deps.Monitor.Questionnaire())
}

// ListReports returns one page of the owner's report history, newest first.
func (h Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	page, err := queryUint(r, "page")
	if err != nil {
		writeError(w, r, err)

		return
	}
	pageSize, err := queryUint(r, "pageSize")
	if err != nil {
		writeError(w, r, err)

		return
	}

	reports, totalPages, err := h.deps.Monitor.History(r.Context(), GetOwnerIDFromContext(r.Context()),
		domain.ReportKind(r.URL.Query().Get("kind")),
		page,
		pageSize)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, reportListResponse{
		Reports:    reports,
		TotalPages: totalPages,
	})
}

// GetReport returns one of the owner's reports by ID.
func (h Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := pathReportID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	report, err := h.deps.Monitor.Report(r.Context(), GetOwnerIDFromContext(r.Context()), reportID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, report)
}

// DeleteReport removes one of the owner's reports from history.
func (h Handler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := pathReportID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Monitor.Delete(r.Context(), GetOwnerIDFromContext(r.Context()), reportID); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathReportID(r *http.Request) (domain.ReportID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		return domain.ReportID{}, serrors.With(serrors.ErrBadRequest, "invalid report ID")
	}

	return domain.ReportID(id), nil
}

func queryUint(r *http.Request, name string) (uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid %s parameter", name)
	}

	return uint(value), nil
}
