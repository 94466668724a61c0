package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opportunest/opportunest-server/internal/metrics"
	"github.com/opportunest/opportunest-server/internal/service"
	"github.com/opportunest/opportunest-server/internal/transport/rest/response"
)

type applyRequest struct {
	ScholarshipID  string `json:"scholarshipId" validate:"required"`
	ApplicantName  string `json:"applicantName" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Address        string `json:"address" validate:"required"`
	Gender         string `json:"gender" validate:"required,oneof=male female other"`
	ApplyingDegree string `json:"applyingDegree" validate:"required"`
	SSCResult      string `json:"sscResult" validate:"required"`
	HSCResult      string `json:"hscResult" validate:"required"`
	StudyGap       string `json:"studyGap"`
	PhotoURL       string `json:"photoURL"`
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIdentity(r.Context())
	if !ok {
		response.Fail(w, http.StatusUnauthorized, "unauthorized access", nil)
		return
	}

	var req applyRequest
	if !decodeValid(w, r.Body, &req) {
		return
	}

	app, err := h.apps.Apply(r.Context(), service.ApplyCmd{
		ScholarshipID:  req.ScholarshipID,
		ApplicantName:  req.ApplicantName,
		Phone:          req.Phone,
		Address:        req.Address,
		Gender:         req.Gender,
		ApplyingDegree: req.ApplyingDegree,
		SSCResult:      req.SSCResult,
		HSCResult:      req.HSCResult,
		StudyGap:       req.StudyGap,
		PhotoURL:       req.PhotoURL,
	}, id.Email)
	if err != nil {
		response.Err(w, err)
		return
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	response.OK(w, http.StatusCreated, app)
}

func (h *Handler) MyApplications(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIdentity(r.Context())
	if !ok {
		response.Fail(w, http.StatusUnauthorized, "unauthorized access", nil)
		return
	}

	items, err := h.apps.ListMine(r.Context(), id.Email)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, http.StatusOK, items)
}

type applicationPatch struct {
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	Gender         *string `json:"gender" validate:"omitempty,oneof=male female other"`
	ApplyingDegree *string `json:"applyingDegree"`
	SSCResult      *string `json:"sscResult"`
	HSCResult      *string `json:"hscResult"`
	StudyGap       *string `json:"studyGap"`
	PhotoURL       *string `json:"photoURL"`
}

// UpdateApplication edits the caller's own pending application.
func (h *Handler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, _ := GetIdentity(r.Context())

	var req applicationPatch
	if !decodeValid(w, r.Body, &req) {
		return
	}

	upd := service.ApplicationUpdate{
		Phone:          req.Phone,
		Address:        req.Address,
		Gender:         req.Gender,
		ApplyingDegree: req.ApplyingDegree,
		SSCResult:      req.SSCResult,
		HSCResult:      req.HSCResult,
		StudyGap:       req.StudyGap,
		PhotoURL:       req.PhotoURL,
	}
	if err := h.apps.UpdateMine(r.Context(), chi.URLParam(r, "id"), id.Email, upd); err != nil {
		response.Err(w, err)
		return
	}
	response.OKMessage(w, http.StatusOK, "application updated")
}

// CancelApplication removes the caller's own application outright. This is the
// applicant withdrawing, distinct from a moderator marking it Rejected.
func (h *Handler) CancelApplication(w http.ResponseWriter, r *http.Request) {
	id, _ := GetIdentity(r.Context())

	if err := h.apps.Cancel(r.Context(), chi.URLParam(r, "id"), id.Email); err != nil {
		response.Err(w, err)
		return
	}
	response.OKMessage(w, http.StatusOK, "application cancelled")
}

func (h *Handler) AdminApplications(w http.ResponseWriter, r *http.Request) {
	items, err := h.apps.AdminList(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, http.StatusOK, items)
}

func (h *Handler) SetApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if !decodeValid(w, r.Body, &req) {
		return
	}

	if err := h.apps.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		response.Err(w, err)
		return
	}
	response.OKMessage(w, http.StatusOK, "status updated")
}

func (h *Handler) SetApplicationFeedback(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Feedback string `json:"feedback" validate:"required"`
	}
	if !decodeValid(w, r.Body, &req) {
		return
	}

	if err := h.apps.SetFeedback(r.Context(), chi.URLParam(r, "id"), req.Feedback); err != nil {
		response.Err(w, err)
		return
	}
	response.OKMessage(w, http.StatusOK, "feedback submitted")
}
