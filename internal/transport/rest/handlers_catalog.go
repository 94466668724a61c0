package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/opportunest/opportunest-server/internal/service"
	"github.com/opportunest/opportunest-server/internal/transport/rest/response"
)

type scholarshipRequest struct {
	ScholarshipName     string    `json:"scholarshipName" validate:"required"`
	UniversityName      string    `json:"universityName" validate:"required"`
	UniversityImage     string    `json:"universityImage"`
	UniversityCity      string    `json:"universityCity"`
	UniversityCountry   string    `json:"universityCountry"`
	UniversityWorldRank int       `json:"universityWorldRank" validate:"gte=0"`
	SubjectCategory     string    `json:"subjectCategory"`
	ScholarshipCategory string    `json:"scholarshipCategory"`
	Degree              string    `json:"degree"`
	TuitionFees         float64   `json:"tuitionFees" validate:"gte=0"`
	ApplicationFees     float64   `json:"applicationFees" validate:"gte=0"`
	ServiceCharge       float64   `json:"serviceCharge" validate:"gte=0"`
	ApplicationDeadline time.Time `json:"applicationDeadline"`
	Description         string    `json:"description"`
}

func (req *scholarshipRequest) toCmd() service.ScholarshipCmd {
	return service.ScholarshipCmd{
		ScholarshipName:     req.ScholarshipName,
		UniversityName:      req.UniversityName,
		UniversityImage:     req.UniversityImage,
		UniversityCity:      req.UniversityCity,
		UniversityCountry:   req.UniversityCountry,
		UniversityWorldRank: req.UniversityWorldRank,
		SubjectCategory:     req.SubjectCategory,
		ScholarshipCategory: req.ScholarshipCategory,
		Degree:              req.Degree,
		TuitionFees:         req.TuitionFees,
		ApplicationFees:     req.ApplicationFees,
		ServiceCharge:       req.ServiceCharge,
		ApplicationDeadline: req.ApplicationDeadline,
		Description:         req.Description,
	}
}

// ListScholarships is the public, searchable, paginated catalog.
func (h *Handler) ListScholarships(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := service.SearchFilter{
		Query: q.Get("search"),
		Page:  atoiDefault(q.Get("page"), 0),
		Limit: atoiDefault(q.Get("limit"), 0),
	}

	items, total, err := h.catalog.Search(r.Context(), f)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OKTotal(w, http.StatusOK, items, total)
}

func (h *Handler) GetScholarship(w http.ResponseWriter, r *http.Request) {
	s, err := h.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, http.StatusOK, s)
}

func (h *Handler) TopScholarships(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.Top(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, http.StatusOK, items)
}

// AdminListScholarships dumps the unpaginated catalog for the manage table.
func (h *Handler) AdminListScholarships(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListAll(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, http.StatusOK, items)
}

func (h *Handler) CreateScholarship(w http.ResponseWriter, r *http.Request) {
	id, _ := GetIdentity(r.Context())

	var req scholarshipRequest
	if !decodeValid(w, r.Body, &req) {
		return
	}

	s, err := h.catalog.Create(r.Context(), req.toCmd(), id.Email)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, http.StatusCreated, s)
}

func (h *Handler) UpdateScholarship(w http.ResponseWriter, r *http.Request) {
	var req scholarshipRequest
	if !decodeValid(w, r.Body, &req) {
		return
	}

	if err := h.catalog.Update(r.Context(), chi.URLParam(r, "id"), req.toCmd()); err != nil {
		response.Err(w, err)
		return
	}
	response.OKMessage(w, http.StatusOK, "scholarship updated")
}

func (h *Handler) DeleteScholarship(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Err(w, err)
		return
	}
	response.OKMessage(w, http.StatusOK, "scholarship deleted")
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
