package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opportunest/opportunest-server/internal/service"
	"github.com/opportunest/opportunest-server/internal/transport/rest/response"
)

type reviewRequest struct {
	ScholarshipID string `json:"scholarship_id" validate:"required"`
	RatingPoint   int    `json:"ratingPoint" validate:"required,min=1,max=5"`
	Comments      string `json:"reviewerComments" validate:"required"`
}

// AddReview creates a review; reviewer identity comes from the token, not the
// body.
func (h *Handler) AddReview(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIdentity(r.Context())
	if !ok {
		response.Fail(w, http.StatusUnauthorized, "unauthorized access", nil)
		return
	}

	var req reviewRequest
	if !decodeValid(w, r.Body, &req) {
		return
	}

	rev, err := h.reviews.Add(r.Context(), service.ReviewCmd{
		ScholarshipID: req.ScholarshipID,
		RatingPoint:   req.RatingPoint,
		Comments:      req.Comments,
	}, id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, http.StatusCreated, rev)
}

// ReviewsByScholarship is public: the scholarship detail page shows reviews to
// anonymous visitors.
func (h *Handler) ReviewsByScholarship(w http.ResponseWriter, r *http.Request) {
	items, err := h.reviews.ByScholarship(r.Context(), chi.URLParam(r, "scholarshipID"))
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, http.StatusOK, items)
}

func (h *Handler) MyReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIdentity(r.Context())
	if !ok {
		response.Fail(w, http.StatusUnauthorized, "unauthorized access", nil)
		return
	}

	items, err := h.reviews.Mine(r.Context(), id.Email)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, http.StatusOK, items)
}

func (h *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, _ := GetIdentity(r.Context())

	var req struct {
		RatingPoint int    `json:"ratingPoint" validate:"required,min=1,max=5"`
		Comments    string `json:"reviewerComments" validate:"required"`
	}
	if !decodeValid(w, r.Body, &req) {
		return
	}

	if err := h.reviews.UpdateMine(r.Context(), chi.URLParam(r, "id"), id.Email, req.RatingPoint, req.Comments); err != nil {
		response.Err(w, err)
		return
	}
	response.OKMessage(w, http.StatusOK, "review updated")
}

func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, _ := GetIdentity(r.Context())

	if err := h.reviews.DeleteMine(r.Context(), chi.URLParam(r, "id"), id.Email); err != nil {
		response.Err(w, err)
		return
	}
	response.OKMessage(w, http.StatusOK, "review deleted")
}

// AdminReviews lists every review joined with its scholarship for moderation.
func (h *Handler) AdminReviews(w http.ResponseWriter, r *http.Request) {
	items, err := h.reviews.AdminList(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, http.StatusOK, items)
}

func (h *Handler) AdminDeleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.reviews.AdminDelete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Err(w, err)
		return
	}
	response.OKMessage(w, http.StatusOK, "review deleted")
}
