package api

import (
	"net/http"

	"github.com/schooldesk/school-api/internal/api/shared"
	"github.com/schooldesk/school-api/internal/service/school"
)

// CourseHandler handles course management requests.
type CourseHandler struct {
	courseService *school.CourseService
}

// NewCourseHandler creates a new CourseHandler with the given dependencies.
func NewCourseHandler(courseService *school.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List handles GET /courses.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.List(r.Context())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, courses)
}

// Get handles GET /courses/{id}.
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	course, err := h.courseService.Get(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, course)
}

// Create handles POST /courses (admin only).
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCourseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	course, err := h.courseService.Create(r.Context(), req.Title, req.Code, req.Credits)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, course)
}

// Update handles PUT /courses/{id}.
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateCourseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	course, err := h.courseService.Update(r.Context(), id, school.CourseUpdate{
		Title:   req.Title,
		Code:    req.Code,
		Credits: req.Credits,
	})
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, course)
}

// Delete handles DELETE /courses/{id} (admin only). Enrollments referencing
// the course are left in place; they fall out of expanded reads.
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.courseService.Delete(r.Context(), id); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Course deleted successfully",
	})
}
