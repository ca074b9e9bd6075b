package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/api/shared"
	"github.com/schooldesk/school-api/internal/service/school"
)

// TeacherHandler handles teacher management and course assignment requests.
type TeacherHandler struct {
	teacherService *school.TeacherService
}

// NewTeacherHandler creates a new TeacherHandler with the given dependencies.
func NewTeacherHandler(teacherService *school.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherService: teacherService}
}

// List handles GET /teachers.
func (h *TeacherHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.teacherService.List(r.Context())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	teachers := make([]TeacherResponse, 0, len(details))
	for i := range details {
		teachers = append(teachers, newTeacherResponse(&details[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, teachers)
}

// Get handles GET /teachers/{id}.
func (h *TeacherHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	detail, err := h.teacherService.Get(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newTeacherResponse(detail))
}

// Create handles POST /teachers (admin only).
func (h *TeacherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTeacherRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	teacher, err := h.teacherService.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, newTeacherResponse(&school.TeacherDetail{
		Teacher: teacher,
	}))
}

// Update handles PUT /teachers/{id}.
func (h *TeacherHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateTeacherRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := h.teacherService.Update(r.Context(), id, school.TeacherUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newTeacherResponse(detail))
}

// EnrollCourse handles PUT /teachers/{id}/enroll-course.
func (h *TeacherHandler) EnrollCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	courseID, ok := h.parseEnrollBody(w, r)
	if !ok {
		return
	}

	detail, err := h.teacherService.Enroll(r.Context(), id, courseID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newTeacherResponse(detail))
}

// RemoveCourse handles PUT /teachers/{id}/remove-course.
func (h *TeacherHandler) RemoveCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	courseID, ok := h.parseEnrollBody(w, r)
	if !ok {
		return
	}

	detail, err := h.teacherService.Unenroll(r.Context(), id, courseID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newTeacherResponse(detail))
}

// Delete handles DELETE /teachers/{id} (admin only).
func (h *TeacherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.teacherService.Delete(r.Context(), id); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Teacher deleted successfully",
	})
}

func (h *TeacherHandler) parseEnrollBody(
	w http.ResponseWriter,
	r *http.Request,
) (uuid.UUID, bool) {
	var req EnrollRequest
	if !decodeAndValidate(w, r, &req) {
		return uuid.Nil, false
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid id format")
		return uuid.Nil, false
	}
	return courseID, true
}
