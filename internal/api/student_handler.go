package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/api/shared"
	"github.com/schooldesk/school-api/internal/service/school"
)

// StudentHandler handles student management and enrollment requests.
type StudentHandler struct {
	studentService *school.StudentService
}

// NewStudentHandler creates a new StudentHandler with the given dependencies.
func NewStudentHandler(studentService *school.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// List handles GET /students.
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.studentService.List(r.Context())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	students := make([]StudentResponse, 0, len(details))
	for i := range details {
		students = append(students, newStudentResponse(&details[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, students)
}

// Get handles GET /students/{id}.
func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	detail, err := h.studentService.Get(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newStudentResponse(detail))
}

// Create handles POST /students (admin only).
func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateStudentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	student, err := h.studentService.Create(r.Context(), req.Name, req.Email, req.Age)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, newStudentResponse(&school.StudentDetail{
		Student: student,
	}))
}

// Update handles PUT /students/{id}.
func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateStudentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := h.studentService.Update(r.Context(), id, school.StudentUpdate{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newStudentResponse(detail))
}

// EnrollCourse handles PUT /students/{id}/enroll-course.
func (h *StudentHandler) EnrollCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	courseID, ok := h.parseEnrollBody(w, r)
	if !ok {
		return
	}

	detail, err := h.studentService.Enroll(r.Context(), id, courseID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newStudentResponse(detail))
}

// RemoveCourse handles PUT /students/{id}/remove-course.
func (h *StudentHandler) RemoveCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	courseID, ok := h.parseEnrollBody(w, r)
	if !ok {
		return
	}

	detail, err := h.studentService.Unenroll(r.Context(), id, courseID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newStudentResponse(detail))
}

// Delete handles DELETE /students/{id} (admin only).
func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.studentService.Delete(r.Context(), id); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Student deleted successfully",
	})
}

func (h *StudentHandler) parseEnrollBody(
	w http.ResponseWriter,
	r *http.Request,
) (uuid.UUID, bool) {
	var req EnrollRequest
	if !decodeAndValidate(w, r, &req) {
		return uuid.Nil, false
	}

	// The uuid tag already validated the format.
	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid id format")
		return uuid.Nil, false
	}
	return courseID, true
}
