package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schooldesk/school-api/internal/api/shared"
	"github.com/schooldesk/school-api/internal/domain"
	"github.com/schooldesk/school-api/internal/mocks"
	"github.com/schooldesk/school-api/internal/service/school"
)

func newStudentRouter(students *mocks.MockStudentStore, courses *mocks.MockCourseStore) chi.Router {
	handler := NewStudentHandler(school.NewStudentService(students, courses))

	r := chi.NewRouter()
	r.Get("/students", handler.List)
	r.Post("/students", handler.Create)
	r.Get("/students/{id}", handler.Get)
	r.Put("/students/{id}", handler.Update)
	r.Put("/students/{id}/enroll-course", handler.EnrollCourse)
	r.Put("/students/{id}/remove-course", handler.RemoveCourse)
	r.Delete("/students/{id}", handler.Delete)
	return r
}

func seedCourse(t *testing.T, courses *mocks.MockCourseStore) *domain.Course {
	t.Helper()
	course, err := domain.NewCourse("Algebra I", "MATH101", 3)
	require.NoError(t, err)
	require.NoError(t, courses.Create(context.Background(), course))
	return course
}

func createStudent(t *testing.T, router http.Handler) StudentResponse {
	t.Helper()
	recorder := postJSON(t, router, "/students", map[string]interface{}{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
		"age":   21,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var student StudentResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&student))
	return student
}

func TestStudentHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("creates student with empty course list", func(t *testing.T) {
		t.Parallel()
		router := newStudentRouter(mocks.NewMockStudentStore(), mocks.NewMockCourseStore())

		student := createStudent(t, router)
		assert.Equal(t, "Ada Lovelace", student.Name)
		assert.NotNil(t, student.Courses)
		assert.Empty(t, student.Courses)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		t.Parallel()
		router := newStudentRouter(mocks.NewMockStudentStore(), mocks.NewMockCourseStore())
		createStudent(t, router)

		recorder := postJSON(t, router, "/students", map[string]interface{}{
			"name":  "Ada Byron",
			"email": "ada@example.com",
			"age":   22,
		})
		assert.Equal(t, http.StatusConflict, recorder.Code)

		var body shared.ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
		assert.Equal(t, "Student with this email already exists", body.Message)
	})

	t.Run("age bounds enforced", func(t *testing.T) {
		t.Parallel()
		router := newStudentRouter(mocks.NewMockStudentStore(), mocks.NewMockCourseStore())

		for _, age := range []int{0, -1, 121} {
			recorder := postJSON(t, router, "/students", map[string]interface{}{
				"name":  "Ada Lovelace",
				"email": "ada@example.com",
				"age":   age,
			})
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		}
	})
}

func TestStudentHandler_EnrollCourse(t *testing.T) {
	t.Parallel()

	t.Run("enrolls and returns expanded courses", func(t *testing.T) {
		t.Parallel()
		courses := mocks.NewMockCourseStore()
		router := newStudentRouter(mocks.NewMockStudentStore(), courses)
		course := seedCourse(t, courses)
		student := createStudent(t, router)

		recorder := putJSON(t, router, "/students/"+student.ID.String()+"/enroll-course",
			map[string]interface{}{"courseId": course.ID.String()})
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp StudentResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		require.Len(t, resp.Courses, 1)
		assert.Equal(t, course.ID, resp.Courses[0].ID)
	})

	t.Run("repeat enrollment returns the same single course", func(t *testing.T) {
		t.Parallel()
		courses := mocks.NewMockCourseStore()
		router := newStudentRouter(mocks.NewMockStudentStore(), courses)
		course := seedCourse(t, courses)
		student := createStudent(t, router)

		path := "/students/" + student.ID.String() + "/enroll-course"
		payload := map[string]interface{}{"courseId": course.ID.String()}

		require.Equal(t, http.StatusOK, putJSON(t, router, path, payload).Code)
		recorder := putJSON(t, router, path, payload)
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp StudentResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Len(t, resp.Courses, 1)
	})

	t.Run("missing course", func(t *testing.T) {
		t.Parallel()
		router := newStudentRouter(mocks.NewMockStudentStore(), mocks.NewMockCourseStore())
		student := createStudent(t, router)

		recorder := putJSON(t, router, "/students/"+student.ID.String()+"/enroll-course",
			map[string]interface{}{"courseId": "6ba7b810-9dad-11d1-80b4-00c04fd430c8"})
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var body shared.ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
		assert.Equal(t, "Cannot enroll: Course not found", body.Message)
	})

	t.Run("missing student", func(t *testing.T) {
		t.Parallel()
		courses := mocks.NewMockCourseStore()
		router := newStudentRouter(mocks.NewMockStudentStore(), courses)
		course := seedCourse(t, courses)

		recorder := putJSON(t, router,
			"/students/6ba7b810-9dad-11d1-80b4-00c04fd430c8/enroll-course",
			map[string]interface{}{"courseId": course.ID.String()})
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var body shared.ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
		assert.Equal(t, "Student not found", body.Message)
	})

	t.Run("malformed course id", func(t *testing.T) {
		t.Parallel()
		router := newStudentRouter(mocks.NewMockStudentStore(), mocks.NewMockCourseStore())
		student := createStudent(t, router)

		recorder := putJSON(t, router, "/students/"+student.ID.String()+"/enroll-course",
			map[string]interface{}{"courseId": "not-a-uuid"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestStudentHandler_RemoveCourse(t *testing.T) {
	t.Parallel()

	t.Run("removes an enrolled course", func(t *testing.T) {
		t.Parallel()
		courses := mocks.NewMockCourseStore()
		router := newStudentRouter(mocks.NewMockStudentStore(), courses)
		course := seedCourse(t, courses)
		student := createStudent(t, router)

		payload := map[string]interface{}{"courseId": course.ID.String()}
		require.Equal(t, http.StatusOK,
			putJSON(t, router, "/students/"+student.ID.String()+"/enroll-course", payload).Code)

		recorder := putJSON(t, router, "/students/"+student.ID.String()+"/remove-course", payload)
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp StudentResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Empty(t, resp.Courses)
	})

	t.Run("removing an unenrolled course succeeds", func(t *testing.T) {
		t.Parallel()
		courses := mocks.NewMockCourseStore()
		router := newStudentRouter(mocks.NewMockStudentStore(), courses)
		course := seedCourse(t, courses)
		student := createStudent(t, router)

		recorder := putJSON(t, router, "/students/"+student.ID.String()+"/remove-course",
			map[string]interface{}{"courseId": course.ID.String()})
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestStudentHandler_List(t *testing.T) {
	t.Parallel()

	router := newStudentRouter(mocks.NewMockStudentStore(), mocks.NewMockCourseStore())

	t.Run("empty list is an array", func(t *testing.T) {
		recorder := doRequest(router, "GET", "/students")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[]`, recorder.Body.String())
	})

	t.Run("lists created students", func(t *testing.T) {
		createStudent(t, router)

		recorder := doRequest(router, "GET", "/students")
		require.Equal(t, http.StatusOK, recorder.Code)

		var students []StudentResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&students))
		require.Len(t, students, 1)
		assert.Equal(t, "Ada Lovelace", students[0].Name)
	})
}

func TestStudentHandler_Delete(t *testing.T) {
	t.Parallel()

	router := newStudentRouter(mocks.NewMockStudentStore(), mocks.NewMockCourseStore())
	student := createStudent(t, router)

	recorder := doRequest(router, "DELETE", "/students/"+student.ID.String())
	require.Equal(t, http.StatusOK, recorder.Code)

	var msg MessageResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&msg))
	assert.Equal(t, "Student deleted successfully", msg.Message)

	assert.Equal(t, http.StatusNotFound,
		doRequest(router, "GET", "/students/"+student.ID.String()).Code)
}
