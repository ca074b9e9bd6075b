package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/schooldesk/school-api/internal/api"
	apiMiddleware "github.com/schooldesk/school-api/internal/api/middleware"
	"github.com/schooldesk/school-api/internal/domain"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Public routes are limited to registration, login, and the
// health check; everything else sits behind the access gate.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	studentHandler := api.NewStudentHandler(app.studentService)
	teacherHandler := api.NewTeacherHandler(app.teacherService)
	courseHandler := api.NewCourseHandler(app.courseService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	adminOnly := authMiddleware.RequireRole(domain.RoleAdmin)

	// Authentication endpoints (public)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/auth/profile", authHandler.Profile)

		r.Route("/students", func(r chi.Router) {
			r.Get("/", studentHandler.List)
			r.Get("/{id}", studentHandler.Get)
			r.With(adminOnly).Post("/", studentHandler.Create)
			r.Put("/{id}", studentHandler.Update)
			r.Put("/{id}/enroll-course", studentHandler.EnrollCourse)
			r.Put("/{id}/remove-course", studentHandler.RemoveCourse)
			r.With(adminOnly).Delete("/{id}", studentHandler.Delete)
		})

		r.Route("/teachers", func(r chi.Router) {
			r.Get("/", teacherHandler.List)
			r.Get("/{id}", teacherHandler.Get)
			r.With(adminOnly).Post("/", teacherHandler.Create)
			r.Put("/{id}", teacherHandler.Update)
			r.Put("/{id}/enroll-course", teacherHandler.EnrollCourse)
			r.Put("/{id}/remove-course", teacherHandler.RemoveCourse)
			r.With(adminOnly).Delete("/{id}", teacherHandler.Delete)
		})

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", courseHandler.List)
			r.Get("/{id}", courseHandler.Get)
			r.With(adminOnly).Post("/", courseHandler.Create)
			r.With(authMiddleware.RequireRole(domain.RoleUser, domain.RoleAdmin)).
				Put("/{id}", courseHandler.Update)
			r.With(adminOnly).Delete("/{id}", courseHandler.Delete)
		})
	})

	// Health check endpoint; no auth, no database access.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
