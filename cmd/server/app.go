package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/schooldesk/school-api/internal/config"
	"github.com/schooldesk/school-api/internal/platform/postgres"
	"github.com/schooldesk/school-api/internal/service/auth"
	"github.com/schooldesk/school-api/internal/service/school"
	"github.com/schooldesk/school-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	studentStore store.StudentStore
	teacherStore store.TeacherStore
	courseStore  store.CourseStore

	// Services
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	studentService   *school.StudentService
	teacherService   *school.TeacherService
	courseService    *school.CourseService
}

// newApplication wires the dependency graph: stores over the shared
// database handle, then the services over the stores.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,

		userStore:    postgres.NewPostgresUserStore(db),
		studentStore: postgres.NewPostgresStudentStore(db),
		teacherStore: postgres.NewPostgresTeacherStore(db),
		courseStore:  postgres.NewPostgresCourseStore(db),

		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
	}

	app.courseService = school.NewCourseService(app.courseStore)
	app.studentService = school.NewStudentService(app.studentStore, app.courseStore)
	app.teacherService = school.NewTeacherService(app.teacherStore, app.courseStore)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
