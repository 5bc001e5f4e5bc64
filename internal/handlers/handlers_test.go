package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/timetrackhq/timesheet-api/internal/database"
	"github.com/timetrackhq/timesheet-api/internal/middleware"
	"github.com/timetrackhq/timesheet-api/internal/models"
	"github.com/timetrackhq/timesheet-api/internal/repository"
	"github.com/timetrackhq/timesheet-api/internal/services"
	"github.com/timetrackhq/timesheet-api/internal/utils"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine

	authService *services.AuthService
}

// setupTestEnv builds an in-memory database and a router with the full route
// table, mirroring the wiring in cmd/server.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.SetupJoinTable(&models.User{}, "Projects", &models.ProjectMember{}))
	require.NoError(t, db.SetupJoinTable(&models.Project{}, "Users", &models.ProjectMember{}))

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.Timesheet{},
		&models.AccessToken{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	timesheetRepo := repository.NewTimesheetRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	authService := services.NewAuthService(userRepo, tokenRepo)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, userRepo)
	timesheetService := services.NewTimesheetService(timesheetRepo, userRepo, projectRepo)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	projectHandler := NewProjectHandler(projectService)
	timesheetHandler := NewTimesheetHandler(timesheetService)

	router := gin.New()
	api := router.Group("/api")

	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(authService))

	protected.POST("/logout", authHandler.Logout)

	protected.GET("/users", userHandler.List)
	protected.POST("/users", userHandler.Create)
	protected.GET("/users/:id", userHandler.Get)
	protected.PUT("/users/update", userHandler.Update)
	protected.POST("/users/delete", userHandler.Delete)

	protected.GET("/projects", projectHandler.List)
	protected.POST("/projects", projectHandler.Create)
	protected.GET("/projects/:id", projectHandler.Get)
	protected.PUT("/projects/update", projectHandler.Update)
	protected.POST("/projects/delete", projectHandler.Delete)
	protected.POST("/projects/assign-user", projectHandler.AssignUser)

	protected.GET("/timesheets", timesheetHandler.List)
	protected.POST("/timesheets", timesheetHandler.Create)
	protected.GET("/timesheets/:id", timesheetHandler.Get)
	protected.PUT("/timesheets/update", timesheetHandler.Update)
	protected.POST("/timesheets/delete", timesheetHandler.Delete)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:          db,
		router:      router,
		authService: authService,
	}
}

// request performs an HTTP request against the test router. A non-empty
// token goes into the Authorization header.
func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// envelope is the decoded {message, body} wrapper.
type envelope struct {
	Message interface{}                `json:"message"`
	Body    map[string]json.RawMessage `json:"body"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// createUser inserts a user directly, bypassing the API.
func (e *testEnv) createUser(t *testing.T, email, firstName, gender string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Secret123!"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		FirstName:    firstName,
		LastName:     "Tester",
		DateOfBirth:  date(1990, time.January, 1),
		Gender:       gender,
		Email:        email,
		PasswordHash: string(hash),
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

// createProject inserts a project directly, bypassing the API.
func (e *testEnv) createProject(t *testing.T, name, department string) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:       name,
		Department: department,
		StartDate:  date(2024, time.January, 1),
		EndDate:    date(2024, time.December, 31),
		Status:     "active",
	}
	require.NoError(t, e.db.Create(project).Error)
	return project
}

// createTimesheet inserts a timesheet directly, bypassing the API.
func (e *testEnv) createTimesheet(t *testing.T, userID, projectID uint64, taskName string) *models.Timesheet {
	t.Helper()

	timesheet := &models.Timesheet{
		TaskName:  taskName,
		Date:      date(2024, time.October, 10),
		Hours:     5,
		UserID:    userID,
		ProjectID: projectID,
	}
	require.NoError(t, e.db.Create(timesheet).Error)
	return timesheet
}

// issueToken stores a token hash for the user and returns the raw token,
// the same way the auth service does at login.
func (e *testEnv) issueToken(t *testing.T, userID uint64) string {
	t.Helper()

	raw, err := utils.GenerateToken()
	require.NoError(t, err)

	token := &models.AccessToken{
		Name:      "test",
		TokenHash: utils.HashToken(raw),
		UserID:    userID,
	}
	require.NoError(t, e.db.Create(token).Error)
	return raw
}
