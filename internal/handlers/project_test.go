package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timetrackhq/timesheet-api/internal/models"
)

func TestProjectCreate(t *testing.T) {
	env := setupTestEnv(t)
	caller := env.createUser(t, "caller@example.com", "Admin", "male")
	token := env.issueToken(t, caller.ID)

	w := env.request(t, http.MethodPost, "/api/projects", map[string]interface{}{
		"name":       "Project Alpha",
		"department": "IT",
		"start_date": "2024-01-01",
		"end_date":   "2024-12-31",
		"status":     "active",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeEnvelope(t, w)
	var project struct {
		ID        uint64 `json:"id"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	require.NoError(t, json.Unmarshal(resp.Body["project"], &project))
	require.NotZero(t, project.ID)
	require.Equal(t, "2024-01-01", project.StartDate)
	require.Equal(t, "2024-12-31", project.EndDate)
}

func TestProjectCreate_EndBeforeStart(t *testing.T) {
	env := setupTestEnv(t)
	caller := env.createUser(t, "caller@example.com", "Admin", "male")
	token := env.issueToken(t, caller.ID)

	w := env.request(t, http.MethodPost, "/api/projects", map[string]interface{}{
		"name":       "Backwards",
		"department": "IT",
		"start_date": "2024-12-31",
		"end_date":   "2024-01-01",
		"status":     "active",
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	env.db.Model(&models.Project{}).Count(&count)
	require.Zero(t, count)
}

func TestProjectList_FilterByDepartment(t *testing.T) {
	env := setupTestEnv(t)
	caller := env.createUser(t, "caller@example.com", "Admin", "male")
	token := env.issueToken(t, caller.ID)

	env.createProject(t, "Project Alpha", "IT")
	env.createProject(t, "Project Gamma", "IT")
	env.createProject(t, "Project Beta", "HR")

	w := env.request(t, http.MethodGet, "/api/projects?department=IT", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	var projects []struct {
		Department string `json:"department"`
	}
	require.NoError(t, json.Unmarshal(resp.Body["projects"], &projects))
	require.Len(t, projects, 2)
	for _, p := range projects {
		require.Equal(t, "IT", p.Department)
	}
}

func TestProjectList_FilterByNameSubstring(t *testing.T) {
	env := setupTestEnv(t)
	caller := env.createUser(t, "caller@example.com", "Admin", "male")
	token := env.issueToken(t, caller.ID)

	env.createProject(t, "Website Redesign", "IT")
	env.createProject(t, "Mobile App", "IT")

	w := env.request(t, http.MethodGet, "/api/projects?name=Redesign", nil, token)
	resp := decodeEnvelope(t, w)

	var projects []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(resp.Body["projects"], &projects))
	require.Len(t, projects, 1)
	require.Equal(t, "Website Redesign", projects[0].Name)
}

func TestProjectGet_IncludesUsersAndTimesheets(t *testing.T) {
	env := setupTestEnv(t)
	caller := env.createUser(t, "caller@example.com", "Admin", "male")
	token := env.issueToken(t, caller.ID)

	user := env.createUser(t, "member@example.com", "Jane", "female")
	project := env.createProject(t, "Project Alpha", "IT")
	require.NoError(t, env.db.Create(&models.ProjectMember{ProjectID: project.ID, UserID: user.ID}).Error)
	env.createTimesheet(t, user.ID, project.ID, "Development Task")

	w := env.request(t, http.MethodGet, fmt.Sprintf("/api/projects/%d", project.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	var got struct {
		Users []struct {
			Email string `json:"email"`
		} `json:"users"`
		Timesheets []struct {
			TaskName string `json:"task_name"`
		} `json:"timesheets"`
	}
	require.NoError(t, json.Unmarshal(resp.Body["project"], &got))
	require.Len(t, got.Users, 1)
	require.Equal(t, "member@example.com", got.Users[0].Email)
	require.Len(t, got.Timesheets, 1)

	// Membership pivot rows are never part of the response shape.
	require.NotContains(t, w.Body.String(), "project_members")
	require.NotContains(t, w.Body.String(), "pivot")
}

func TestProjectUpdate_Partial(t *testing.T) {
	env := setupTestEnv(t)
	caller := env.createUser(t, "caller@example.com", "Admin", "male")
	token := env.issueToken(t, caller.ID)

	project := env.createProject(t, "Project Alpha", "IT")

	w := env.request(t, http.MethodPut, "/api/projects/update", map[string]interface{}{
		"id":     project.ID,
		"status": "completed",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Project
	require.NoError(t, env.db.First(&updated, project.ID).Error)
	require.Equal(t, "completed", updated.Status)
	require.Equal(t, "Project Alpha", updated.Name)
}

func TestProjectUpdate_InvalidDateRange(t *testing.T) {
	env := setupTestEnv(t)
	caller := env.createUser(t, "caller@example.com", "Admin", "male")
	token := env.issueToken(t, caller.ID)

	project := env.createProject(t, "Project Alpha", "IT")

	// Moving the end date before the existing start date must fail.
	w := env.request(t, http.MethodPut, "/api/projects/update", map[string]interface{}{
		"id":       project.ID,
		"end_date": "2023-01-01",
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectDelete_CascadesTimesheets(t *testing.T) {
	env := setupTestEnv(t)
	caller := env.createUser(t, "caller@example.com", "Admin", "male")
	token := env.issueToken(t, caller.ID)

	userA := env.createUser(t, "a@example.com", "Ann", "female")
	userB := env.createUser(t, "b@example.com", "Bob", "male")
	project := env.createProject(t, "Doomed", "IT")
	env.createTimesheet(t, userA.ID, project.ID, "Task A")
	env.createTimesheet(t, userB.ID, project.ID, "Task B")
	require.NoError(t, env.db.Create(&models.ProjectMember{ProjectID: project.ID, UserID: userA.ID}).Error)

	w := env.request(t, http.MethodPost, "/api/projects/delete", map[string]interface{}{"id": project.ID}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var timesheets, memberships, projects int64
	env.db.Model(&models.Timesheet{}).Where("project_id = ?", project.ID).Count(&timesheets)
	env.db.Model(&models.ProjectMember{}).Where("project_id = ?", project.ID).Count(&memberships)
	env.db.Model(&models.Project{}).Where("id = ?", project.ID).Count(&projects)
	require.Zero(t, timesheets)
	require.Zero(t, memberships)
	require.Zero(t, projects)
}

func TestProjectAssignUser_IdempotentMembership(t *testing.T) {
	env := setupTestEnv(t)
	caller := env.createUser(t, "caller@example.com", "Admin", "male")
	token := env.issueToken(t, caller.ID)

	user := env.createUser(t, "member@example.com", "Jane", "female")
	project := env.createProject(t, "Project Alpha", "IT")

	payload := map[string]interface{}{"user_id": user.ID, "project_id": project.ID}

	w := env.request(t, http.MethodPost, "/api/projects/assign-user", payload, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Assigning the same pair again is a no-op, not an error.
	w = env.request(t, http.MethodPost, "/api/projects/assign-user", payload, token)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	env.db.Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", project.ID, user.ID).
		Count(&count)
	require.EqualValues(t, 1, count)
}

func TestProjectAssignUser_UnknownReferences(t *testing.T) {
	env := setupTestEnv(t)
	caller := env.createUser(t, "caller@example.com", "Admin", "male")
	token := env.issueToken(t, caller.ID)

	project := env.createProject(t, "Project Alpha", "IT")

	w := env.request(t, http.MethodPost, "/api/projects/assign-user", map[string]interface{}{
		"user_id":    9999,
		"project_id": project.ID,
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodPost, "/api/projects/assign-user", map[string]interface{}{
		"user_id":    caller.ID,
		"project_id": 9999,
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
