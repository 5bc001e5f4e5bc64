package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/timetrackhq/timesheet-api/internal/dto"
	"github.com/timetrackhq/timesheet-api/internal/repository"
	"github.com/timetrackhq/timesheet-api/internal/response"
	"github.com/timetrackhq/timesheet-api/internal/services"
	"github.com/timetrackhq/timesheet-api/internal/utils"
)

// ProjectHandler exposes project CRUD and membership endpoints.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List returns projects, optionally filtered by name substring and exact
// department, with member users and timesheets.
func (h *ProjectHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filter := repository.ProjectFilter{
		Offset: params.Offset,
		Limit:  params.Limit,
	}

	if v := c.Query("name"); v != "" {
		filter.Name = &v
	}
	if v := c.Query("department"); v != "" {
		filter.Department = &v
	}

	projects, err := h.projectService.List(filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	dtos := make([]dto.ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = dto.ToProjectWithRelationsDTO(project)
	}

	response.OK(c, "Get All Projects", gin.H{"projects": dtos})
}

// Create stores a new project. The end date must not precede the start date.
func (h *ProjectHandler) Create(c *gin.Context) {
	type CreateProjectRequest struct {
		Name       string `json:"name" binding:"required,max=255"`
		Department string `json:"department" binding:"required,max=255"`
		StartDate  string `json:"start_date" binding:"required"`
		EndDate    string `json:"end_date" binding:"required"`
		Status     string `json:"status" binding:"required"`
	}

	var req CreateProjectRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	startDate, err := parseDate("start_date", req.StartDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	endDate, err := parseDate("end_date", req.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.projectService.Create(services.CreateProjectInput{
		Name:       req.Name,
		Department: req.Department,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Project Created Successfully", gin.H{"project": dto.ToProjectDTO(*project)})
}

// Get returns a single project with member users and timesheets.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Project Fetched Successfully", gin.H{"project": dto.ToProjectWithRelationsDTO(*project)})
}

// Update applies a partial update identified by the id field in the body.
func (h *ProjectHandler) Update(c *gin.Context) {
	type UpdateProjectRequest struct {
		ID         uint64  `json:"id" binding:"required"`
		Name       *string `json:"name" binding:"omitempty,max=255"`
		Department *string `json:"department" binding:"omitempty,max=255"`
		StartDate  *string `json:"start_date"`
		EndDate    *string `json:"end_date"`
		Status     *string `json:"status"`
	}

	var req UpdateProjectRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	startDate, err := parseOptionalDate("start_date", req.StartDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	endDate, err := parseOptionalDate("end_date", req.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.projectService.Update(services.UpdateProjectInput{
		ID:         req.ID,
		Name:       req.Name,
		Department: req.Department,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Project Updated Successfully", gin.H{"project": dto.ToProjectDTO(*project)})
}

// Delete removes a project and cascades to its timesheets.
func (h *ProjectHandler) Delete(c *gin.Context) {
	type DeleteProjectRequest struct {
		ID uint64 `json:"id" binding:"required"`
	}

	var req DeleteProjectRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.projectService.Delete(req.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Project deleted successfully", nil)
}

// AssignUser adds a user to a project. Assigning an existing member again is
// a no-op.
func (h *ProjectHandler) AssignUser(c *gin.Context) {
	type AssignUserRequest struct {
		UserID    uint64 `json:"user_id" binding:"required"`
		ProjectID uint64 `json:"project_id" binding:"required"`
	}

	var req AssignUserRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.projectService.AssignUser(req.UserID, req.ProjectID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User assigned to project successfully.", nil)
}
