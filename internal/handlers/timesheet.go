package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/timetrackhq/timesheet-api/internal/apperrors"
	"github.com/timetrackhq/timesheet-api/internal/dto"
	"github.com/timetrackhq/timesheet-api/internal/repository"
	"github.com/timetrackhq/timesheet-api/internal/response"
	"github.com/timetrackhq/timesheet-api/internal/services"
	"github.com/timetrackhq/timesheet-api/internal/utils"
)

// TimesheetHandler exposes timesheet CRUD endpoints.
type TimesheetHandler struct {
	timesheetService *services.TimesheetService
}

// NewTimesheetHandler creates a new TimesheetHandler.
func NewTimesheetHandler(timesheetService *services.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{timesheetService: timesheetService}
}

// List returns timesheets, optionally filtered by user_id and project_id,
// with user and project loaded.
func (h *TimesheetHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filter := repository.TimesheetFilter{
		Offset: params.Offset,
		Limit:  params.Limit,
	}

	if v := c.Query("user_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			response.Error(c, apperrors.Validation("user_id must be a positive integer"))
			return
		}
		filter.UserID = &id
	}
	if v := c.Query("project_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			response.Error(c, apperrors.Validation("project_id must be a positive integer"))
			return
		}
		filter.ProjectID = &id
	}

	timesheets, err := h.timesheetService.List(filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	dtos := make([]dto.TimesheetDTO, len(timesheets))
	for i, timesheet := range timesheets {
		dtos[i] = dto.ToTimesheetWithRelationsDTO(timesheet)
	}

	response.OK(c, "Get All Timesheets", gin.H{"timesheets": dtos})
}

// Create logs a new work entry. A user may hold only one timesheet per
// project.
func (h *TimesheetHandler) Create(c *gin.Context) {
	type CreateTimesheetRequest struct {
		TaskName  string   `json:"task_name" binding:"required,max=255"`
		Date      string   `json:"date" binding:"required"`
		Hours     *float64 `json:"hours" binding:"required"`
		UserID    uint64   `json:"user_id" binding:"required"`
		ProjectID uint64   `json:"project_id" binding:"required"`
	}

	var req CreateTimesheetRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	timesheet, err := h.timesheetService.Create(services.CreateTimesheetInput{
		TaskName:  req.TaskName,
		Date:      date,
		Hours:     *req.Hours,
		UserID:    req.UserID,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Timesheet Created Successfully", gin.H{"timesheet": dto.ToTimesheetDTO(*timesheet)})
}

// Get returns a single timesheet with its user and project.
func (h *TimesheetHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	timesheet, err := h.timesheetService.Get(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Timesheet Fetched Successfully", gin.H{"timesheet": dto.ToTimesheetWithRelationsDTO(*timesheet)})
}

// Update applies a partial update identified by the id field in the body;
// every other field is independently optional.
func (h *TimesheetHandler) Update(c *gin.Context) {
	type UpdateTimesheetRequest struct {
		ID        uint64   `json:"id" binding:"required"`
		TaskName  *string  `json:"task_name" binding:"omitempty,max=255"`
		Date      *string  `json:"date"`
		Hours     *float64 `json:"hours"`
		UserID    *uint64  `json:"user_id"`
		ProjectID *uint64  `json:"project_id"`
	}

	var req UpdateTimesheetRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	timesheet, err := h.timesheetService.Update(services.UpdateTimesheetInput{
		ID:        req.ID,
		TaskName:  req.TaskName,
		Date:      date,
		Hours:     req.Hours,
		UserID:    req.UserID,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Timesheet Updated Successfully", gin.H{"timesheet": dto.ToTimesheetDTO(*timesheet)})
}

// Delete removes a single timesheet.
func (h *TimesheetHandler) Delete(c *gin.Context) {
	type DeleteTimesheetRequest struct {
		ID uint64 `json:"id" binding:"required"`
	}

	var req DeleteTimesheetRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.timesheetService.Delete(req.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Timesheet Deleted Successfully", nil)
}
