package handler

import (
	"github.com/gofiber/fiber/v2"

	"meetapi/internal/model"
	"meetapi/internal/service"
)

// ListMeetings godoc
//
// @Summary  List meetings
// @Tags     meetings
// @Produce  json
// @Param    name         query string false "exact name"
// @Param    description  query string false "exact description"
// @Param    user_id      query int    false "owner id"
// @Param    page_number  query int    false "1-based page" default(1)
// @Param    page_size    query int    false "page size"    default(10)
// @Success  200 {object} response.Paged[model.GetMeetingDto]
// @Failure  400 {object} errorPayload
// @Router   /meetings [get]
func ListMeetings(svc service.MeetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := pageFilter(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "invalid page parameters")
		}
		userID, err := queryInt64(c, "user_id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_USER_ID", "invalid user_id")
		}

		return writePage(c, svc.List(c.UserContext(), model.MeetingFilter{
			PaginationFilter: page,
			Name:             c.Query("name"),
			Description:      c.Query("description"),
			UserID:           userID,
		}))
	}
}

// ListUpcomingMeetings godoc
//
// @Summary  List a user's meetings that have not started yet
// @Tags     meetings
// @Produce  json
// @Param    user_id      query int true  "owner id"
// @Param    page_number  query int false "1-based page" default(1)
// @Param    page_size    query int false "page size"    default(10)
// @Success  200 {object} response.Paged[model.GetMeetingDto]
// @Failure  400 {object} errorPayload
// @Router   /meetings/upcoming [get]
func ListUpcomingMeetings(svc service.MeetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := pageFilter(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "invalid page parameters")
		}
		userID, err := queryInt64(c, "user_id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_USER_ID", "invalid user_id")
		}
		return writePage(c, svc.ListUpcoming(c.UserContext(), page, userID))
	}
}

// GetMeeting godoc
//
// @Summary  Get a meeting
// @Tags     meetings
// @Produce  json
// @Param    id  path int true "meeting id"
// @Success  200 {object} response.Response[model.GetMeetingDto]
// @Failure  404 {object} errorPayload
// @Router   /meetings/{id} [get]
func GetMeeting(svc service.MeetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		return writeResponse(c, fiber.StatusOK, svc.GetByID(c.UserContext(), id))
	}
}

// CreateMeeting godoc
//
// @Summary  Create a meeting
// @Tags     meetings
// @Accept   json
// @Produce  json
// @Param    body body model.CreateMeetingDto true "meeting"
// @Success  201 {object} response.Response[int64]
// @Failure  400 {object} errorPayload
// @Router   /meetings [post]
func CreateMeeting(svc service.MeetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dto model.CreateMeetingDto
		if err := c.BodyParser(&dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		return writeResponse(c, fiber.StatusCreated, svc.Create(c.UserContext(), dto))
	}
}

// UpdateMeeting godoc
//
// @Summary  Replace a meeting
// @Tags     meetings
// @Accept   json
// @Produce  json
// @Param    body body model.UpdateMeetingDto true "meeting with id"
// @Success  200 {object} response.Response[string]
// @Failure  404 {object} errorPayload
// @Router   /meetings [put]
func UpdateMeeting(svc service.MeetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dto model.UpdateMeetingDto
		if err := c.BodyParser(&dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		return writeResponse(c, fiber.StatusOK, svc.Update(c.UserContext(), dto))
	}
}

// DeleteMeeting godoc
//
// @Summary  Delete a meeting and its notifications
// @Tags     meetings
// @Produce  json
// @Param    id  path int true "meeting id"
// @Success  200 {object} response.Response[bool]
// @Failure  404 {object} errorPayload
// @Router   /meetings/{id} [delete]
func DeleteMeeting(svc service.MeetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		return writeResponse(c, fiber.StatusOK, svc.Delete(c.UserContext(), id))
	}
}
