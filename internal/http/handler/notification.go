package handler

import (
	"github.com/gofiber/fiber/v2"

	"meetapi/internal/model"
	"meetapi/internal/service"
)

// ListNotifications godoc
//
// @Summary  List notifications
// @Tags     notifications
// @Produce  json
// @Param    meeting_id   query int false "meeting id"
// @Param    user_id      query int false "recipient id"
// @Param    page_number  query int false "1-based page" default(1)
// @Param    page_size    query int false "page size"    default(10)
// @Success  200 {object} response.Paged[model.GetNotificationDto]
// @Failure  400 {object} errorPayload
// @Router   /notifications [get]
func ListNotifications(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := pageFilter(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "invalid page parameters")
		}
		meetingID, err := queryInt64(c, "meeting_id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_MEETING_ID", "invalid meeting_id")
		}
		userID, err := queryInt64(c, "user_id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_USER_ID", "invalid user_id")
		}

		return writePage(c, svc.List(c.UserContext(), model.NotificationFilter{
			PaginationFilter: page,
			MeetingID:        meetingID,
			UserID:           userID,
		}))
	}
}

// GetNotification godoc
//
// @Summary  Get a notification
// @Tags     notifications
// @Produce  json
// @Param    id  path int true "notification id"
// @Success  200 {object} response.Response[model.GetNotificationDto]
// @Failure  404 {object} errorPayload
// @Router   /notifications/{id} [get]
func GetNotification(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		return writeResponse(c, fiber.StatusOK, svc.GetByID(c.UserContext(), id))
	}
}

// CreateNotification godoc
//
// @Summary  Schedule a notification for a meeting
// @Tags     notifications
// @Accept   json
// @Produce  json
// @Param    body body model.CreateNotificationDto true "notification"
// @Success  201 {object} response.Response[int64]
// @Failure  404 {object} errorPayload
// @Router   /notifications [post]
func CreateNotification(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dto model.CreateNotificationDto
		if err := c.BodyParser(&dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		return writeResponse(c, fiber.StatusCreated, svc.Create(c.UserContext(), dto))
	}
}

// DeleteNotification godoc
//
// @Summary  Delete a notification
// @Tags     notifications
// @Produce  json
// @Param    id  path int true "notification id"
// @Success  200 {object} response.Response[bool]
// @Failure  404 {object} errorPayload
// @Router   /notifications/{id} [delete]
func DeleteNotification(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		return writeResponse(c, fiber.StatusOK, svc.Delete(c.UserContext(), id))
	}
}
