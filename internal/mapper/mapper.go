// Package mapper projects domain models to transport shapes and back.
// Projections copy fields only; they never validate.
package mapper

import (
	"github.com/samber/lo"

	"meetapi/internal/model"
)

// Slice applies the projection f to every element of src.
func Slice[S, D any](src []S, f func(S) D) []D {
	return lo.Map(src, func(s S, _ int) D { return f(s) })
}

// MeetingMapper converts between meeting models and DTOs.
type MeetingMapper interface {
	ToDto(m model.Meeting) model.GetMeetingDto
	FromCreate(dto model.CreateMeetingDto) model.Meeting
	FromUpdate(dto model.UpdateMeetingDto) model.Meeting
}

// NotificationMapper converts between notification models and DTOs.
type NotificationMapper interface {
	ToDto(n model.Notification) model.GetNotificationDto
	FromCreate(dto model.CreateNotificationDto) model.Notification
}

// Meetings is the field-by-field MeetingMapper.
type Meetings struct{}

var _ MeetingMapper = Meetings{}

func (Meetings) ToDto(m model.Meeting) model.GetMeetingDto {
	return model.GetMeetingDto{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		UserID:      m.UserID,
	}
}

func (Meetings) FromCreate(dto model.CreateMeetingDto) model.Meeting {
	return model.Meeting{
		Name:        dto.Name,
		Description: dto.Description,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		UserID:      dto.UserID,
	}
}

func (Meetings) FromUpdate(dto model.UpdateMeetingDto) model.Meeting {
	return model.Meeting{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		UserID:      dto.UserID,
	}
}

// Notifications is the field-by-field NotificationMapper.
type Notifications struct{}

var _ NotificationMapper = Notifications{}

func (Notifications) ToDto(n model.Notification) model.GetNotificationDto {
	return model.GetNotificationDto{
		ID:             n.ID,
		MeetingID:      n.MeetingID,
		UserID:         n.UserID,
		Message:        n.Message,
		DateOfDispatch: n.DateOfDispatch,
	}
}

func (Notifications) FromCreate(dto model.CreateNotificationDto) model.Notification {
	return model.Notification{
		MeetingID:      dto.MeetingID,
		UserID:         dto.UserID,
		Message:        dto.Message,
		DateOfDispatch: dto.DateOfDispatch,
	}
}
