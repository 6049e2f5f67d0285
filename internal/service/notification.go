package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"meetapi/internal/mapper"
	"meetapi/internal/model"
	"meetapi/internal/repository"
	"meetapi/internal/response"
)

const (
	MsgNotificationNotFound = "notification not found"
	MsgNotificationAdded    = "notification added successfully"
)

// NotificationService exposes notification records to clients.
// Records are immutable, so there is no update.
type NotificationService interface {
	List(ctx context.Context, filter model.NotificationFilter) response.Paged[model.GetNotificationDto]
	GetByID(ctx context.Context, id int64) response.Response[model.GetNotificationDto]
	// Create stores a notification for an existing meeting.
	Create(ctx context.Context, dto model.CreateNotificationDto) response.Response[int64]
	Delete(ctx context.Context, id int64) response.Response[bool]
}

type notificationService struct {
	repo     repository.NotificationRepository
	meetings repository.MeetingRepository
	mapper   mapper.NotificationMapper
	log      logrus.FieldLogger
}

func NewNotificationService(repo repository.NotificationRepository, meetings repository.MeetingRepository, m mapper.NotificationMapper, log logrus.FieldLogger) NotificationService {
	return &notificationService{repo: repo, meetings: meetings, mapper: m, log: log}
}

func (s *notificationService) List(ctx context.Context, filter model.NotificationFilter) response.Paged[model.GetNotificationDto] {
	op := startOp(s.log, "notification_service", "List", logrus.Fields{
		"page_number": filter.PageNumber,
		"page_size":   filter.PageSize,
	})
	if err := filter.Validate(); err != nil {
		op.rejected(err.Error())
		return response.FailPage[model.GetNotificationDto](response.CodeBadRequest, err.Error())
	}

	res, err := s.repo.List(ctx, repository.NotificationQuery{
		MeetingID: filter.MeetingID,
		UserID:    filter.UserID,
		Page:      repository.PageQuery{Limit: filter.PageSize, Offset: filter.Offset()},
	})
	if err != nil {
		op.failure(err)
		return response.FailPage[model.GetNotificationDto](response.CodeInternal, err.Error())
	}

	op.success()
	return response.OKPage(mapper.Slice(res.Items, s.mapper.ToDto), res.Total, filter.PageNumber, filter.PageSize)
}

func (s *notificationService) GetByID(ctx context.Context, id int64) response.Response[model.GetNotificationDto] {
	op := startOp(s.log, "notification_service", "GetByID", logrus.Fields{"notification_id": id})

	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			op.rejected(MsgNotificationNotFound)
			return response.NotFound[model.GetNotificationDto](MsgNotificationNotFound)
		}
		op.failure(err)
		return response.Internal[model.GetNotificationDto](err)
	}

	op.success()
	return response.OK(s.mapper.ToDto(*n))
}

func (s *notificationService) Create(ctx context.Context, dto model.CreateNotificationDto) response.Response[int64] {
	op := startOp(s.log, "notification_service", "Create", logrus.Fields{
		"meeting_id": dto.MeetingID,
		"user_id":    dto.UserID,
	})

	ok, err := s.meetings.Exists(ctx, dto.MeetingID)
	if err != nil {
		op.failure(err)
		return response.Internal[int64](err)
	}
	if !ok {
		op.rejected(MsgMeetingNotFound)
		return response.NotFound[int64](MsgMeetingNotFound)
	}

	n := s.mapper.FromCreate(dto)
	id, err := s.repo.Create(ctx, &n)
	if err != nil {
		op.failure(err)
		return response.Internal[int64](err)
	}

	op.success()
	return response.OKWithMessage(id, MsgNotificationAdded)
}

func (s *notificationService) Delete(ctx context.Context, id int64) response.Response[bool] {
	op := startOp(s.log, "notification_service", "Delete", logrus.Fields{"notification_id": id})

	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		op.failure(err)
		return response.Internal[bool](err)
	}
	if n == 0 {
		op.rejected(MsgNotificationNotFound)
		return response.NotFound[bool](MsgNotificationNotFound)
	}

	op.success()
	return response.OK(true)
}
