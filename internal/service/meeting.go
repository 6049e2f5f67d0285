package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"meetapi/internal/mapper"
	"meetapi/internal/model"
	"meetapi/internal/repository"
	"meetapi/internal/response"
)

const (
	MsgMeetingNotFound = "meeting not found"
	MsgMeetingAdded    = "meeting added successfully"
	MsgMeetingUpdated  = "meeting updated successfully"
)

// MeetingService defines the use cases for meetings.
// Every method returns an envelope; failures never escape as Go errors.
type MeetingService interface {
	// List returns one page of meetings matching the filter.
	// Empty text fields and a zero user id are not applied.
	List(ctx context.Context, filter model.MeetingFilter) response.Paged[model.GetMeetingDto]

	// ListUpcoming returns one page of a user's meetings that have not started yet.
	ListUpcoming(ctx context.Context, filter model.PaginationFilter, userID int64) response.Paged[model.GetMeetingDto]

	// GetByID returns a single meeting or a NOT_FOUND envelope.
	GetByID(ctx context.Context, id int64) response.Response[model.GetMeetingDto]

	// Create stores a new meeting and returns its id.
	Create(ctx context.Context, dto model.CreateMeetingDto) response.Response[int64]

	// Update overwrites an existing meeting.
	Update(ctx context.Context, dto model.UpdateMeetingDto) response.Response[string]

	// Delete removes a meeting by id.
	Delete(ctx context.Context, id int64) response.Response[bool]
}

type meetingService struct {
	repo   repository.MeetingRepository
	mapper mapper.MeetingMapper
	log    logrus.FieldLogger
	now    func() time.Time
}

// NewMeetingService constructs a new MeetingService.
func NewMeetingService(repo repository.MeetingRepository, m mapper.MeetingMapper, log logrus.FieldLogger) MeetingService {
	return &meetingService{repo: repo, mapper: m, log: log, now: time.Now}
}

func (s *meetingService) List(ctx context.Context, filter model.MeetingFilter) response.Paged[model.GetMeetingDto] {
	op := startOp(s.log, "meeting_service", "List", logrus.Fields{
		"page_number": filter.PageNumber,
		"page_size":   filter.PageSize,
	})

	return s.page(ctx, op, filter.PaginationFilter, repository.MeetingQuery{
		Name:        filter.Name,
		Description: filter.Description,
		UserID:      filter.UserID,
	})
}

func (s *meetingService) ListUpcoming(ctx context.Context, filter model.PaginationFilter, userID int64) response.Paged[model.GetMeetingDto] {
	op := startOp(s.log, "meeting_service", "ListUpcoming", logrus.Fields{
		"user_id":     userID,
		"page_number": filter.PageNumber,
		"page_size":   filter.PageSize,
	})
	if userID <= 0 {
		op.rejected("invalid user id")
		return response.FailPage[model.GetMeetingDto](response.CodeBadRequest, "user_id: must be a positive number.")
	}

	return s.page(ctx, op, filter, repository.MeetingQuery{
		UserID:      userID,
		StartsAfter: s.now().UTC(),
	})
}

// page runs q over the page window described by pf. The total is always the
// count of rows matching q, independent of the window.
func (s *meetingService) page(ctx context.Context, op opLog, pf model.PaginationFilter, q repository.MeetingQuery) response.Paged[model.GetMeetingDto] {
	if err := pf.Validate(); err != nil {
		op.rejected(err.Error())
		return response.FailPage[model.GetMeetingDto](response.CodeBadRequest, err.Error())
	}
	q.Page = repository.PageQuery{Limit: pf.PageSize, Offset: pf.Offset()}

	res, err := s.repo.List(ctx, q)
	if err != nil {
		op.failure(err)
		return response.FailPage[model.GetMeetingDto](response.CodeInternal, err.Error())
	}

	items := mapper.Slice(res.Items, s.mapper.ToDto)
	op.success()
	return response.OKPage(items, res.Total, pf.PageNumber, pf.PageSize)
}

func (s *meetingService) GetByID(ctx context.Context, id int64) response.Response[model.GetMeetingDto] {
	op := startOp(s.log, "meeting_service", "GetByID", logrus.Fields{"meeting_id": id})

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			op.rejected(MsgMeetingNotFound)
			return response.NotFound[model.GetMeetingDto](MsgMeetingNotFound)
		}
		op.failure(err)
		return response.Internal[model.GetMeetingDto](err)
	}

	op.success()
	return response.OK(s.mapper.ToDto(*m))
}

func (s *meetingService) Create(ctx context.Context, dto model.CreateMeetingDto) response.Response[int64] {
	op := startOp(s.log, "meeting_service", "Create", logrus.Fields{"user_id": dto.UserID})

	m := s.mapper.FromCreate(dto)
	id, err := s.repo.Create(ctx, &m)
	if err != nil {
		op.failure(err)
		return response.Internal[int64](err)
	}

	op.entry = op.entry.WithField("meeting_id", id)
	op.success()
	return response.OKWithMessage(id, MsgMeetingAdded)
}

// Update checks the meeting exists, then issues a conditional update. A row
// deleted between the two steps shows up as zero affected rows and is
// reported as not found as well.
func (s *meetingService) Update(ctx context.Context, dto model.UpdateMeetingDto) response.Response[string] {
	op := startOp(s.log, "meeting_service", "Update", logrus.Fields{"meeting_id": dto.ID})

	ok, err := s.repo.Exists(ctx, dto.ID)
	if err != nil {
		op.failure(err)
		return response.Internal[string](err)
	}
	if !ok {
		op.rejected(MsgMeetingNotFound)
		return response.NotFound[string](MsgMeetingNotFound)
	}

	m := s.mapper.FromUpdate(dto)
	n, err := s.repo.Update(ctx, &m)
	if err != nil {
		op.failure(err)
		return response.Internal[string](err)
	}
	if n == 0 {
		op.rejected(MsgMeetingNotFound)
		return response.NotFound[string](MsgMeetingNotFound)
	}

	op.success()
	return response.OK(MsgMeetingUpdated)
}

// Delete is a single delete-by-id; zero affected rows means not found.
func (s *meetingService) Delete(ctx context.Context, id int64) response.Response[bool] {
	op := startOp(s.log, "meeting_service", "Delete", logrus.Fields{"meeting_id": id})

	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		op.failure(err)
		return response.Internal[bool](err)
	}
	if n == 0 {
		op.rejected(MsgMeetingNotFound)
		return response.NotFound[bool](MsgMeetingNotFound)
	}

	op.success()
	return response.OK(true)
}
