package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meetapi/internal/model"
	"meetapi/internal/response"
	serviceMocks "meetapi/internal/service/mocks"
)

func newMeetingApp(svc *serviceMocks.MockMeetingService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, nil, svc, new(serviceMocks.MockNotificationService), new(serviceMocks.MockFileService))
	return app
}

func TestListMeetings(t *testing.T) {
	mockSvc := new(serviceMocks.MockMeetingService)
	app := newMeetingApp(mockSvc)

	t.Run("success with filter", func(t *testing.T) {
		want := model.MeetingFilter{
			PaginationFilter: model.PaginationFilter{PageNumber: 2, PageSize: 5},
			Name:             "Retro",
			UserID:           7,
		}
		mockSvc.On("List", mock.Anything, want).Return(response.OKPage(
			[]model.GetMeetingDto{{ID: 6, Name: "Retro", UserID: 7}}, 6, 2, 5,
		)).Once()

		req := httptest.NewRequest(http.MethodGet, "/meetings?name=Retro&user_id=7&page_number=2&page_size=5", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var page response.Paged[model.GetMeetingDto]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
		assert.Len(t, page.Data, 1)
		assert.Equal(t, 6, page.TotalRecords)
		assert.Equal(t, 2, page.TotalPages)
		mockSvc.AssertExpectations(t)
	})

	t.Run("defaults to first page", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, model.MeetingFilter{PaginationFilter: model.NewPaginationFilter()}).
			Return(response.OKPage[model.GetMeetingDto](nil, 0, 1, 10)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/meetings", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var raw map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
		assert.Equal(t, []any{}, raw["data"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("non-numeric page", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/meetings?page_size=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_PAGE", decodeError(t, resp).Error.Code)
	})

	t.Run("validation failure from service", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, mock.Anything).
			Return(response.FailPage[model.GetMeetingDto](response.CodeBadRequest, "page_size: must be no greater than 100.")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/meetings?page_size=500", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "BAD_REQUEST", body.Error.Code)
		assert.Contains(t, body.Error.Message, "page_size")
	})

	t.Run("internal failure hides detail", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, mock.Anything).
			Return(response.FailPage[model.GetMeetingDto](response.CodeInternal, "pq: connection refused")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/meetings", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "internal server error", decodeError(t, resp).Error.Message)
	})
}

func TestListUpcomingMeetings(t *testing.T) {
	mockSvc := new(serviceMocks.MockMeetingService)
	app := newMeetingApp(mockSvc)

	mockSvc.On("ListUpcoming", mock.Anything, model.NewPaginationFilter(), int64(3)).
		Return(response.OKPage([]model.GetMeetingDto{{ID: 1}}, 1, 1, 10)).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/meetings/upcoming?user_id=3", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
	mockSvc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetMeeting(t *testing.T) {
	mockSvc := new(serviceMocks.MockMeetingService)
	app := newMeetingApp(mockSvc)

	t.Run("success", func(t *testing.T) {
		mockSvc.On("GetByID", mock.Anything, int64(4)).Return(response.OK(model.GetMeetingDto{ID: 4, Name: "Retro"})).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/meetings/4", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var res response.Response[model.GetMeetingDto]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, "Retro", res.Data.Name)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("GetByID", mock.Anything, int64(5)).Return(response.NotFound[model.GetMeetingDto]("meeting not found")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/meetings/5", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, "meeting not found", body.Error.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		for _, id := range []string{"abc", "0", "-3"} {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/meetings/"+id, nil))

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, id)
			assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code, id)
		}
	})
}

func TestCreateMeeting(t *testing.T) {
	mockSvc := new(serviceMocks.MockMeetingService)
	app := newMeetingApp(mockSvc)
	start := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(dto model.CreateMeetingDto) bool {
			return dto.Name == "Planning" && dto.UserID == 2 && dto.StartDate.Equal(start)
		})).Return(response.OKWithMessage(int64(11), "meeting added successfully")).Once()

		body := `{"name":"Planning","start_date":"2026-10-20T09:00:00Z","end_date":"2026-10-20T10:00:00Z","user_id":2}`
		req := httptest.NewRequest(http.MethodPost, "/meetings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var res response.Response[int64]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, int64(11), res.Data)
		assert.Equal(t, "meeting added successfully", res.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/meetings", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})
}

func TestUpdateMeeting(t *testing.T) {
	mockSvc := new(serviceMocks.MockMeetingService)
	app := newMeetingApp(mockSvc)

	mockSvc.On("Update", mock.Anything, mock.MatchedBy(func(dto model.UpdateMeetingDto) bool { return dto.ID == 77 })).
		Return(response.NotFound[string]("meeting not found")).Once()

	req := httptest.NewRequest(http.MethodPut, "/meetings", strings.NewReader(`{"id":77,"name":"ghost"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestDeleteMeeting(t *testing.T) {
	mockSvc := new(serviceMocks.MockMeetingService)
	app := newMeetingApp(mockSvc)

	mockSvc.On("Delete", mock.Anything, int64(9)).Return(response.OK(true)).Once()
	mockSvc.On("Delete", mock.Anything, int64(9)).Return(response.NotFound[bool]("meeting not found")).Once()

	first, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/meetings/9", nil))
	assert.Equal(t, http.StatusOK, first.StatusCode)

	second, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/meetings/9", nil))
	assert.Equal(t, http.StatusNotFound, second.StatusCode)
	mockSvc.AssertExpectations(t)
}
