package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meetapi/internal/response"
	"meetapi/internal/service"
	serviceMocks "meetapi/internal/service/mocks"
	"meetapi/internal/storage"
)

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	part.Write([]byte(content))
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadFile(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := fiber.New()
	app.Post("/files", UploadFile(mockSvc))

	t.Run("success", func(t *testing.T) {
		body, ct := multipartBody(t, "agenda.pdf", "hello world")
		mockSvc.On("Store", mock.Anything, mock.Anything, "agenda.pdf", mock.Anything, int64(11)).
			Return(response.OK("0b0e3a6c-1f0a-4d59-9b4e-8d2f5f7b1c11.pdf")).Once()

		req := httptest.NewRequest(http.MethodPost, "/files", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var res response.Response[string]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, "0b0e3a6c-1f0a-4d59-9b4e-8d2f5f7b1c11.pdf", res.Data)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/files", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		body, ct := multipartBody(t, "agenda.pdf", "hello")
		mockSvc.On("Store", mock.Anything, mock.Anything, "agenda.pdf", mock.Anything, mock.Anything).
			Return(response.Internal[string](errors.New("disk full"))).Once()

		req := httptest.NewRequest(http.MethodPost, "/files", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body2 := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", body2.Error.Code)
		assert.NotContains(t, body2.Error.Message, "disk")
		mockSvc.AssertExpectations(t)
	})
}

func TestDownloadFile(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := fiber.New()
	app.Get("/files/:name", DownloadFile(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Open", mock.Anything, "a.txt").
			Return(io.NopCloser(bytes.NewReader([]byte("hello"))), storage.ObjectInfo{Key: "a.txt", Size: 5}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/files/a.txt", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
		got, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "hello", string(got))
	})

	t.Run("missing", func(t *testing.T) {
		mockSvc.On("Open", mock.Anything, "gone.txt").Return(nil, storage.ObjectInfo{}, storage.ErrNotExist).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/files/gone.txt", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid name", func(t *testing.T) {
		mockSvc.On("Open", mock.Anything, "bad").Return(nil, storage.ObjectInfo{}, service.ErrInvalidName).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/files/bad", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteFile(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := fiber.New()
	app.Delete("/files/:name", DeleteFile(mockSvc))

	mockSvc.On("Delete", mock.Anything, "a.txt").Return(true).Once()
	mockSvc.On("Delete", mock.Anything, "a.txt").Return(false).Once()

	first, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/files/a.txt", nil))
	assert.Equal(t, http.StatusOK, first.StatusCode)

	second, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/files/a.txt", nil))
	assert.Equal(t, http.StatusNotFound, second.StatusCode)
	mockSvc.AssertExpectations(t)
}
