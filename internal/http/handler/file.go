package handler

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"meetapi/internal/response"
	"meetapi/internal/service"
	"meetapi/internal/storage"
)

// UploadFile godoc
//
// @Summary  Upload a file (multipart/form-data, field name: file)
// @Tags     files
// @Accept   multipart/form-data
// @Produce  json
// @Param    file formData file true "file to store"
// @Success  201 {object} response.Response[string] "generated file name"
// @Failure  400 {object} errorPayload
// @Router   /files [post]
func UploadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		return writeResponse(c, fiber.StatusCreated, svc.Store(c.UserContext(), f, fh.Filename, ct, fh.Size))
	}
}

// DownloadFile godoc
//
// @Summary  Download a stored file
// @Tags     files
// @Produce  octet-stream
// @Param    name path string true "generated file name"
// @Success  200 {file} file
// @Failure  404 {object} errorPayload
// @Router   /files/{name} [get]
func DownloadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		rc, info, err := svc.Open(c.UserContext(), name)
		switch {
		case errors.Is(err, service.ErrInvalidName):
			return writeError(c, fiber.StatusBadRequest, "INVALID_NAME", "invalid file name")
		case errors.Is(err, storage.ErrNotExist):
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
		case err != nil:
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		switch ext := filepath.Ext(name); {
		case info.ContentType != "":
			c.Set(fiber.HeaderContentType, info.ContentType)
		case ext != "":
			c.Type(ext)
		default:
			c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
		}
		// fasthttp closes rc once the body is written
		return c.Status(fiber.StatusOK).SendStream(rc, int(info.Size))
	}
}

// DeleteFile godoc
//
// @Summary  Delete a stored file
// @Tags     files
// @Produce  json
// @Param    name path string true "generated file name"
// @Success  200 {object} response.Response[bool]
// @Failure  404 {object} errorPayload
// @Router   /files/{name} [delete]
func DeleteFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !svc.Delete(c.UserContext(), c.Params("name")) {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
		}
		return writeResponse(c, fiber.StatusOK, response.OK(true))
	}
}
