package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"meetapi/internal/model"
)

var errInvalidID = errors.New("invalid id")

// pathID parses the :id route parameter as a positive integer.
func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// queryInt64 reads an optional integer query parameter; absent means zero.
func queryInt64(c *fiber.Ctx, key string) (int64, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

// pageFilter reads page_number and page_size, defaulting to the first page.
// Range checks are left to the service.
func pageFilter(c *fiber.Ctx) (model.PaginationFilter, error) {
	f := model.NewPaginationFilter()
	if v := c.Query("page_number"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, err
		}
		f.PageNumber = n
	}
	if v := c.Query("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, err
		}
		f.PageSize = n
	}
	return f, nil
}
