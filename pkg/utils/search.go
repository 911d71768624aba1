package utils

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/pkg/errors"
)

// GetSearchFilter extracts the q, genero and ano query parameters. Empty
// strings and ano=0 count as absent.
func GetSearchFilter(c echo.Context) (entity.VideoGameFilter, error) {
	var filter entity.VideoGameFilter

	if q := c.QueryParam("q"); q != "" {
		filter.Query = &q
	}
	if genre := c.QueryParam("genero"); genre != "" {
		filter.Genre = &genre
	}
	if raw := strings.TrimSpace(c.QueryParam("ano")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return filter, errors.BadRequest("ano must be an integer", err)
		}
		if year != 0 {
			filter.Year = &year
		}
	}

	return filter, nil
}

// GetIntParam parses a path parameter as an integer.
func GetIntParam(c echo.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, errors.BadRequest(name+" must be an integer", err)
	}
	return value, nil
}
