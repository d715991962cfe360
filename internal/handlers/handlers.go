package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// pageNumber reads the requested page from the query string. Out-of-range
// values are fine here; pagination clamps them.
func pageNumber(c echo.Context) int {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	return page
}

// orNotFound maps a missing record onto the site 404; anything else is a
// server error.
func orNotFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, what+" not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
