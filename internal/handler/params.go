package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// IDs leave the API as strings: snowflake values overflow a JSON number.
func idToString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func idPtrToString(id *int64) *string {
	if id == nil {
		return nil
	}
	s := idToString(*id)
	return &s
}

func parseIDString(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}
