package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tradejournal/internal/auth"
	"tradejournal/internal/repository"
	"tradejournal/internal/service"
)

const dateLayout = "2006-01-02"

func intQuery(c *gin.Context, key string, def int) int {
	if val := c.Query(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

func boolQueryPtr(c *gin.Context, key string) *bool {
	if val := c.Query(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return &b
		}
	}
	return nil
}

func strQueryPtr(c *gin.Context, key string) *string {
	if val := strings.TrimSpace(c.Query(key)); val != "" {
		return &val
	}
	return nil
}

func uint64Param(c *gin.Context, key string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(c.Param(key)), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func paginationMeta(limit, offset int, total int64) map[string]any {
	if limit <= 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	hasNext := int64(offset+limit) < total
	return map[string]any{
		"limit":    limit,
		"offset":   offset,
		"total":    total,
		"has_next": hasNext,
	}
}

// parseDay accepts a calendar date or an RFC3339 instant. A bare date is
// midnight in loc.
func parseDay(value string, loc *time.Location) (time.Time, bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, nil
	}
	if ts, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return ts, true, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, err
	}
	return ts, false, nil
}

// tradeFilterQuery reads symbol, session, status, strategy, date_from and
// date_to. A bare date_to includes that whole day.
func tradeFilterQuery(c *gin.Context, loc *time.Location) (repository.TradeFilter, error) {
	if loc == nil {
		loc = time.UTC
	}
	f := repository.TradeFilter{
		Symbol:   strQueryPtr(c, "symbol"),
		Session:  strQueryPtr(c, "session"),
		Status:   strQueryPtr(c, "status"),
		Strategy: strQueryPtr(c, "strategy"),
	}
	from, _, err := parseDay(c.Query("date_from"), loc)
	if err != nil {
		return f, errors.New("invalid date_from")
	}
	if !from.IsZero() {
		f.DateFrom = &from
	}
	to, wholeDay, err := parseDay(c.Query("date_to"), loc)
	if err != nil {
		return f, errors.New("invalid date_to")
	}
	if !to.IsZero() {
		if wholeDay {
			to = to.AddDate(0, 0, 1)
		}
		f.DateTo = &to
	}
	if f.DateFrom != nil && f.DateTo != nil && !f.DateFrom.Before(*f.DateTo) {
		return f, errors.New("date_from must be before date_to")
	}
	return f, nil
}

// currentUser reads the authenticated user id, answering 401 when absent.
func currentUser(c *gin.Context) (uint64, bool) {
	id, ok := auth.UserID(c)
	if !ok {
		Error(c, http.StatusUnauthorized, "unauthenticated", nil)
		return 0, false
	}
	return id, true
}

// serviceError maps service sentinels to statuses; anything else is a
// storage failure and answers 502.
func serviceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		Error(c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, service.ErrInvalidInput):
		Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, service.ErrTagInUse):
		Error(c, http.StatusForbidden, "cannot delete tag as it is used by other users", nil)
	case errors.Is(err, service.ErrTagExists):
		Error(c, http.StatusConflict, err.Error(), nil)
	default:
		if logger != nil {
			logger.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.String("request_id", RequestID(c)),
				zap.Error(err),
			)
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
	}
}
