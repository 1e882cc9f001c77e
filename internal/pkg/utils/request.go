package utils

import (
	"context"
	"math"
	"net/http"
	"sensus-service/internal/app/models"
	"sensus-service/internal/pkg/constvars"
	"strconv"
	"strings"
)

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func GetSession(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	return session, ok && session != nil
}

func GetViewerID(ctx context.Context) string {
	viewerID, _ := ctx.Value(constvars.CONTEXT_VIEWER_ID_KEY).(string)
	return viewerID
}

func ExtractBearerToken(r *http.Request) string {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(header, constvars.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, constvars.BearerPrefix))
}

// maxPage keeps (page-1)*pageSize inside an int32 skip.
const maxPage = math.MaxInt32 / constvars.AppMaxPageSize

// ParsePagination reads page and page_size query params, falling back to
// defaults on missing or malformed values.
func ParsePagination(r *http.Request) (page, pageSize int) {
	page, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPage))
	if err != nil || page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}

	pageSize, err = strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPageSize))
	if err != nil || pageSize < 1 {
		pageSize = constvars.AppDefaultPageSize
	}
	if pageSize > constvars.AppMaxPageSize {
		pageSize = constvars.AppMaxPageSize
	}
	return page, pageSize
}
