// internal/utils/pagination.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type PaginationParams struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// PageResponse is the list envelope: total row count, absolute links to the
// neighbouring pages (null when absent) and the ordered result page.
type PageResponse struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

func GetPaginationParams(c *gin.Context, defaultLimit, maxLimit int) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return PaginationParams{
		Page:  page,
		Limit: limit,
	}
}

func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NewPageResponse computes the next/previous links off the current request
// URL, rewriting only the page query parameter.
func NewPageResponse(c *gin.Context, results interface{}, total int64, params PaginationParams) PageResponse {
	resp := PageResponse{
		Count:   total,
		Results: results,
	}

	if int64(params.Offset()+params.Limit) < total {
		next := pageLink(c, params.Page+1)
		resp.Next = &next
	}
	if params.Page > 1 {
		prev := pageLink(c, params.Page-1)
		resp.Previous = &prev
	}

	return resp
}

func pageLink(c *gin.Context, page int) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}

	u := *c.Request.URL
	q := u.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()

	return scheme + "://" + c.Request.Host + u.RequestURI()
}
