package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"sgac_app_go/services"

	"github.com/labstack/echo/v4"
)

// PageMeta is the metadata block of a paginated list
type PageMeta struct {
	ItemCount    int64   `json:"itemCount"`
	PageCount    int     `json:"pageCount"`
	CurrentPage  int     `json:"currentPage"`
	Next         *string `json:"next"`
	NextPage     *int    `json:"nextPage"`
	Previous     *string `json:"previous"`
	PreviousPage *int    `json:"previousPage"`
}

// Page is the envelope of a paginated list
type Page struct {
	Meta PageMeta    `json:"meta"`
	Data interface{} `json:"data"`
}

// paginationFromRequest reads page and limit. Pagination is on when either is present.
func paginationFromRequest(c echo.Context) (services.Pagination, error) {
	cfg := getConfig(c)
	query := c.QueryParams()

	_, hasPage := query["page"]
	_, hasLimit := query["limit"]
	if !hasPage && !hasLimit {
		return services.Pagination{}, nil
	}

	p := services.Pagination{Enabled: true, Page: 1, Limit: cfg.PageSize}
	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return p, services.ErrInvalidPage
		}
		p.Page = page
	}
	if raw := query.Get("limit"); raw != "" {
		// A bad limit falls back to the default page size
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			p.Limit = limit
		}
	}
	if cfg.MaxPageSize > 0 && p.Limit > cfg.MaxPageSize {
		p.Limit = cfg.MaxPageSize
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return p, nil
}

// pageURL rebuilds the request URL with page and limit replaced
func pageURL(c echo.Context, page, limit int) string {
	req := c.Request()
	u := url.URL{
		Scheme: c.Scheme(),
		Host:   req.Host,
		Path:   req.URL.Path,
	}
	query := req.URL.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	u.RawQuery = query.Encode()
	return u.String()
}

// respondList writes a bare array, or the paginated envelope when info is set
func respondList(c echo.Context, data interface{}, info *services.PageInfo, p services.Pagination) error {
	if info == nil {
		return c.JSON(http.StatusOK, data)
	}

	meta := PageMeta{
		ItemCount:   info.ItemCount,
		PageCount:   info.PageCount,
		CurrentPage: info.CurrentPage,
	}
	if info.HasNext() {
		next := info.CurrentPage + 1
		link := pageURL(c, next, p.Limit)
		meta.Next, meta.NextPage = &link, &next
	}
	if info.HasPrevious() {
		previous := info.CurrentPage - 1
		link := pageURL(c, previous, p.Limit)
		meta.Previous, meta.PreviousPage = &link, &previous
	}
	return c.JSON(http.StatusOK, Page{Meta: meta, Data: data})
}
