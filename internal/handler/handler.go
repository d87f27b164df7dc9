// Package handler implements the HTTP resource services: request
// parsing and validation, ownership checks and response shaping on top
// of the store layer.
package handler

import (
	"net/http"
	"strconv"

	"finance-tracker/internal/middleware"
	"finance-tracker/internal/models"
	"finance-tracker/internal/store"
	"finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user out of the gin context.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(middleware.UserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// requireUser is currentUser plus the 401 reply on failure.
func requireUser(c *gin.Context) (*models.User, bool) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
	}
	return user, ok
}

// parseListQuery reads the shared pagination and sorting parameters.
// Non-numeric page/limit values fall back to the defaults; negative
// pages are passed through to the query builder unclamped.
func parseListQuery(c *gin.Context) store.Query {
	q := store.Query{
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		q.Page = v
	} else {
		q.Page = 1
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		q.Limit = v
	}
	return q
}

// parseID reads a positive numeric :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// totalPages is ceil(total/limit) for the pagination envelope.
func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

// pagination builds the list envelope block.
func pagination(q store.Query, total int64) gin.H {
	return gin.H{
		"page":        q.Page,
		"limit":       q.Limit,
		"total_pages": totalPages(total, q.Limit),
	}
}
