package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Meta carries per-response request metadata. The pagination figures are
// only set on list responses and are omitted everywhere else.
type Meta struct {
	Status        int       `json:"status"`
	Method        string    `json:"method"`
	URL           string    `json:"url"`
	Timestamp     time.Time `json:"timestamp"`
	TotalPages    int       `json:"totalPages,omitempty"`
	TotalElements int64     `json:"totalElements,omitempty"`
	PageNumber    int       `json:"pageNumber,omitempty"`
	PageSize      int       `json:"pageSize,omitempty"`
}

// Envelope is the uniform wrapper every endpoint responds with, success or
// error. The HTTP status code is echoed inside Meta.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    Meta        `json:"meta"`
}

// MetaFromRequest builds a Meta from the inbound request, recording
// method and full URL (scheme://host/path, query string excluded).
func MetaFromRequest(c *gin.Context, status int) Meta {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return Meta{
		Status:    status,
		Method:    c.Request.Method,
		URL:       scheme + "://" + c.Request.Host + c.Request.URL.Path,
		Timestamp: time.Now(),
	}
}

// WithPage returns a copy of the Meta with the pagination figures set
func (m Meta) WithPage(totalPages int, totalElements int64, pageNumber, pageSize int) Meta {
	m.TotalPages = totalPages
	m.TotalElements = totalElements
	m.PageNumber = pageNumber
	m.PageSize = pageSize
	return m
}

// Success returns an envelope wrapping the payload
func Success(message string, data interface{}, meta Meta) Envelope {
	return Envelope{
		Message: message,
		Data:    data,
		Meta:    meta,
	}
}

// Error returns an envelope with no payload
func Error(message string, meta Meta) Envelope {
	return Envelope{
		Message: message,
		Meta:    meta,
	}
}
