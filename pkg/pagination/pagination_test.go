package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/products?"+query, nil)
	return c
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		query      string
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{name: "defaults", query: "", wantPage: 1, wantSize: 10, wantOffset: 0},
		{name: "explicit values", query: "page=3&size=25", wantPage: 3, wantSize: 25, wantOffset: 50},
		{name: "first page zero offset", query: "page=1&size=2", wantPage: 1, wantSize: 2, wantOffset: 0},
		{name: "zero page falls back", query: "page=0&size=5", wantPage: 1, wantSize: 5, wantOffset: 0},
		{name: "negative page falls back", query: "page=-4", wantPage: 1, wantSize: 10, wantOffset: 0},
		{name: "zero size falls back", query: "page=2&size=0", wantPage: 2, wantSize: 10, wantOffset: 10},
		{name: "size capped", query: "size=5000", wantPage: 1, wantSize: 100, wantOffset: 0},
		{name: "non-numeric falls back", query: "page=abc&size=xyz", wantPage: 1, wantSize: 10, wantOffset: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := Parse(testContext(tc.query))
			assert.Equal(t, tc.wantPage, params.Page)
			assert.Equal(t, tc.wantSize, params.Size)
			assert.Equal(t, tc.wantOffset, params.Offset)
		})
	}
}

func TestTotalPages(t *testing.T) {
	testCases := []struct {
		name          string
		totalElements int64
		size          int
		want          int
	}{
		{name: "exact division", totalElements: 20, size: 10, want: 2},
		{name: "rounds up", totalElements: 5, size: 2, want: 3},
		{name: "single partial page", totalElements: 1, size: 10, want: 1},
		{name: "empty", totalElements: 0, size: 10, want: 0},
		{name: "size one", totalElements: 7, size: 1, want: 7},
		{name: "invalid size", totalElements: 7, size: 0, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TotalPages(tc.totalElements, tc.size))
		})
	}
}
