package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// Params holds validated pagination parameters
type Params struct {
	Page   int
	Size   int
	Offset int
}

// Parse extracts and validates page/size from query parameters.
// Non-positive values fall back to the defaults.
func Parse(c *gin.Context) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultSize)))

	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	return Params{
		Page:   page,
		Size:   size,
		Offset: (page - 1) * size,
	}
}

// TotalPages returns ceil(totalElements / size)
func TotalPages(totalElements int64, size int) int {
	if size < 1 {
		return 0
	}
	pages := totalElements / int64(size)
	if totalElements%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
