package request

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Pagination is a resolved page/page_size pair ready for an offset query.
type Pagination struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPagination reads page and page_size query parameters, falling back
// to defaultSize and capping page_size at maxSize.
func GetPagination(c *gin.Context, defaultSize, maxSize int) Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultSize)))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}

	return Pagination{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}
}

// GetIDList parses a comma-separated list of numeric IDs from the named
// query parameter, e.g. ?source=1,3. Unparsable entries are skipped.
func GetIDList(c *gin.Context, name string) []uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	return ids
}
