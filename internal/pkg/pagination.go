package pkg

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/simp-lee/storefront/internal/domain"
)

// validFieldName matches only alphanumeric characters, underscores and a
// single optional table qualifier.
var validFieldName = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*\.)?[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParsePagination extracts page and page_size from query params.
// Missing or unparseable values are left at zero so Normalize applies defaults.
func ParsePagination(c *gin.Context) domain.PaginationParams {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page")))
	pageSize, _ := strconv.Atoi(strings.TrimSpace(c.Query("page_size")))
	return domain.PaginationParams{Page: page, PageSize: pageSize}
}

// OptionalQuery returns the query value for key, or nil when it is absent or blank.
func OptionalQuery(c *gin.Context, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}

// Paginate returns a GORM scope that applies the normalized LIMIT and OFFSET.
func Paginate(p domain.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		w := p.Normalize()
		return db.Offset(w.Offset).Limit(w.Limit)
	}
}

// Equal returns a GORM scope adding "column = value" when value is set.
// A nil value adds no constraint. Column names that are not plain identifiers
// are ignored.
func Equal(column string, value *string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil || !validFieldName.MatchString(column) {
			return db
		}
		return db.Where(column+" = ?", *value)
	}
}
