package v1

import (
	"github.com/envelope-zero/finance-tracker/internal/httputil"
	"github.com/envelope-zero/finance-tracker/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS
// request for a specific resource.
func resourceOptionsDetail[R models.Budget | models.Income | models.Expense](c *gin.Context, resource R, options gin.HandlerFunc) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.WithContext(c).First(&resource, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	options(c)
}

// pageLimit returns the requested limit or the default if none is set.
func pageLimit(setFields []string, requested int) int {
	if slices.Contains(setFields, "Limit") {
		return requested
	}
	return defaultLimit
}

// filterByName keeps the records whose name matches the pattern.
// An asterisk in the pattern matches any text, an empty pattern
// only matches empty names.
func filterByName[T any](records []T, pattern string, name func(T) string) []T {
	filtered := make([]T, 0, len(records))
	for _, r := range records {
		if glob.Glob(pattern, name(r)) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// paginate returns the page of records. A negative limit returns all
// records after the offset.
func paginate[T any](records []T, offset uint, limit int) []T {
	if offset >= uint(len(records)) {
		return []T{}
	}

	records = records[offset:]
	if limit >= 0 && limit < len(records) {
		records = records[:limit]
	}
	return records
}

// findPage loads one page of the records matching q and the total number of
// matches. Name patterns are matched in memory, so the page is cut after
// filtering when a name is set. Otherwise offset and limit are part of
// the query.
func findPage[T models.Income | models.Expense](q *gorm.DB, setFields []string, pattern string, offset uint, limit int, name func(T) string) ([]T, int64, error) {
	var records []T
	if slices.Contains(setFields, "Name") {
		if err := q.Find(&records).Error; err != nil {
			return nil, 0, err
		}

		records = filterByName(records, pattern, name)
		return paginate(records, offset, limit), int64(len(records)), nil
	}

	if err := q.Offset(int(offset)).Limit(limit).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.Limit(-1).Offset(-1).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// bindUpdate reads the fields set in the request body and binds them
// into data.
func bindUpdate(c *gin.Context, data any) ([]string, error) {
	fields, err := httputil.GetBodyFields(c, data)
	if err != nil {
		return nil, err
	}

	return fields, httputil.BindData(c, data)
}
