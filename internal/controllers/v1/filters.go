package v1

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// stringFilters adds the name filter and the full text search to the query.
//
// search is matched against all searchColumns.
func stringFilters(db, query *gorm.DB, setFields []string, name, search string, searchColumns ...string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if search != "" && len(searchColumns) > 0 {
		condition := db.Where(fmt.Sprintf("%s LIKE ?", searchColumns[0]), fmt.Sprintf("%%%s%%", search))
		for _, column := range searchColumns[1:] {
			condition = condition.Or(db.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", search)))
		}
		query = query.Where(condition)
	}

	return query
}

// parseDate parses a date from a query parameter.
//
// Plain dates without a time are expanded to the start of the day, or to
// the last nanosecond of the day if endOfDay is set. All times are UTC.
func parseDate(s string, endOfDay bool) (time.Time, error) {
	s = strings.TrimSpace(s)

	t, err := time.Parse(dateLayout, s)
	if err == nil {
		if endOfDay {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		return t, nil
	}

	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errDateInvalid
	}

	return t.In(time.UTC), nil
}

// startOfDay returns midnight UTC of the day t is in.
func startOfDay(t time.Time) time.Time {
	return t.In(time.UTC).Truncate(24 * time.Hour)
}
