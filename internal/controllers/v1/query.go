package v1

import (
	"github.com/pocketdiary/backend/internal/types"
	"gorm.io/gorm"
)

// dateRangeFilter narrows a record query to an inclusive date range.
func dateRangeFilter(q *gorm.DB, from, until string) (*gorm.DB, error) {
	if from != "" {
		date, err := types.ParseDate(from)
		if err != nil {
			return nil, errDateInvalid
		}
		q = q.Where("date >= ?", date)
	}

	if until != "" {
		date, err := types.ParseDate(until)
		if err != nil {
			return nil, errDateInvalid
		}
		q = q.Where("date <= ?", date)
	}

	return q, nil
}
