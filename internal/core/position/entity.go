package position

import "time"

// Position は役職エンティティです。必ず 1 つの部署に属します。
type Position struct {
	ID           int64
	Name         string
	Description  string
	DepartmentID int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
