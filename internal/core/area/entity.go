package area

import "time"

// Area はエリアエンティティです。必ず 1 つの企業に属します。
type Area struct {
	ID          int64
	Name        string
	Description string
	CompanyID   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
