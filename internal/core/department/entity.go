package department

import "time"

// Department は部署エンティティです。必ず 1 つのエリアに属します。
type Department struct {
	ID          int64
	Name        string
	Description string
	AreaID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
