package company

import "time"

// Company は企業エンティティです。組織階層のルートになります。
type Company struct {
	ID        int64
	Name      string
	Address   string
	Email     string
	Phone     string
	Industry  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
