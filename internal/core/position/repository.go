package position

import (
	"context"

	"github.com/ogurasousui/hr-structure/internal/core/listing"
)

// Repository は役職エンティティの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, position *Position) (*Position, error)
	Update(ctx context.Context, position *Position) (*Position, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Position, error)
	List(ctx context.Context, filter ListPositionsFilter) ([]*Position, int, error)
}

// ListPositionsFilter は一覧取得時の検索条件を表します。
type ListPositionsFilter struct {
	Page         listing.Params
	Name         *string
	DepartmentID *int64
}
