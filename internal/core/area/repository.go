package area

import (
	"context"

	"github.com/ogurasousui/hr-structure/internal/core/listing"
)

// Repository はエリアエンティティの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, area *Area) (*Area, error)
	Update(ctx context.Context, area *Area) (*Area, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Area, error)
	List(ctx context.Context, filter ListAreasFilter) ([]*Area, int, error)
}

// ListAreasFilter は一覧取得時の検索条件を表します。
type ListAreasFilter struct {
	Page      listing.Params
	Name      *string
	CompanyID *int64
}
