package company

import (
	"context"

	"github.com/ogurasousui/hr-structure/internal/core/listing"
)

// Repository は企業エンティティの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, company *Company) (*Company, error)
	Update(ctx context.Context, company *Company) (*Company, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Company, error)
	List(ctx context.Context, filter ListCompaniesFilter) ([]*Company, int, error)
}

// ListCompaniesFilter は一覧取得時の検索条件を表します。
type ListCompaniesFilter struct {
	Page listing.Params
	Name *string
}
