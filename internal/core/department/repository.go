package department

import (
	"context"

	"github.com/ogurasousui/hr-structure/internal/core/listing"
)

// Repository は部署エンティティの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, department *Department) (*Department, error)
	Update(ctx context.Context, department *Department) (*Department, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Department, error)
	List(ctx context.Context, filter ListDepartmentsFilter) ([]*Department, int, error)
}

// ListDepartmentsFilter は一覧取得時の検索条件を表します。
type ListDepartmentsFilter struct {
	Page   listing.Params
	Name   *string
	AreaID *int64
}
