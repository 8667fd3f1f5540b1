package orgtree

import (
	"context"
	"fmt"
)

// Service は組織ツリーの読み取りユースケースを提供します。
type Service struct {
	loader Loader
}

// NewService は Service を生成します。
func NewService(loader Loader) *Service {
	return &Service{loader: loader}
}

// GetCompanyTree は企業の組織ツリーを読み込み、従業員数を付与して返します。
func (s *Service) GetCompanyTree(ctx context.Context, companyID int64) (*Company, error) {
	if companyID <= 0 {
		return nil, fmt.Errorf("orgtree: company id must be positive")
	}

	tree, err := s.loader.LoadCompanyTree(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return WithEmployeeCounts(tree), nil
}
