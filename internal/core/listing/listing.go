package listing

import (
	"errors"
	"slices"
	"strings"
)

// Order は一覧取得時の並び順です。
type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

var (
	// ErrInvalidPageSize はページサイズが不正な場合に返却されます。
	ErrInvalidPageSize = errors.New("invalid page size")
	// ErrInvalidOffset はオフセットが不正な場合に返却されます。
	ErrInvalidOffset = errors.New("invalid offset")
	// ErrInvalidOrder は並び順指定が不正な場合に返却されます。
	ErrInvalidOrder = errors.New("invalid order")
)

const (
	defaultPageSize = 10
	maxPageSize     = 200
)

// Params は一覧取得 API 共通のページング・ソート指定です。
type Params struct {
	OrderBy  string
	Order    Order
	Offset   int
	PageSize int
}

// Normalize は既定値を適用し、指定値を検証します。
// allowedOrderBy には並び替え対象として許可するカラム名を渡します。
func (p Params) Normalize(allowedOrderBy ...string) (Params, error) {
	if p.OrderBy == "" {
		p.OrderBy = "id"
	}
	if !slices.Contains(allowedOrderBy, p.OrderBy) {
		return Params{}, ErrInvalidOrder
	}

	switch Order(strings.ToUpper(string(p.Order))) {
	case "":
		p.Order = OrderDesc
	case OrderAsc:
		p.Order = OrderAsc
	case OrderDesc:
		p.Order = OrderDesc
	default:
		return Params{}, ErrInvalidOrder
	}

	if p.PageSize == 0 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize < 0 || p.PageSize > maxPageSize {
		return Params{}, ErrInvalidPageSize
	}

	if p.Offset < 0 {
		return Params{}, ErrInvalidOffset
	}

	return p, nil
}
