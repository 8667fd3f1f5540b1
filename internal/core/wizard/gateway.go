package wizard

import (
	"context"

	"github.com/ogurasousui/hr-structure/internal/core/orgtree"
)

// CompanyInfo は企業情報ステップのフォーム内容です。5 項目すべて必須です。
type CompanyInfo struct {
	Name     string
	Address  string
	Email    string
	Phone    string
	Industry string
}

// CompanyRecord はゲートウェイが返す企業リソースです。
type CompanyRecord struct {
	ID       int64
	Name     string
	Address  string
	Email    string
	Phone    string
	Industry string
}

// AreaRecord はゲートウェイが返すエリアリソースです。
type AreaRecord struct {
	ID          int64
	Name        string
	Description string
	CompanyID   int64
}

// DepartmentRecord はゲートウェイが返す部署リソースです。
type DepartmentRecord struct {
	ID          int64
	Name        string
	Description string
	AreaID      int64
}

// PositionRecord はゲートウェイが返す役職リソースです。
type PositionRecord struct {
	ID           int64
	Name         string
	Description  string
	DepartmentID int64
}

// AreaPayload はエリア作成時のペイロードです。
type AreaPayload struct {
	Name        string
	Description string
	CompanyID   int64
}

// DepartmentPayload は部署作成時のペイロードです。
type DepartmentPayload struct {
	Name        string
	Description string
	AreaID      int64
}

// PositionPayload は役職作成時のペイロードです。
type PositionPayload struct {
	Name         string
	Description  string
	DepartmentID int64
}

// NodePatch はノードの名前と説明の部分更新です。
type NodePatch struct {
	Name        *string
	Description *string
}

// CompanyGateway は企業リソースの永続化ゲートウェイです。
type CompanyGateway interface {
	Create(ctx context.Context, info CompanyInfo) (*CompanyRecord, error)
	Update(ctx context.Context, id int64, info CompanyInfo) (*CompanyRecord, error)
	GetTree(ctx context.Context, id int64) (*orgtree.Company, error)
}

// AreaGateway はエリアリソースの永続化ゲートウェイです。
type AreaGateway interface {
	Create(ctx context.Context, payload AreaPayload) (*AreaRecord, error)
	Update(ctx context.Context, id int64, patch NodePatch) (*AreaRecord, error)
	Delete(ctx context.Context, id int64) error
}

// DepartmentGateway は部署リソースの永続化ゲートウェイです。
type DepartmentGateway interface {
	Create(ctx context.Context, payload DepartmentPayload) (*DepartmentRecord, error)
	Update(ctx context.Context, id int64, patch NodePatch) (*DepartmentRecord, error)
	Delete(ctx context.Context, id int64) error
}

// PositionGateway は役職リソースの永続化ゲートウェイです。
type PositionGateway interface {
	Create(ctx context.Context, payload PositionPayload) (*PositionRecord, error)
	Update(ctx context.Context, id int64, patch NodePatch) (*PositionRecord, error)
	Delete(ctx context.Context, id int64) error
}

// Gateways はウィザードが利用する 4 種のゲートウェイをまとめます。
type Gateways struct {
	Companies   CompanyGateway
	Areas       AreaGateway
	Departments DepartmentGateway
	Positions   PositionGateway
}
