// Package orgtree は企業を頂点とする組織階層のツリー表現を提供します。
// 企業 → エリア → 部署 → 役職 の 4 階層で、役職には従業員への参照のみがぶら下がります。
package orgtree

import "context"

// Company は組織ツリーのルートです。
type Company struct {
	ID       int64
	Name     string
	Address  string
	Email    string
	Phone    string
	Industry *string
	Areas    []Area
}

// Area はツリー上のエリアノードです。
type Area struct {
	ID            int64
	Name          string
	Description   string
	CompanyID     int64
	Departments   []Department
	EmployeeCount int
}

// Department はツリー上の部署ノードです。
type Department struct {
	ID            int64
	Name          string
	Description   string
	AreaID        int64
	Positions     []Position
	EmployeeCount int
}

// Position はツリー上の役職ノードです。構造階層の葉にあたります。
type Position struct {
	ID            int64
	Name          string
	Description   string
	DepartmentID  int64
	Employees     []EmployeeRef
	EmployeeCount int
}

// EmployeeRef は役職に割り当てられた従業員への参照です。
// 従業員の詳細情報は別サブシステムが管理します。
type EmployeeRef struct {
	ID   int64
	Name string
}

// Loader は企業の組織ツリー全体を読み込むインターフェースです。
type Loader interface {
	LoadCompanyTree(ctx context.Context, companyID int64) (*Company, error)
}
