package restclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ogurasousui/hr-structure/internal/core/orgtree"
	"github.com/ogurasousui/hr-structure/internal/core/wizard"
)

type companyDTO struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Industry *string `json:"industry"`
}

type nodeDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	CompanyID    int64  `json:"companyId"`
	AreaID       int64  `json:"areaId"`
	DepartmentID int64  `json:"departmentId"`
}

type companyEnvelope struct {
	Status string     `json:"status"`
	Data   companyDTO `json:"data"`
}

type nodeEnvelope struct {
	Status string  `json:"status"`
	Data   nodeDTO `json:"data"`
}

type companyTreeDTO struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Address  string        `json:"address"`
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	Industry *string       `json:"industry"`
	Areas    []areaTreeDTO `json:"areas"`
}

type areaTreeDTO struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	EmployeeCount int                 `json:"employeeCount"`
	Departments   []departmentTreeDTO `json:"departments"`
}

type departmentTreeDTO struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	EmployeeCount int               `json:"employeeCount"`
	Positions     []positionTreeDTO `json:"positions"`
}

type positionTreeDTO struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	EmployeeCount int              `json:"employeeCount"`
	Employees     []employeeRefDTO `json:"employees"`
}

type employeeRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type companyTreeEnvelope struct {
	Status string         `json:"status"`
	Data   companyTreeDTO `json:"data"`
}

type nodePatchBody struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CompanyClient は企業ゲートウェイの HTTP 実装です。
type CompanyClient struct {
	client *Client
}

// Create は企業を作成します。
func (g *CompanyClient) Create(ctx context.Context, info wizard.CompanyInfo) (*wizard.CompanyRecord, error) {
	body := map[string]string{
		"name":     info.Name,
		"address":  info.Address,
		"email":    info.Email,
		"phone":    info.Phone,
		"industry": info.Industry,
	}

	var envelope companyEnvelope
	if err := g.client.do(ctx, http.MethodPost, "/api/companies", body, &envelope); err != nil {
		return nil, err
	}
	return toCompanyRecord(envelope.Data), nil
}

// Update は企業情報を更新します。
func (g *CompanyClient) Update(ctx context.Context, id int64, info wizard.CompanyInfo) (*wizard.CompanyRecord, error) {
	body := map[string]string{
		"name":     info.Name,
		"address":  info.Address,
		"email":    info.Email,
		"phone":    info.Phone,
		"industry": info.Industry,
	}

	var envelope companyEnvelope
	if err := g.client.do(ctx, http.MethodPatch, fmt.Sprintf("/api/companies/%d", id), body, &envelope); err != nil {
		return nil, err
	}
	return toCompanyRecord(envelope.Data), nil
}

// GetTree は企業の組織ツリーを従業員数付きで取得します。
func (g *CompanyClient) GetTree(ctx context.Context, id int64) (*orgtree.Company, error) {
	var envelope companyTreeEnvelope
	if err := g.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/companies/%d", id), nil, &envelope); err != nil {
		return nil, err
	}
	return toOrgTree(envelope.Data), nil
}

// AreaClient はエリアゲートウェイの HTTP 実装です。
type AreaClient struct {
	client *Client
}

// Create はエリアを作成します。
func (g *AreaClient) Create(ctx context.Context, payload wizard.AreaPayload) (*wizard.AreaRecord, error) {
	body := map[string]any{
		"name":        payload.Name,
		"description": payload.Description,
		"companyId":   payload.CompanyID,
	}

	var envelope nodeEnvelope
	if err := g.client.do(ctx, http.MethodPost, "/api/areas", body, &envelope); err != nil {
		return nil, err
	}
	return &wizard.AreaRecord{
		ID:          envelope.Data.ID,
		Name:        envelope.Data.Name,
		Description: envelope.Data.Description,
		CompanyID:   envelope.Data.CompanyID,
	}, nil
}

// Update はエリアの名前・説明を部分更新します。
func (g *AreaClient) Update(ctx context.Context, id int64, patch wizard.NodePatch) (*wizard.AreaRecord, error) {
	var envelope nodeEnvelope
	body := nodePatchBody{Name: patch.Name, Description: patch.Description}
	if err := g.client.do(ctx, http.MethodPatch, fmt.Sprintf("/api/areas/%d", id), body, &envelope); err != nil {
		return nil, err
	}
	return &wizard.AreaRecord{
		ID:          envelope.Data.ID,
		Name:        envelope.Data.Name,
		Description: envelope.Data.Description,
		CompanyID:   envelope.Data.CompanyID,
	}, nil
}

// Delete はエリアを削除します。
func (g *AreaClient) Delete(ctx context.Context, id int64) error {
	return g.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/areas/%d", id), nil, nil)
}

// DepartmentClient は部署ゲートウェイの HTTP 実装です。
type DepartmentClient struct {
	client *Client
}

// Create は部署を作成します。
func (g *DepartmentClient) Create(ctx context.Context, payload wizard.DepartmentPayload) (*wizard.DepartmentRecord, error) {
	body := map[string]any{
		"name":        payload.Name,
		"description": payload.Description,
		"areaId":      payload.AreaID,
	}

	var envelope nodeEnvelope
	if err := g.client.do(ctx, http.MethodPost, "/api/departments", body, &envelope); err != nil {
		return nil, err
	}
	return &wizard.DepartmentRecord{
		ID:          envelope.Data.ID,
		Name:        envelope.Data.Name,
		Description: envelope.Data.Description,
		AreaID:      envelope.Data.AreaID,
	}, nil
}

// Update は部署の名前・説明を部分更新します。
func (g *DepartmentClient) Update(ctx context.Context, id int64, patch wizard.NodePatch) (*wizard.DepartmentRecord, error) {
	var envelope nodeEnvelope
	body := nodePatchBody{Name: patch.Name, Description: patch.Description}
	if err := g.client.do(ctx, http.MethodPatch, fmt.Sprintf("/api/departments/%d", id), body, &envelope); err != nil {
		return nil, err
	}
	return &wizard.DepartmentRecord{
		ID:          envelope.Data.ID,
		Name:        envelope.Data.Name,
		Description: envelope.Data.Description,
		AreaID:      envelope.Data.AreaID,
	}, nil
}

// Delete は部署を削除します。
func (g *DepartmentClient) Delete(ctx context.Context, id int64) error {
	return g.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/departments/%d", id), nil, nil)
}

// PositionClient は役職ゲートウェイの HTTP 実装です。
type PositionClient struct {
	client *Client
}

// Create は役職を作成します。
func (g *PositionClient) Create(ctx context.Context, payload wizard.PositionPayload) (*wizard.PositionRecord, error) {
	body := map[string]any{
		"name":         payload.Name,
		"description":  payload.Description,
		"departmentId": payload.DepartmentID,
	}

	var envelope nodeEnvelope
	if err := g.client.do(ctx, http.MethodPost, "/api/positions", body, &envelope); err != nil {
		return nil, err
	}
	return &wizard.PositionRecord{
		ID:           envelope.Data.ID,
		Name:         envelope.Data.Name,
		Description:  envelope.Data.Description,
		DepartmentID: envelope.Data.DepartmentID,
	}, nil
}

// Update は役職の名前・説明を部分更新します。
func (g *PositionClient) Update(ctx context.Context, id int64, patch wizard.NodePatch) (*wizard.PositionRecord, error) {
	var envelope nodeEnvelope
	body := nodePatchBody{Name: patch.Name, Description: patch.Description}
	if err := g.client.do(ctx, http.MethodPatch, fmt.Sprintf("/api/positions/%d", id), body, &envelope); err != nil {
		return nil, err
	}
	return &wizard.PositionRecord{
		ID:           envelope.Data.ID,
		Name:         envelope.Data.Name,
		Description:  envelope.Data.Description,
		DepartmentID: envelope.Data.DepartmentID,
	}, nil
}

// Delete は役職を削除します。
func (g *PositionClient) Delete(ctx context.Context, id int64) error {
	return g.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/positions/%d", id), nil, nil)
}

func toCompanyRecord(dto companyDTO) *wizard.CompanyRecord {
	record := &wizard.CompanyRecord{
		ID:      dto.ID,
		Name:    dto.Name,
		Address: dto.Address,
		Email:   dto.Email,
		Phone:   dto.Phone,
	}
	if dto.Industry != nil {
		record.Industry = *dto.Industry
	}
	return record
}

func toOrgTree(dto companyTreeDTO) *orgtree.Company {
	tree := &orgtree.Company{
		ID:       dto.ID,
		Name:     dto.Name,
		Address:  dto.Address,
		Email:    dto.Email,
		Phone:    dto.Phone,
		Industry: dto.Industry,
		Areas:    make([]orgtree.Area, 0, len(dto.Areas)),
	}
	for _, a := range dto.Areas {
		areaNode := orgtree.Area{
			ID:            a.ID,
			Name:          a.Name,
			Description:   a.Description,
			CompanyID:     dto.ID,
			EmployeeCount: a.EmployeeCount,
			Departments:   make([]orgtree.Department, 0, len(a.Departments)),
		}
		for _, d := range a.Departments {
			departmentNode := orgtree.Department{
				ID:            d.ID,
				Name:          d.Name,
				Description:   d.Description,
				AreaID:        a.ID,
				EmployeeCount: d.EmployeeCount,
				Positions:     make([]orgtree.Position, 0, len(d.Positions)),
			}
			for _, p := range d.Positions {
				positionNode := orgtree.Position{
					ID:            p.ID,
					Name:          p.Name,
					Description:   p.Description,
					DepartmentID:  d.ID,
					EmployeeCount: p.EmployeeCount,
					Employees:     make([]orgtree.EmployeeRef, 0, len(p.Employees)),
				}
				for _, e := range p.Employees {
					positionNode.Employees = append(positionNode.Employees, orgtree.EmployeeRef{ID: e.ID, Name: e.Name})
				}
				departmentNode.Positions = append(departmentNode.Positions, positionNode)
			}
			areaNode.Departments = append(areaNode.Departments, departmentNode)
		}
		tree.Areas = append(tree.Areas, areaNode)
	}
	return tree
}
