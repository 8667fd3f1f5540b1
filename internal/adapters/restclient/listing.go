package restclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ogurasousui/hr-structure/internal/core/listing"
	"github.com/ogurasousui/hr-structure/internal/core/wizard"
)

// ListOptions は一覧取得の共通パラメータです。ParentID は親リソースによる
// 絞り込みで、リソース種別ごとに companyId / areaId / departmentId として送られます。
type ListOptions struct {
	Page     listing.Params
	Name     *string
	ParentID *int64
}

// ListResult は一覧レスポンスのページ情報と結果です。
type ListResult[T any] struct {
	Total    int
	PageSize int
	Offset   int
	Results  []T
}

type listEnvelope[T any] struct {
	Status string `json:"status"`
	Data   struct {
		Total    int `json:"total"`
		PageSize int `json:"pageSize"`
		Offset   int `json:"offset"`
		Results  []T `json:"results"`
	} `json:"data"`
}

func listQuery(opts ListOptions, parentKey string) string {
	values := url.Values{}
	if opts.Page.OrderBy != "" {
		values.Set("orderBy", opts.Page.OrderBy)
	}
	if opts.Page.Order != "" {
		values.Set("orderType", string(opts.Page.Order))
	}
	if opts.Page.Offset != 0 {
		values.Set("offset", strconv.Itoa(opts.Page.Offset))
	}
	if opts.Page.PageSize != 0 {
		values.Set("pageSize", strconv.Itoa(opts.Page.PageSize))
	}
	if opts.Name != nil {
		values.Set("name", *opts.Name)
	}
	if opts.ParentID != nil {
		values.Set(parentKey, strconv.FormatInt(*opts.ParentID, 10))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// List は企業の一覧を取得します。
func (g *CompanyClient) List(ctx context.Context, opts ListOptions) (*ListResult[wizard.CompanyRecord], error) {
	var envelope listEnvelope[companyDTO]
	if err := g.client.do(ctx, http.MethodGet, "/api/companies"+listQuery(opts, ""), nil, &envelope); err != nil {
		return nil, err
	}

	result := &ListResult[wizard.CompanyRecord]{
		Total:    envelope.Data.Total,
		PageSize: envelope.Data.PageSize,
		Offset:   envelope.Data.Offset,
		Results:  make([]wizard.CompanyRecord, 0, len(envelope.Data.Results)),
	}
	for _, dto := range envelope.Data.Results {
		result.Results = append(result.Results, *toCompanyRecord(dto))
	}
	return result, nil
}

// GetByID は企業を単体で取得します。組織ツリーが必要な場合は GetTree を使います。
func (g *CompanyClient) GetByID(ctx context.Context, id int64) (*wizard.CompanyRecord, error) {
	var envelope companyEnvelope
	if err := g.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/companies/%d", id), nil, &envelope); err != nil {
		return nil, err
	}
	return toCompanyRecord(envelope.Data), nil
}

// List はエリアの一覧を取得します。ParentID は companyId として送られます。
func (g *AreaClient) List(ctx context.Context, opts ListOptions) (*ListResult[wizard.AreaRecord], error) {
	var envelope listEnvelope[nodeDTO]
	if err := g.client.do(ctx, http.MethodGet, "/api/areas"+listQuery(opts, "companyId"), nil, &envelope); err != nil {
		return nil, err
	}

	result := &ListResult[wizard.AreaRecord]{
		Total:    envelope.Data.Total,
		PageSize: envelope.Data.PageSize,
		Offset:   envelope.Data.Offset,
		Results:  make([]wizard.AreaRecord, 0, len(envelope.Data.Results)),
	}
	for _, dto := range envelope.Data.Results {
		result.Results = append(result.Results, wizard.AreaRecord{
			ID:          dto.ID,
			Name:        dto.Name,
			Description: dto.Description,
			CompanyID:   dto.CompanyID,
		})
	}
	return result, nil
}

// GetByID はエリアを単体で取得します。
func (g *AreaClient) GetByID(ctx context.Context, id int64) (*wizard.AreaRecord, error) {
	var envelope nodeEnvelope
	if err := g.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/areas/%d", id), nil, &envelope); err != nil {
		return nil, err
	}
	return &wizard.AreaRecord{
		ID:          envelope.Data.ID,
		Name:        envelope.Data.Name,
		Description: envelope.Data.Description,
		CompanyID:   envelope.Data.CompanyID,
	}, nil
}

// List は部署の一覧を取得します。ParentID は areaId として送られます。
func (g *DepartmentClient) List(ctx context.Context, opts ListOptions) (*ListResult[wizard.DepartmentRecord], error) {
	var envelope listEnvelope[nodeDTO]
	if err := g.client.do(ctx, http.MethodGet, "/api/departments"+listQuery(opts, "areaId"), nil, &envelope); err != nil {
		return nil, err
	}

	result := &ListResult[wizard.DepartmentRecord]{
		Total:    envelope.Data.Total,
		PageSize: envelope.Data.PageSize,
		Offset:   envelope.Data.Offset,
		Results:  make([]wizard.DepartmentRecord, 0, len(envelope.Data.Results)),
	}
	for _, dto := range envelope.Data.Results {
		result.Results = append(result.Results, wizard.DepartmentRecord{
			ID:          dto.ID,
			Name:        dto.Name,
			Description: dto.Description,
			AreaID:      dto.AreaID,
		})
	}
	return result, nil
}

// GetByID は部署を単体で取得します。
func (g *DepartmentClient) GetByID(ctx context.Context, id int64) (*wizard.DepartmentRecord, error) {
	var envelope nodeEnvelope
	if err := g.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/departments/%d", id), nil, &envelope); err != nil {
		return nil, err
	}
	return &wizard.DepartmentRecord{
		ID:          envelope.Data.ID,
		Name:        envelope.Data.Name,
		Description: envelope.Data.Description,
		AreaID:      envelope.Data.AreaID,
	}, nil
}

// List は役職の一覧を取得します。ParentID は departmentId として送られます。
func (g *PositionClient) List(ctx context.Context, opts ListOptions) (*ListResult[wizard.PositionRecord], error) {
	var envelope listEnvelope[nodeDTO]
	if err := g.client.do(ctx, http.MethodGet, "/api/positions"+listQuery(opts, "departmentId"), nil, &envelope); err != nil {
		return nil, err
	}

	result := &ListResult[wizard.PositionRecord]{
		Total:    envelope.Data.Total,
		PageSize: envelope.Data.PageSize,
		Offset:   envelope.Data.Offset,
		Results:  make([]wizard.PositionRecord, 0, len(envelope.Data.Results)),
	}
	for _, dto := range envelope.Data.Results {
		result.Results = append(result.Results, wizard.PositionRecord{
			ID:           dto.ID,
			Name:         dto.Name,
			Description:  dto.Description,
			DepartmentID: dto.DepartmentID,
		})
	}
	return result, nil
}

// GetByID は役職を単体で取得します。
func (g *PositionClient) GetByID(ctx context.Context, id int64) (*wizard.PositionRecord, error) {
	var envelope nodeEnvelope
	if err := g.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/positions/%d", id), nil, &envelope); err != nil {
		return nil, err
	}
	return &wizard.PositionRecord{
		ID:           envelope.Data.ID,
		Name:         envelope.Data.Name,
		Description:  envelope.Data.Description,
		DepartmentID: envelope.Data.DepartmentID,
	}, nil
}
