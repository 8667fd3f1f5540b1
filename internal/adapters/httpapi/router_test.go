package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ogurasousui/hr-structure/internal/core/area"
	"github.com/ogurasousui/hr-structure/internal/core/company"
	"github.com/ogurasousui/hr-structure/internal/core/department"
	"github.com/ogurasousui/hr-structure/internal/core/listing"
	"github.com/ogurasousui/hr-structure/internal/core/orgtree"
	"github.com/ogurasousui/hr-structure/internal/core/position"
	"github.com/sirupsen/logrus"
)

const testToken = "test-token"

type fakeCompanyUseCase struct {
	createFn func(ctx context.Context, in company.CreateCompanyInput) (*company.Company, error)
	getFn    func(ctx context.Context, in company.GetCompanyInput) (*company.Company, error)
	listFn   func(ctx context.Context, in company.ListCompaniesInput) (*company.ListCompaniesResult, error)
	updateFn func(ctx context.Context, in company.UpdateCompanyInput) (*company.Company, error)
	deleteFn func(ctx context.Context, in company.DeleteCompanyInput) error
}

func (f *fakeCompanyUseCase) CreateCompany(ctx context.Context, in company.CreateCompanyInput) (*company.Company, error) {
	return f.createFn(ctx, in)
}

func (f *fakeCompanyUseCase) GetCompany(ctx context.Context, in company.GetCompanyInput) (*company.Company, error) {
	return f.getFn(ctx, in)
}

func (f *fakeCompanyUseCase) ListCompanies(ctx context.Context, in company.ListCompaniesInput) (*company.ListCompaniesResult, error) {
	return f.listFn(ctx, in)
}

func (f *fakeCompanyUseCase) UpdateCompany(ctx context.Context, in company.UpdateCompanyInput) (*company.Company, error) {
	return f.updateFn(ctx, in)
}

func (f *fakeCompanyUseCase) DeleteCompany(ctx context.Context, in company.DeleteCompanyInput) error {
	return f.deleteFn(ctx, in)
}

type fakeAreaUseCase struct {
	createFn func(ctx context.Context, in area.CreateAreaInput) (*area.Area, error)
	getFn    func(ctx context.Context, in area.GetAreaInput) (*area.Area, error)
	listFn   func(ctx context.Context, in area.ListAreasInput) (*area.ListAreasResult, error)
	updateFn func(ctx context.Context, in area.UpdateAreaInput) (*area.Area, error)
	deleteFn func(ctx context.Context, in area.DeleteAreaInput) error
}

func (f *fakeAreaUseCase) CreateArea(ctx context.Context, in area.CreateAreaInput) (*area.Area, error) {
	return f.createFn(ctx, in)
}

func (f *fakeAreaUseCase) GetArea(ctx context.Context, in area.GetAreaInput) (*area.Area, error) {
	return f.getFn(ctx, in)
}

func (f *fakeAreaUseCase) ListAreas(ctx context.Context, in area.ListAreasInput) (*area.ListAreasResult, error) {
	return f.listFn(ctx, in)
}

func (f *fakeAreaUseCase) UpdateArea(ctx context.Context, in area.UpdateAreaInput) (*area.Area, error) {
	return f.updateFn(ctx, in)
}

func (f *fakeAreaUseCase) DeleteArea(ctx context.Context, in area.DeleteAreaInput) error {
	return f.deleteFn(ctx, in)
}

type fakeDepartmentUseCase struct {
	department.UseCase
}

type fakePositionUseCase struct {
	position.UseCase
}

type fakeTreeLoader struct {
	loadFn func(ctx context.Context, companyID int64) (*orgtree.Company, error)
}

func (f *fakeTreeLoader) LoadCompanyTree(ctx context.Context, companyID int64) (*orgtree.Company, error) {
	return f.loadFn(ctx, companyID)
}

func newTestRouter(companies company.UseCase, areas area.UseCase, loader orgtree.Loader) http.Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	if loader == nil {
		loader = &fakeTreeLoader{loadFn: func(ctx context.Context, companyID int64) (*orgtree.Company, error) {
			return nil, company.ErrCompanyNotFound
		}}
	}

	return NewRouter(RouterConfig{
		Logger:      logger,
		AuthToken:   testToken,
		Companies:   companies,
		Areas:       areas,
		Departments: &fakeDepartmentUseCase{},
		Positions:   &fakePositionUseCase{},
		Tree:        orgtree.NewService(loader),
	})
}

func authedRequest(method, target string, body string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&fakeCompanyUseCase{}, &fakeAreaUseCase{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/companies", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_RejectsWrongToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&fakeCompanyUseCase{}, &fakeAreaUseCase{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
	req.Header.Set("Authorization", "Bearer wrong")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_HealthzSkipsAuth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&fakeCompanyUseCase{}, &fakeAreaUseCase{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCompanyHandler_ListEnvelope(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	companies := &fakeCompanyUseCase{
		listFn: func(ctx context.Context, in company.ListCompaniesInput) (*company.ListCompaniesResult, error) {
			if in.Page.OrderBy != "name" || in.Page.Order != listing.OrderAsc {
				t.Errorf("unexpected page params: %+v", in.Page)
			}
			if in.Name == nil || *in.Name != "Acme" {
				t.Errorf("unexpected name filter: %+v", in.Name)
			}
			return &company.ListCompaniesResult{
				Companies: []*company.Company{{ID: 1, Name: "Acme", Address: "Tokyo", Email: "a@example.com", Phone: "03", CreatedAt: now, UpdatedAt: now}},
				Total:     5,
				PageSize:  10,
				Offset:    0,
			}, nil
		},
	}

	router := newTestRouter(companies, &fakeAreaUseCase{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/companies?orderBy=name&orderType=ASC&name=Acme", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Total    int               `json:"total"`
			PageSize int               `json:"pageSize"`
			Offset   int               `json:"offset"`
			Results  []json.RawMessage `json:"results"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Status != "success" || body.Data.Total != 5 || len(body.Data.Results) != 1 {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
}

func TestCompanyHandler_CreateReturns201(t *testing.T) {
	t.Parallel()

	companies := &fakeCompanyUseCase{
		createFn: func(ctx context.Context, in company.CreateCompanyInput) (*company.Company, error) {
			if in.Name != "Acme" || in.Industry != "IT" {
				t.Errorf("unexpected input: %+v", in)
			}
			industry := in.Industry
			return &company.Company{ID: 1, Name: in.Name, Address: in.Address, Email: in.Email, Phone: in.Phone, Industry: &industry}, nil
		},
	}

	router := newTestRouter(companies, &fakeAreaUseCase{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/companies",
		`{"name":"Acme","address":"Tokyo","email":"a@example.com","phone":"03","industry":"IT"}`))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCompanyHandler_CreateValidationError(t *testing.T) {
	t.Parallel()

	companies := &fakeCompanyUseCase{
		createFn: func(ctx context.Context, in company.CreateCompanyInput) (*company.Company, error) {
			return nil, company.ErrInvalidEmail
		},
	}

	router := newTestRouter(companies, &fakeAreaUseCase{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/companies", `{"name":"Acme"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCompanyHandler_GetReturnsTreeWithCounts(t *testing.T) {
	t.Parallel()

	loader := &fakeTreeLoader{loadFn: func(ctx context.Context, companyID int64) (*orgtree.Company, error) {
		if companyID != 1 {
			t.Errorf("unexpected company id: %d", companyID)
		}
		return &orgtree.Company{
			ID:   1,
			Name: "Acme",
			Areas: []orgtree.Area{{
				ID:   10,
				Name: "Kanto",
				Departments: []orgtree.Department{{
					ID:   100,
					Name: "Sales",
					Positions: []orgtree.Position{{
						ID:        1000,
						Name:      "Manager",
						Employees: []orgtree.EmployeeRef{{ID: 1, Name: "Yamada"}, {ID: 2, Name: "Sato"}},
					}},
				}},
			}},
		}, nil
	}}

	router := newTestRouter(&fakeCompanyUseCase{}, &fakeAreaUseCase{}, loader)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/companies/1", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			Areas []struct {
				EmployeeCount int `json:"employeeCount"`
				Departments   []struct {
					EmployeeCount int `json:"employeeCount"`
				} `json:"departments"`
			} `json:"areas"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body.Data.Areas) != 1 || body.Data.Areas[0].EmployeeCount != 2 {
		t.Fatalf("expected rolled up employee count, got %s", rec.Body.String())
	}
}

func TestCompanyHandler_GetNotFound(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&fakeCompanyUseCase{}, &fakeAreaUseCase{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/companies/99", ""))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCompanyHandler_DeleteMessageEnvelope(t *testing.T) {
	t.Parallel()

	companies := &fakeCompanyUseCase{
		deleteFn: func(ctx context.Context, in company.DeleteCompanyInput) error {
			if in.ID != 3 {
				t.Errorf("unexpected id: %d", in.ID)
			}
			return nil
		},
	}

	router := newTestRouter(companies, &fakeAreaUseCase{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/companies/3", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body messageEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Status != "success" || body.Message != "company deleted" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAreaHandler_ListParsesParentFilter(t *testing.T) {
	t.Parallel()

	areas := &fakeAreaUseCase{
		listFn: func(ctx context.Context, in area.ListAreasInput) (*area.ListAreasResult, error) {
			if in.CompanyID == nil || *in.CompanyID != 7 {
				t.Errorf("unexpected company filter: %+v", in.CompanyID)
			}
			return &area.ListAreasResult{Areas: nil, Total: 0, PageSize: 10, Offset: 0}, nil
		},
	}

	router := newTestRouter(&fakeCompanyUseCase{}, areas, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/areas?companyId=7", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAreaHandler_CreateMissingParent(t *testing.T) {
	t.Parallel()

	areas := &fakeAreaUseCase{
		createFn: func(ctx context.Context, in area.CreateAreaInput) (*area.Area, error) {
			return nil, area.ErrCompanyNotFound
		},
	}

	router := newTestRouter(&fakeCompanyUseCase{}, areas, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/areas",
		`{"name":"Kanto","description":"East","companyId":99}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestParseListParams_RejectsGarbage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/companies?offset=abc", nil)
	if _, err := parseListParams(req); err == nil {
		t.Fatalf("expected error for non-numeric offset")
	}
}
