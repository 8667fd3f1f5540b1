package restclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ogurasousui/hr-structure/internal/core/area"
	"github.com/ogurasousui/hr-structure/internal/core/listing"
	"github.com/ogurasousui/hr-structure/internal/core/wizard"
	"github.com/ogurasousui/hr-structure/internal/platform/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(config.ClientConfig{
		BaseURL:   server.URL,
		AuthToken: "test-token",
		Timeout:   5 * time.Second,
	})
	return client, server
}

func TestCompanyClient_CreateSendsBearerToken(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/companies" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("missing bearer token: %q", r.Header.Get("Authorization"))
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if body["name"] != "Acme" || body["industry"] != "IT" {
			t.Errorf("unexpected body: %+v", body)
		}

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"success","data":{"id":1,"name":"Acme","address":"Tokyo","email":"a@example.com","phone":"03","industry":"IT"}}`))
	})

	record, err := client.Gateways().Companies.Create(context.Background(), wizard.CompanyInfo{
		Name: "Acme", Address: "Tokyo", Email: "a@example.com", Phone: "03", Industry: "IT",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if record.ID != 1 || record.Industry != "IT" {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestAreaClient_Create(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if body["companyId"] != float64(7) {
			t.Errorf("unexpected companyId: %v", body["companyId"])
		}

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"success","data":{"id":10,"name":"Kanto","description":"East","companyId":7}}`))
	})

	record, err := client.Gateways().Areas.Create(context.Background(), wizard.AreaPayload{
		Name: "Kanto", Description: "East", CompanyID: 7,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if record.ID != 10 || record.CompanyID != 7 {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestAreaClient_UpdateOmitsUnsetFields(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/areas/10" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if _, ok := body["description"]; ok {
			t.Errorf("expected description to be omitted, got %s", raw)
		}
		if body["name"] != "Kanto East" {
			t.Errorf("unexpected name: %v", body["name"])
		}

		_, _ = w.Write([]byte(`{"status":"success","data":{"id":10,"name":"Kanto East","description":"East","companyId":7}}`))
	})

	name := "Kanto East"
	record, err := client.Gateways().Areas.Update(context.Background(), 10, wizard.NodePatch{Name: &name})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if record.Name != "Kanto East" {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestAreaClient_DeleteNotFound(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"error","message":"area not found"}`))
	})

	err := client.Gateways().Areas.Delete(context.Background(), 99)
	if !errors.Is(err, area.ErrAreaNotFound) {
		t.Fatalf("expected ErrAreaNotFound, got %v", err)
	}
}

func TestCompanyClient_GetTree(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/companies/1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
            "status": "success",
            "data": {
                "id": 1, "name": "Acme", "address": "Tokyo", "email": "a@example.com", "phone": "03", "industry": null,
                "areas": [{
                    "id": 10, "name": "Kanto", "description": "East", "employeeCount": 3,
                    "departments": [{
                        "id": 100, "name": "Sales", "description": "", "employeeCount": 3,
                        "positions": [{
                            "id": 1000, "name": "Manager", "description": "", "employeeCount": 3,
                            "employees": [{"id": 1, "name": "Yamada"}, {"id": 2, "name": "Sato"}, {"id": 3, "name": "Suzuki"}]
                        }]
                    }]
                }]
            }
        }`))
	})

	tree, err := client.Gateways().Companies.GetTree(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetTree returned error: %v", err)
	}

	if tree.ID != 1 || len(tree.Areas) != 1 {
		t.Fatalf("unexpected tree: %+v", tree)
	}
	areaNode := tree.Areas[0]
	if areaNode.EmployeeCount != 3 || areaNode.CompanyID != 1 {
		t.Fatalf("unexpected area node: %+v", areaNode)
	}
	positionNode := areaNode.Departments[0].Positions[0]
	if len(positionNode.Employees) != 3 || positionNode.DepartmentID != 100 {
		t.Fatalf("unexpected position node: %+v", positionNode)
	}
}

func TestAreaClient_ListBuildsQuery(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("orderBy") != "name" || query.Get("orderType") != "ASC" {
			t.Errorf("unexpected sort params: %s", r.URL.RawQuery)
		}
		if query.Get("companyId") != "7" || query.Get("pageSize") != "5" {
			t.Errorf("unexpected filter params: %s", r.URL.RawQuery)
		}

		_, _ = w.Write([]byte(`{"status":"success","data":{"total":12,"pageSize":5,"offset":0,"results":[
            {"id":10,"name":"Kanto","description":"East","companyId":7},
            {"id":11,"name":"Kansai","description":"West","companyId":7}
        ]}}`))
	})

	companyID := int64(7)
	result, err := (&AreaClient{client: client}).List(context.Background(), ListOptions{
		Page:     listing.Params{OrderBy: "name", Order: listing.OrderAsc, PageSize: 5},
		ParentID: &companyID,
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if result.Total != 12 || len(result.Results) != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Results[1].Name != "Kansai" {
		t.Fatalf("unexpected record: %+v", result.Results[1])
	}
}

func TestClient_ServerErrorMessage(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error","message":"internal server error"}`))
	})

	_, err := client.Gateways().Companies.Create(context.Background(), wizard.CompanyInfo{Name: "Acme"})
	if err == nil {
		t.Fatalf("expected error")
	}
}
