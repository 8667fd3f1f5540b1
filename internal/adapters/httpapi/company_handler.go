package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ogurasousui/hr-structure/internal/core/company"
	"github.com/ogurasousui/hr-structure/internal/core/orgtree"
)

// CompanyHandler は企業リソースの HTTP ハンドラです。
// 詳細取得は組織ツリー全体を従業員数付きで返します。
type CompanyHandler struct {
	companies company.UseCase
	tree      *orgtree.Service
}

// NewCompanyHandler は CompanyHandler を生成します。
func NewCompanyHandler(companies company.UseCase, tree *orgtree.Service) *CompanyHandler {
	return &CompanyHandler{companies: companies, tree: tree}
}

// Register はルーターへ企業リソースのエンドポイントを登録します。
func (h *CompanyHandler) Register(r *mux.Router) {
	r.HandleFunc("/companies", h.list).Methods(http.MethodGet)
	r.HandleFunc("/companies", h.create).Methods(http.MethodPost)
	r.HandleFunc("/companies/{id:[0-9]+}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/companies/{id:[0-9]+}", h.update).Methods(http.MethodPatch)
	r.HandleFunc("/companies/{id:[0-9]+}", h.delete).Methods(http.MethodDelete)
}

type createCompanyRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Industry string `json:"industry"`
}

type updateCompanyRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Industry *string `json:"industry"`
}

func (h *CompanyHandler) list(w http.ResponseWriter, r *http.Request) {
	page, err := parseListParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.companies.ListCompanies(r.Context(), company.ListCompaniesInput{
		Page: page,
		Name: optionalString(r, "name"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, result.Total, result.PageSize, result.Offset, newCompanyViews(result.Companies))
}

func (h *CompanyHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errInvalidRequestBody)
		return
	}

	created, err := h.companies.CreateCompany(r.Context(), company.CreateCompanyInput{
		Name:     req.Name,
		Address:  req.Address,
		Email:    req.Email,
		Phone:    req.Phone,
		Industry: req.Industry,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, newCompanyView(created))
}

func (h *CompanyHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	tree, err := h.tree.GetCompanyTree(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, newCompanyTreeView(tree))
}

func (h *CompanyHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errInvalidRequestBody)
		return
	}

	updated, err := h.companies.UpdateCompany(r.Context(), company.UpdateCompanyInput{
		ID:       id,
		Name:     req.Name,
		Address:  req.Address,
		Email:    req.Email,
		Phone:    req.Phone,
		Industry: req.Industry,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, newCompanyView(updated))
}

func (h *CompanyHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.companies.DeleteCompany(r.Context(), company.DeleteCompanyInput{ID: id}); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "company deleted")
}
