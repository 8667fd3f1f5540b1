package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ogurasousui/hr-structure/internal/core/department"
)

// DepartmentHandler は部署リソースの HTTP ハンドラです。
type DepartmentHandler struct {
	departments department.UseCase
}

// NewDepartmentHandler は DepartmentHandler を生成します。
func NewDepartmentHandler(departments department.UseCase) *DepartmentHandler {
	return &DepartmentHandler{departments: departments}
}

// Register はルーターへ部署リソースのエンドポイントを登録します。
func (h *DepartmentHandler) Register(r *mux.Router) {
	r.HandleFunc("/departments", h.list).Methods(http.MethodGet)
	r.HandleFunc("/departments", h.create).Methods(http.MethodPost)
	r.HandleFunc("/departments/{id:[0-9]+}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/departments/{id:[0-9]+}", h.update).Methods(http.MethodPatch)
	r.HandleFunc("/departments/{id:[0-9]+}", h.delete).Methods(http.MethodDelete)
}

type createDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	AreaID      int64  `json:"areaId"`
}

type updateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *DepartmentHandler) list(w http.ResponseWriter, r *http.Request) {
	page, err := parseListParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	areaID, err := optionalInt64(r, "areaId")
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.departments.ListDepartments(r.Context(), department.ListDepartmentsInput{
		Page:   page,
		Name:   optionalString(r, "name"),
		AreaID: areaID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, result.Total, result.PageSize, result.Offset, newDepartmentViews(result.Departments))
}

func (h *DepartmentHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errInvalidRequestBody)
		return
	}

	created, err := h.departments.CreateDepartment(r.Context(), department.CreateDepartmentInput{
		Name:        req.Name,
		Description: req.Description,
		AreaID:      req.AreaID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, newDepartmentView(created))
}

func (h *DepartmentHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	found, err := h.departments.GetDepartment(r.Context(), department.GetDepartmentInput{ID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, newDepartmentView(found))
}

func (h *DepartmentHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errInvalidRequestBody)
		return
	}

	updated, err := h.departments.UpdateDepartment(r.Context(), department.UpdateDepartmentInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, newDepartmentView(updated))
}

func (h *DepartmentHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.departments.DeleteDepartment(r.Context(), department.DeleteDepartmentInput{ID: id}); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "department deleted")
}
