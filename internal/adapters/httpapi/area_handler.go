package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ogurasousui/hr-structure/internal/core/area"
)

// AreaHandler はエリアリソースの HTTP ハンドラです。
type AreaHandler struct {
	areas area.UseCase
}

// NewAreaHandler は AreaHandler を生成します。
func NewAreaHandler(areas area.UseCase) *AreaHandler {
	return &AreaHandler{areas: areas}
}

// Register はルーターへエリアリソースのエンドポイントを登録します。
func (h *AreaHandler) Register(r *mux.Router) {
	r.HandleFunc("/areas", h.list).Methods(http.MethodGet)
	r.HandleFunc("/areas", h.create).Methods(http.MethodPost)
	r.HandleFunc("/areas/{id:[0-9]+}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/areas/{id:[0-9]+}", h.update).Methods(http.MethodPatch)
	r.HandleFunc("/areas/{id:[0-9]+}", h.delete).Methods(http.MethodDelete)
}

type createAreaRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CompanyID   int64  `json:"companyId"`
}

type updateAreaRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *AreaHandler) list(w http.ResponseWriter, r *http.Request) {
	page, err := parseListParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	companyID, err := optionalInt64(r, "companyId")
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.areas.ListAreas(r.Context(), area.ListAreasInput{
		Page:      page,
		Name:      optionalString(r, "name"),
		CompanyID: companyID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, result.Total, result.PageSize, result.Offset, newAreaViews(result.Areas))
}

func (h *AreaHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errInvalidRequestBody)
		return
	}

	created, err := h.areas.CreateArea(r.Context(), area.CreateAreaInput{
		Name:        req.Name,
		Description: req.Description,
		CompanyID:   req.CompanyID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, newAreaView(created))
}

func (h *AreaHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	found, err := h.areas.GetArea(r.Context(), area.GetAreaInput{ID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, newAreaView(found))
}

func (h *AreaHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errInvalidRequestBody)
		return
	}

	updated, err := h.areas.UpdateArea(r.Context(), area.UpdateAreaInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, newAreaView(updated))
}

func (h *AreaHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.areas.DeleteArea(r.Context(), area.DeleteAreaInput{ID: id}); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "area deleted")
}
