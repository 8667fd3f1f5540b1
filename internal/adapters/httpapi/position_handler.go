package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ogurasousui/hr-structure/internal/core/position"
)

// PositionHandler は役職リソースの HTTP ハンドラです。
type PositionHandler struct {
	positions position.UseCase
}

// NewPositionHandler は PositionHandler を生成します。
func NewPositionHandler(positions position.UseCase) *PositionHandler {
	return &PositionHandler{positions: positions}
}

// Register はルーターへ役職リソースのエンドポイントを登録します。
func (h *PositionHandler) Register(r *mux.Router) {
	r.HandleFunc("/positions", h.list).Methods(http.MethodGet)
	r.HandleFunc("/positions", h.create).Methods(http.MethodPost)
	r.HandleFunc("/positions/{id:[0-9]+}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/positions/{id:[0-9]+}", h.update).Methods(http.MethodPatch)
	r.HandleFunc("/positions/{id:[0-9]+}", h.delete).Methods(http.MethodDelete)
}

type createPositionRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DepartmentID int64  `json:"departmentId"`
}

type updatePositionRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *PositionHandler) list(w http.ResponseWriter, r *http.Request) {
	page, err := parseListParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	departmentID, err := optionalInt64(r, "departmentId")
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.positions.ListPositions(r.Context(), position.ListPositionsInput{
		Page:         page,
		Name:         optionalString(r, "name"),
		DepartmentID: departmentID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, result.Total, result.PageSize, result.Offset, newPositionViews(result.Positions))
}

func (h *PositionHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errInvalidRequestBody)
		return
	}

	created, err := h.positions.CreatePosition(r.Context(), position.CreatePositionInput{
		Name:         req.Name,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, newPositionView(created))
}

func (h *PositionHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	found, err := h.positions.GetPosition(r.Context(), position.GetPositionInput{ID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, newPositionView(found))
}

func (h *PositionHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errInvalidRequestBody)
		return
	}

	updated, err := h.positions.UpdatePosition(r.Context(), position.UpdatePositionInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, newPositionView(updated))
}

func (h *PositionHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.positions.DeletePosition(r.Context(), position.DeletePositionInput{ID: id}); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "position deleted")
}
