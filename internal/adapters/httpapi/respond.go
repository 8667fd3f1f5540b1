// Package httpapi は組織構造 API の HTTP ハンドラとルーティングを提供します。
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ogurasousui/hr-structure/internal/core/area"
	"github.com/ogurasousui/hr-structure/internal/core/company"
	"github.com/ogurasousui/hr-structure/internal/core/department"
	"github.com/ogurasousui/hr-structure/internal/core/listing"
	"github.com/ogurasousui/hr-structure/internal/core/position"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type dataEnvelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type listEnvelope struct {
	Status string   `json:"status"`
	Data   listPage `json:"data"`
}

type listPage struct {
	Total    int `json:"total"`
	PageSize int `json:"pageSize"`
	Offset   int `json:"offset"`
	Results  any `json:"results"`
}

type messageEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, dataEnvelope{Status: statusSuccess, Data: data})
}

func writeList(w http.ResponseWriter, total, pageSize, offset int, results any) {
	writeJSON(w, http.StatusOK, listEnvelope{
		Status: statusSuccess,
		Data:   listPage{Total: total, PageSize: pageSize, Offset: offset, Results: results},
	})
}

func writeMessage(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, messageEnvelope{Status: statusSuccess, Message: message})
}

var notFoundErrors = []error{
	company.ErrCompanyNotFound,
	area.ErrAreaNotFound,
	department.ErrDepartmentNotFound,
	position.ErrPositionNotFound,
}

var badRequestErrors = []error{
	company.ErrInvalidName,
	company.ErrInvalidAddress,
	company.ErrInvalidEmail,
	company.ErrInvalidPhone,
	company.ErrInvalidIndustry,
	company.ErrInvalidID,
	area.ErrCompanyNotFound,
	area.ErrInvalidName,
	area.ErrInvalidDescription,
	area.ErrInvalidID,
	area.ErrInvalidCompanyID,
	department.ErrAreaNotFound,
	department.ErrInvalidName,
	department.ErrInvalidDescription,
	department.ErrInvalidID,
	department.ErrInvalidAreaID,
	position.ErrDepartmentNotFound,
	position.ErrInvalidName,
	position.ErrInvalidDescription,
	position.ErrInvalidID,
	position.ErrInvalidDepartmentID,
	listing.ErrInvalidPageSize,
	listing.ErrInvalidOffset,
	listing.ErrInvalidOrder,
	errInvalidRequestBody,
	errInvalidQueryParam,
	errInvalidPathID,
}

// writeError はドメインエラーを HTTP ステータスへ対応付けて返却します。
// 存在しない親を指すエラーは入力不備として 400 を返します。
func writeError(w http.ResponseWriter, err error) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			writeJSON(w, http.StatusNotFound, messageEnvelope{Status: statusError, Message: target.Error()})
			return
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			writeJSON(w, http.StatusBadRequest, messageEnvelope{Status: statusError, Message: err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusInternalServerError, messageEnvelope{Status: statusError, Message: "internal server error"})
}
