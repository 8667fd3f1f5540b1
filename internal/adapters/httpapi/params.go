package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/ogurasousui/hr-structure/internal/core/listing"
)

var (
	errInvalidRequestBody = errors.New("invalid request body")
	errInvalidQueryParam  = errors.New("invalid query parameter")
	errInvalidPathID      = errors.New("invalid id")
)

// parseListParams はクエリ文字列から共通のページング・ソート指定を読み取ります。
// 既定値の適用と検証は service 層の Normalize に委ねます。
func parseListParams(r *http.Request) (listing.Params, error) {
	query := r.URL.Query()

	params := listing.Params{
		OrderBy: query.Get("orderBy"),
		Order:   listing.Order(query.Get("orderType")),
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return listing.Params{}, errInvalidQueryParam
		}
		params.Offset = offset
	}
	if raw := query.Get("pageSize"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return listing.Params{}, errInvalidQueryParam
		}
		params.PageSize = pageSize
	}

	return params, nil
}

func optionalString(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}

func optionalInt64(r *http.Request, key string) (*int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errInvalidQueryParam
	}
	return &value, nil
}

func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidPathID
	}
	return id, nil
}
