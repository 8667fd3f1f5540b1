package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ogurasousui/hr-structure/internal/core/area"
	"github.com/ogurasousui/hr-structure/internal/core/company"
	"github.com/ogurasousui/hr-structure/internal/core/department"
	"github.com/ogurasousui/hr-structure/internal/core/orgtree"
	"github.com/ogurasousui/hr-structure/internal/core/position"
	"github.com/sirupsen/logrus"
)

// RouterConfig はルーター構築に必要な依存をまとめます。
type RouterConfig struct {
	Logger      logrus.FieldLogger
	AuthToken   string
	Companies   company.UseCase
	Areas       area.UseCase
	Departments department.UseCase
	Positions   position.UseCase
	Tree        *orgtree.Service
}

// NewRouter は /api 配下に全リソースのエンドポイントを備えたルーターを構築します。
// /healthz のみ認証なしで応答します。
func NewRouter(cfg RouterConfig) *mux.Router {
	root := mux.NewRouter()
	root.Use(RequestLogger(cfg.Logger))

	root.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusOK, "ok")
	}).Methods(http.MethodGet)

	api := root.PathPrefix("/api").Subrouter()
	api.Use(BearerAuth(cfg.AuthToken))

	NewCompanyHandler(cfg.Companies, cfg.Tree).Register(api)
	NewAreaHandler(cfg.Areas).Register(api)
	NewDepartmentHandler(cfg.Departments).Register(api)
	NewPositionHandler(cfg.Positions).Register(api)

	return root
}
