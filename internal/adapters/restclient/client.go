// Package restclient は組織構造 API を呼び出す HTTP ゲートウェイクライアントです。
// ウィザードが利用する 4 種のゲートウェイインターフェースを実装します。
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ogurasousui/hr-structure/internal/core/area"
	"github.com/ogurasousui/hr-structure/internal/core/company"
	"github.com/ogurasousui/hr-structure/internal/core/department"
	"github.com/ogurasousui/hr-structure/internal/core/position"
	"github.com/ogurasousui/hr-structure/internal/core/wizard"
	"github.com/ogurasousui/hr-structure/internal/platform/config"
)

// Client は API への接続情報を保持します。
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// New は Client を生成します。
func New(cfg config.ClientConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		authToken:  cfg.AuthToken,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Gateways はウィザードへ渡すゲートウェイ一式を返します。
func (c *Client) Gateways() wizard.Gateways {
	return wizard.Gateways{
		Companies:   &CompanyClient{client: c},
		Areas:       &AreaClient{client: c},
		Departments: &DepartmentClient{client: c},
		Positions:   &PositionClient{client: c},
	}
}

type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("restclient: encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("restclient: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("restclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.toError(resp, method, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("restclient: decode response: %w", err)
	}
	return nil
}

// toError はエラーレスポンスをドメインエラーへ対応付けます。
// 404 はパスのリソース種別に応じた NotFound エラーを返します。
func (c *Client) toError(resp *http.Response, method, path string) error {
	var envelope errorEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	if resp.StatusCode == http.StatusNotFound {
		switch {
		case strings.HasPrefix(path, "/api/companies"):
			return company.ErrCompanyNotFound
		case strings.HasPrefix(path, "/api/areas"):
			return area.ErrAreaNotFound
		case strings.HasPrefix(path, "/api/departments"):
			return department.ErrDepartmentNotFound
		case strings.HasPrefix(path, "/api/positions"):
			return position.ErrPositionNotFound
		}
	}

	message := envelope.Message
	if message == "" {
		message = resp.Status
	}
	return fmt.Errorf("restclient: %s %s: %s", method, path, message)
}
