package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/wheelmarket/wheelmarket/internal/models"
	"github.com/wheelmarket/wheelmarket/internal/common"
)

// HTTPGateway talks JSON to the collection endpoints described in the API
// contract: /vehicles, /users, /vehicles?type=data, /health.
type HTTPGateway struct {
	baseURL string
	http    *http.Client
	creds   Credentials
}

func NewHTTPGateway(baseURL string, creds Credentials) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		creds:   creds,
	}
}

// errorBody is the JSON shape servers use for failures.
type errorBody struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// do performs one authenticated JSON round trip. A nil dest discards the
// response body.
func (g *HTTPGateway) do(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: "encoding request body", Err: err}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return &APIError{Message: "building request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	g.authorize(ctx, req)

	resp, err := g.http.Do(req)
	if err != nil {
		return &APIError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return g.asAPIError(resp)
	}

	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &APIError{Message: "decoding response body", Err: err}
	}
	return nil
}

// authorize attaches the Authorization header: bearer token when cached,
// raw email otherwise. The email form is a legacy fallback kept for backward
// compatibility and is never a security boundary.
func (g *HTTPGateway) authorize(ctx context.Context, req *http.Request) {
	if g.creds == nil {
		return
	}
	if token := g.creds.AccessToken(ctx); token != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
		return
	}
	if email := g.creds.SessionEmail(ctx); email != "" {
		req.Header.Set(common.AuthHeaderName, email)
	}
}

// asAPIError extracts a human-readable message from a non-2xx response:
// the JSON error/reason field when the body parses, a synthesized
// status-line message when it does not.
func (g *HTTPGateway) asAPIError(resp *http.Response) *APIError {
	msg := fmt.Sprintf("unexpected status %s", resp.Status)

	b, err := io.ReadAll(resp.Body)
	if err == nil {
		var eb errorBody
		if json.Unmarshal(b, &eb) == nil {
			if eb.Error != "" {
				msg = eb.Error
			} else if eb.Reason != "" {
				msg = eb.Reason
			}
		}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

func (g *HTTPGateway) ListVehicles(ctx context.Context) ([]models.VehicleRecord, error) {
	var out []models.VehicleRecord
	if err := g.do(ctx, http.MethodGet, "/vehicles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *HTTPGateway) CreateVehicle(ctx context.Context, v models.VehicleRecord) (*models.VehicleRecord, error) {
	var out models.VehicleRecord
	if err := g.do(ctx, http.MethodPost, "/vehicles", v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *HTTPGateway) UpdateVehicle(ctx context.Context, v models.VehicleRecord) (*models.VehicleRecord, error) {
	var out models.VehicleRecord
	if err := g.do(ctx, http.MethodPut, "/vehicles", v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *HTTPGateway) DeleteVehicle(ctx context.Context, id int64) error {
	body := map[string]int64{"id": id}
	var ack struct {
		Success bool  `json:"success"`
		ID      int64 `json:"id"`
	}
	return g.do(ctx, http.MethodDelete, "/vehicles", body, &ack)
}

func (g *HTTPGateway) ListUsers(ctx context.Context) ([]models.UserRecord, error) {
	var out []models.UserRecord
	if err := g.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *HTTPGateway) Login(ctx context.Context, email, password string, role models.Role) (*models.AuthResult, error) {
	body := map[string]any{
		"action":   "login",
		"email":    email,
		"password": password,
	}
	if role != "" {
		body["role"] = role
	}
	var out models.AuthResult
	if err := g.do(ctx, http.MethodPost, "/users", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *HTTPGateway) Register(ctx context.Context, reg models.Registration) (*models.AuthResult, error) {
	body := map[string]any{
		"action":   "register",
		"name":     reg.Name,
		"email":    reg.Email,
		"password": reg.Password,
		"mobile":   reg.Mobile,
		"role":     reg.Role,
	}
	var out models.AuthResult
	if err := g.do(ctx, http.MethodPost, "/users", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *HTTPGateway) GetVehicleData(ctx context.Context) (models.VehicleTaxonomy, error) {
	var out models.VehicleTaxonomy
	if err := g.do(ctx, http.MethodGet, "/vehicles?type=data", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *HTTPGateway) SaveVehicleData(ctx context.Context, data models.VehicleTaxonomy) error {
	return g.do(ctx, http.MethodPost, "/vehicles?type=data", data, nil)
}

func (g *HTTPGateway) MediaUploadURL(ctx context.Context) (string, string, error) {
	var out struct {
		URL string `json:"url"`
		Key string `json:"key"`
	}
	if err := g.do(ctx, http.MethodGet, "/media/upload-url", nil, &out); err != nil {
		return "", "", err
	}
	return out.URL, out.Key, nil
}

func (g *HTTPGateway) Ping(ctx context.Context) error {
	return g.do(ctx, http.MethodGet, "/health", nil, nil)
}
