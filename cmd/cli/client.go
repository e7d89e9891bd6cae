package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iho/finledger/internal/adapter/http/dto"
)

// apiClient talks to the finledger HTTP API.
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// apiError is a non-2xx API response.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

func (c *apiClient) do(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// send performs the request and returns the response when the status is 2xx.
// The caller closes the body.
func (c *apiClient) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, decodeAPIError(resp)
	}
	return resp, nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var e dto.ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Error != "" {
		msg := e.Error
		if e.Message != "" {
			msg += ": " + e.Message
		}
		return &apiError{Status: resp.StatusCode, Message: msg}
	}
	return &apiError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
}

func sessionPath(id, suffix string) string {
	return "/api/v1/sessions/" + id + suffix
}

func (c *apiClient) startSession(ctx context.Context) (*dto.SessionResponse, error) {
	var s dto.SessionResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/sessions", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *apiClient) endSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, sessionPath(id, ""), nil, nil)
}

func (c *apiClient) addIncome(ctx context.Context, id string, req dto.CreateIncomeRequest) (*dto.IncomeResponse, error) {
	var e dto.IncomeResponse
	if err := c.do(ctx, http.MethodPost, sessionPath(id, "/income"), req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *apiClient) addExpense(ctx context.Context, id string, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	var e dto.ExpenseResponse
	if err := c.do(ctx, http.MethodPost, sessionPath(id, "/expenses"), req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *apiClient) summary(ctx context.Context, id string) (*dto.SummaryResponse, error) {
	var s dto.SummaryResponse
	if err := c.do(ctx, http.MethodGet, sessionPath(id, "/summary"), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *apiClient) categories(ctx context.Context) (*dto.CategoriesResponse, error) {
	var cats dto.CategoriesResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories", nil, &cats); err != nil {
		return nil, err
	}
	return &cats, nil
}

// report downloads the session report and returns its bytes and the
// server-suggested filename.
func (c *apiClient) report(ctx context.Context, id string) ([]byte, string, error) {
	resp, err := c.send(ctx, http.MethodGet, sessionPath(id, "/report"), nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read report: %w", err)
	}
	return content, attachmentFilename(resp.Header.Get("Content-Disposition")), nil
}
