package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/adapter/http/dto"
	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

type entryServiceStub struct {
	addIncomeFn    func(ctx context.Context, input usecase.AddIncomeInput) (*domain.IncomeEntry, error)
	addExpenseFn   func(ctx context.Context, input usecase.AddExpenseInput) (*domain.ExpenseEntry, error)
	listIncomeFn   func(ctx context.Context, sessionID string) ([]domain.IncomeEntry, error)
	listExpensesFn func(ctx context.Context, sessionID string) ([]domain.ExpenseEntry, error)
}

func (s *entryServiceStub) AddIncome(ctx context.Context, input usecase.AddIncomeInput) (*domain.IncomeEntry, error) {
	return s.addIncomeFn(ctx, input)
}

func (s *entryServiceStub) AddExpense(ctx context.Context, input usecase.AddExpenseInput) (*domain.ExpenseEntry, error) {
	return s.addExpenseFn(ctx, input)
}

func (s *entryServiceStub) ListIncome(ctx context.Context, sessionID string) ([]domain.IncomeEntry, error) {
	return s.listIncomeFn(ctx, sessionID)
}

func (s *entryServiceStub) ListExpenses(ctx context.Context, sessionID string) ([]domain.ExpenseEntry, error) {
	return s.listExpensesFn(ctx, sessionID)
}

func TestEntryHandler_CreateIncome_Success(t *testing.T) {
	var captured usecase.AddIncomeInput
	handler := NewEntryHandler(&entryServiceStub{
		addIncomeFn: func(ctx context.Context, input usecase.AddIncomeInput) (*domain.IncomeEntry, error) {
			captured = input
			return &domain.IncomeEntry{ID: "inc-1", Description: input.Description, Amount: input.Amount}, nil
		},
	})

	body, _ := json.Marshal(dto.CreateIncomeRequest{Description: "Salary", Amount: decimal.NewFromInt(1000)})
	req := setChiURLParam(httptest.NewRequest(http.MethodPost, "/sessions/sess-1/income", bytes.NewReader(body)), "id", "sess-1")
	rec := httptest.NewRecorder()

	handler.CreateIncome(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.SessionID != "sess-1" || captured.Description != "Salary" || !captured.Amount.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.IncomeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "inc-1" {
		t.Fatalf("expected entry ID inc-1, got %s", resp.ID)
	}
}

func TestEntryHandler_CreateIncome_InvalidJSON(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		addIncomeFn: func(ctx context.Context, input usecase.AddIncomeInput) (*domain.IncomeEntry, error) {
			t.Fatal("AddIncome should not be called for invalid payload")
			return nil, nil
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodPost, "/sessions/sess-1/income", bytes.NewBufferString("{invalid json")), "id", "sess-1")
	rec := httptest.NewRecorder()

	handler.CreateIncome(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEntryHandler_CreateIncome_ValidationError(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		addIncomeFn: func(ctx context.Context, input usecase.AddIncomeInput) (*domain.IncomeEntry, error) {
			return nil, domain.ErrInvalidAmount
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodPost, "/sessions/sess-1/income", bytes.NewBufferString(`{"description":"Gift","amount":"0"}`)), "id", "sess-1")
	rec := httptest.NewRecorder()

	handler.CreateIncome(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEntryHandler_CreateExpense(t *testing.T) {
	var captured usecase.AddExpenseInput
	handler := NewEntryHandler(&entryServiceStub{
		addExpenseFn: func(ctx context.Context, input usecase.AddExpenseInput) (*domain.ExpenseEntry, error) {
			captured = input
			return &domain.ExpenseEntry{ID: "exp-1", Description: input.Description, Category: input.Category, Amount: input.Amount}, nil
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodPost, "/sessions/sess-1/expenses",
		bytes.NewBufferString(`{"description":"Rent","amount":"400","category":"housing"}`)), "id", "sess-1")
	rec := httptest.NewRecorder()

	handler.CreateExpense(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Category != domain.CategoryHousing {
		t.Fatalf("expected category Housing, got %q", captured.Category)
	}

	var resp dto.ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Category != "Housing" {
		t.Fatalf("expected category Housing in response, got %s", resp.Category)
	}
}

func TestEntryHandler_CreateExpense_InvalidCategory(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		addExpenseFn: func(ctx context.Context, input usecase.AddExpenseInput) (*domain.ExpenseEntry, error) {
			t.Fatal("AddExpense should not be called for unknown category")
			return nil, nil
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodPost, "/sessions/sess-1/expenses",
		bytes.NewBufferString(`{"description":"Cinema","amount":"20","category":"Leisure"}`)), "id", "sess-1")
	rec := httptest.NewRecorder()

	handler.CreateExpense(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEntryHandler_ListExpenses(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		listExpensesFn: func(ctx context.Context, sessionID string) ([]domain.ExpenseEntry, error) {
			return []domain.ExpenseEntry{
				{ID: "e1", Description: "Rent", Category: domain.CategoryHousing, Amount: decimal.NewFromInt(400)},
			}, nil
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/sessions/sess-1/expenses", nil), "id", "sess-1")
	rec := httptest.NewRecorder()

	handler.ListExpenses(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListExpensesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || resp.Expenses[0].ID != "e1" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestEntryHandler_ListIncome_UnknownSession(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		listIncomeFn: func(ctx context.Context, sessionID string) ([]domain.IncomeEntry, error) {
			return nil, domain.ErrSessionNotFound
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/sessions/missing/income", nil), "id", "missing")
	rec := httptest.NewRecorder()

	handler.ListIncome(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
