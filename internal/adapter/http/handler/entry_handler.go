package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/finledger/internal/adapter/http/dto"
	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

// EntryService defines the behavior needed by EntryHandler.
type EntryService interface {
	AddIncome(ctx context.Context, input usecase.AddIncomeInput) (*domain.IncomeEntry, error)
	AddExpense(ctx context.Context, input usecase.AddExpenseInput) (*domain.ExpenseEntry, error)
	ListIncome(ctx context.Context, sessionID string) ([]domain.IncomeEntry, error)
	ListExpenses(ctx context.Context, sessionID string) ([]domain.ExpenseEntry, error)
}

// EntryHandler handles income and expense requests.
type EntryHandler struct {
	ledgerUC EntryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(ledgerUC EntryService) *EntryHandler {
	return &EntryHandler{ledgerUC: ledgerUC}
}

// CreateIncome records an income entry.
func (h *EntryHandler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req dto.CreateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.ledgerUC.AddIncome(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record income", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.IncomeFromDomain(entry))
}

// CreateExpense records an expense entry.
func (h *EntryHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category", err.Error())
		return
	}

	entry, err := h.ledgerUC.AddExpense(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record expense", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ExpenseFromDomain(entry))
}

// ListIncome lists the session's income entries.
func (h *EntryHandler) ListIncome(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	entries, err := h.ledgerUC.ListIncome(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list income", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListIncomeFromDomain(entries))
}

// ListExpenses lists the session's expense entries.
func (h *EntryHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	entries, err := h.ledgerUC.ListExpenses(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list expenses", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListExpensesFromDomain(entries))
}
