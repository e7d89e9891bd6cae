package domain

// Ledger holds the income and expense entries recorded during one session.
// Entries keep insertion order and cannot be edited or removed.
//
// A Ledger is not safe for concurrent use; the owner serialises access.
type Ledger struct {
	income   []IncomeEntry
	expenses []ExpenseEntry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// AddIncome appends a validated income entry.
func (l *Ledger) AddIncome(entry IncomeEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	l.income = append(l.income, entry)
	return nil
}

// AddExpense appends a validated expense entry.
func (l *Ledger) AddExpense(entry ExpenseEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	l.expenses = append(l.expenses, entry)
	return nil
}

// Income returns a copy of the income entries in insertion order.
func (l *Ledger) Income() []IncomeEntry {
	out := make([]IncomeEntry, len(l.income))
	copy(out, l.income)
	return out
}

// Expenses returns a copy of the expense entries in insertion order.
func (l *Ledger) Expenses() []ExpenseEntry {
	out := make([]ExpenseEntry, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// IsEmpty reports whether nothing has been recorded yet.
func (l *Ledger) IsEmpty() bool {
	return len(l.income) == 0 && len(l.expenses) == 0
}
