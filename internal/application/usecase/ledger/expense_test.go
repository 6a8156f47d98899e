package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

func TestEngine_CreateExpense_Validation(t *testing.T) {
	f := newTestEngine(t)
	ctx := context.Background()

	t.Run("rejects an unknown expense type", func(t *testing.T) {
		_, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
			Type:   entity.ExpenseType("check"),
			Amount: decimal.NewFromInt(10),
			Date:   date(2024, time.March, 10),
		})
		assertLedgerCode(t, err, domainerror.ErrCodeInvalidExpenseType)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		_, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
			Type:   entity.ExpenseTypeCash,
			Amount: decimal.Zero,
			Date:   date(2024, time.March, 10),
		})
		assertLedgerCode(t, err, domainerror.ErrCodeInvalidAmount)
	})

	t.Run("rejects a negative installment count", func(t *testing.T) {
		_, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
			Type:             entity.ExpenseTypeCash,
			Amount:           decimal.NewFromInt(10),
			Date:             date(2024, time.March, 10),
			InstallmentCount: -2,
		})
		assertLedgerCode(t, err, domainerror.ErrCodeInvalidInstallments)
	})

	t.Run("rejects an unknown installment type", func(t *testing.T) {
		_, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
			Type:             entity.ExpenseTypeCash,
			Amount:           decimal.NewFromInt(10),
			Date:             date(2024, time.March, 10),
			InstallmentCount: 3,
			InstallmentType:  entity.InstallmentType("weekly"),
		})
		assertLedgerCode(t, err, domainerror.ErrCodeInvalidInstallments)
	})
}

func TestEngine_CreateExpense_Cash(t *testing.T) {
	f := newTestEngine(t)
	ctx := context.Background()

	rows, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
		Type:        entity.ExpenseTypeCash,
		Amount:      decimal.NewFromInt(40),
		Description: "lunch",
		Date:        date(2024, time.March, 25),
	})
	if err != nil {
		t.Fatalf("create expense failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if !rows[0].Date.Equal(date(2024, time.March, 25)) {
		t.Errorf("expected cash expense to keep its date, got %s", rows[0].Date)
	}
	if rows[0].Installments.Count != 1 || rows[0].Installments.Current != 1 {
		t.Errorf("expected single-payment installment metadata, got %+v", rows[0].Installments)
	}
	if !f.engine.GetTotalDebt().IsZero() {
		t.Error("expected cash expense to leave card debt untouched")
	}
}

func TestEngine_CreateExpense_BillingCycle(t *testing.T) {
	f := newTestEngine(t)
	ctx := context.Background()

	t.Run("before cutoff stays in the current cycle", func(t *testing.T) {
		card, err := f.engine.CreateCard(ctx, "NoDueDay", decimal.NewFromInt(5000), 20, nil)
		if err != nil {
			t.Fatalf("create card failed: %v", err)
		}
		rows, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
			Type:        entity.ExpenseTypeCreditCard,
			CardID:      card.ID,
			Amount:      decimal.NewFromInt(50),
			Description: "books",
			Date:        date(2024, time.March, 15),
		})
		if err != nil {
			t.Fatalf("create expense failed: %v", err)
		}
		if !rows[0].Date.Equal(date(2024, time.March, 15)) {
			t.Errorf("expected unshifted date, got %s", rows[0].Date)
		}
	})

	t.Run("after cutoff without payment day lands on the 1st of next month", func(t *testing.T) {
		card, err := f.engine.CreateCard(ctx, "NoDueDay2", decimal.NewFromInt(5000), 20, nil)
		if err != nil {
			t.Fatalf("create card failed: %v", err)
		}
		rows, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
			Type:        entity.ExpenseTypeCreditCard,
			CardID:      card.ID,
			Amount:      decimal.NewFromInt(50),
			Description: "books",
			Date:        date(2024, time.March, 25),
		})
		if err != nil {
			t.Fatalf("create expense failed: %v", err)
		}
		if !rows[0].Date.Equal(date(2024, time.April, 1)) {
			t.Errorf("expected April 1, got %s", rows[0].Date)
		}
	})

	t.Run("after cutoff with late payment day shifts one month", func(t *testing.T) {
		card, err := f.engine.CreateCard(ctx, "LateDue", decimal.NewFromInt(5000), 20, intPtr(27))
		if err != nil {
			t.Fatalf("create card failed: %v", err)
		}
		rows, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
			Type:        entity.ExpenseTypeCreditCard,
			CardID:      card.ID,
			Amount:      decimal.NewFromInt(50),
			Description: "books",
			Date:        date(2024, time.March, 25),
		})
		if err != nil {
			t.Fatalf("create expense failed: %v", err)
		}
		if !rows[0].Date.Equal(date(2024, time.April, 27)) {
			t.Errorf("expected April 27, got %s", rows[0].Date)
		}
	})

	t.Run("payment day before cutoff shifts a second month", func(t *testing.T) {
		card, err := f.engine.CreateCard(ctx, "EarlyDue", decimal.NewFromInt(5000), 20, intPtr(5))
		if err != nil {
			t.Fatalf("create card failed: %v", err)
		}
		rows, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
			Type:        entity.ExpenseTypeCreditCard,
			CardID:      card.ID,
			Amount:      decimal.NewFromInt(50),
			Description: "books",
			Date:        date(2024, time.March, 25),
		})
		if err != nil {
			t.Fatalf("create expense failed: %v", err)
		}
		if !rows[0].Date.Equal(date(2024, time.May, 5)) {
			t.Errorf("expected May 5, got %s", rows[0].Date)
		}
	})

	t.Run("before cutoff with early payment day still shifts one month", func(t *testing.T) {
		card, err := f.engine.CreateCard(ctx, "EarlyDue2", decimal.NewFromInt(5000), 20, intPtr(5))
		if err != nil {
			t.Fatalf("create card failed: %v", err)
		}
		rows, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
			Type:        entity.ExpenseTypeCreditCard,
			CardID:      card.ID,
			Amount:      decimal.NewFromInt(50),
			Description: "books",
			Date:        date(2024, time.March, 15),
		})
		if err != nil {
			t.Fatalf("create expense failed: %v", err)
		}
		if !rows[0].Date.Equal(date(2024, time.April, 5)) {
			t.Errorf("expected April 5, got %s", rows[0].Date)
		}
	})

	t.Run("unresolvable card passes the date through", func(t *testing.T) {
		rows, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
			Type:        entity.ExpenseTypeCreditCard,
			CardID:      "ghost-card",
			Amount:      decimal.NewFromInt(50),
			Description: "books",
			Date:        date(2024, time.March, 25),
		})
		if err != nil {
			t.Fatalf("create expense failed: %v", err)
		}
		if !rows[0].Date.Equal(date(2024, time.March, 25)) {
			t.Errorf("expected unshifted date, got %s", rows[0].Date)
		}
	})
}

func TestEngine_CreateExpense_Installments(t *testing.T) {
	ctx := context.Background()

	t.Run("total amount fans out into monthly shares", func(t *testing.T) {
		f := newTestEngine(t)
		card, err := f.engine.CreateCard(ctx, "Visa", decimal.NewFromInt(5000), 20, nil)
		if err != nil {
			t.Fatalf("create card failed: %v", err)
		}

		rows, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
			Type:             entity.ExpenseTypeCreditCard,
			CardID:           card.ID,
			Amount:           decimal.NewFromInt(100),
			Description:      "tv",
			Date:             date(2024, time.March, 10),
			InstallmentCount: 3,
			InstallmentType:  entity.InstallmentTypeTotal,
		})
		if err != nil {
			t.Fatalf("create expense failed: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}

		share := decimal.NewFromFloat(33.33)
		for i, row := range rows {
			if !row.Amount.Equal(share) {
				t.Errorf("row %d: expected amount 33.33, got %s", i, row.Amount)
			}
			if !row.Date.Equal(date(2024, time.March+time.Month(i), 10)) {
				t.Errorf("row %d: expected month offset %d, got %s", i, i, row.Date)
			}
			if row.Installments.Current != i+1 || row.Installments.Count != 3 {
				t.Errorf("row %d: unexpected installment metadata %+v", i, row.Installments)
			}
		}
		if rows[0].Description != "tv (1/3)" || rows[2].Description != "tv (3/3)" {
			t.Errorf("expected numbered descriptions, got %q and %q", rows[0].Description, rows[2].Description)
		}

		t.Run("debt rises by the purchase total once", func(t *testing.T) {
			if got := f.engine.GetTotalDebt(); !got.Equal(decimal.NewFromInt(100)) {
				t.Errorf("expected debt 100, got %s", got)
			}
		})
	})

	t.Run("monthly amount multiplies into the total", func(t *testing.T) {
		f := newTestEngine(t)
		card, err := f.engine.CreateCard(ctx, "Visa", decimal.NewFromInt(5000), 20, nil)
		if err != nil {
			t.Fatalf("create card failed: %v", err)
		}

		rows, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
			Type:             entity.ExpenseTypeCreditCard,
			CardID:           card.ID,
			Amount:           decimal.NewFromInt(25),
			Description:      "phone",
			Date:             date(2024, time.March, 10),
			InstallmentCount: 4,
			InstallmentType:  entity.InstallmentTypeMonthly,
		})
		if err != nil {
			t.Fatalf("create expense failed: %v", err)
		}
		if len(rows) != 4 {
			t.Fatalf("expected 4 rows, got %d", len(rows))
		}
		for i, row := range rows {
			if !row.Amount.Equal(decimal.NewFromInt(25)) {
				t.Errorf("row %d: expected amount 25, got %s", i, row.Amount)
			}
		}
		if got := f.engine.GetTotalDebt(); !got.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected debt 100, got %s", got)
		}
	})

	t.Run("zero count defaults to a single payment", func(t *testing.T) {
		f := newTestEngine(t)
		rows, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
			Type:        entity.ExpenseTypeCash,
			Amount:      decimal.NewFromInt(10),
			Description: "coffee",
			Date:        date(2024, time.March, 10),
		})
		if err != nil {
			t.Fatalf("create expense failed: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].Description != "coffee" {
			t.Errorf("expected unnumbered description, got %q", rows[0].Description)
		}
	})
}

func TestEngine_DeleteExpense(t *testing.T) {
	f := newTestEngine(t)
	ctx := context.Background()

	card, err := f.engine.CreateCard(ctx, "Visa", decimal.NewFromInt(5000), 20, nil)
	if err != nil {
		t.Fatalf("create card failed: %v", err)
	}
	rows, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
		Type:             entity.ExpenseTypeCreditCard,
		CardID:           card.ID,
		Amount:           decimal.NewFromInt(100),
		Description:      "tv",
		Date:             date(2024, time.March, 10),
		InstallmentCount: 3,
		InstallmentType:  entity.InstallmentTypeTotal,
	})
	if err != nil {
		t.Fatalf("create expense failed: %v", err)
	}

	t.Run("removes one row and reverses only its own amount", func(t *testing.T) {
		found, err := f.engine.DeleteExpense(ctx, rows[1].ID)
		if err != nil || !found {
			t.Fatalf("delete failed: found=%v err=%v", found, err)
		}
		if len(f.engine.Expenses()) != 2 {
			t.Errorf("expected sibling rows untouched, got %d rows", len(f.engine.Expenses()))
		}
		want := decimal.NewFromInt(100).Sub(decimal.NewFromFloat(33.33))
		if got := f.engine.GetTotalDebt(); !got.Equal(want) {
			t.Errorf("expected debt %s, got %s", want, got)
		}
	})

	t.Run("missing id is a silent no-op", func(t *testing.T) {
		found, err := f.engine.DeleteExpense(ctx, "nope")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found {
			t.Error("expected found=false for missing id")
		}
	})
}

func TestEngine_UpdateExpense(t *testing.T) {
	f := newTestEngine(t)
	ctx := context.Background()

	card, err := f.engine.CreateCard(ctx, "Visa", decimal.NewFromInt(5000), 20, nil)
	if err != nil {
		t.Fatalf("create card failed: %v", err)
	}
	rows, err := f.engine.CreateExpense(ctx, CreateExpenseInput{
		Type:        entity.ExpenseTypeCreditCard,
		CardID:      card.ID,
		Amount:      decimal.NewFromInt(80),
		Description: "shoes",
		Date:        date(2024, time.March, 10),
	})
	if err != nil {
		t.Fatalf("create expense failed: %v", err)
	}

	t.Run("replaces the row and adjusts debt by the difference", func(t *testing.T) {
		updated, err := f.engine.UpdateExpense(ctx, rows[0].ID, CreateExpenseInput{
			Type:        entity.ExpenseTypeCreditCard,
			CardID:      card.ID,
			Amount:      decimal.NewFromInt(60),
			Description: "shoes on sale",
			Date:        date(2024, time.March, 10),
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if len(updated) != 1 {
			t.Fatalf("expected 1 row, got %d", len(updated))
		}
		if updated[0].ID == rows[0].ID {
			t.Error("expected a fresh id from the delete-then-create")
		}
		if got := f.engine.GetTotalDebt(); !got.Equal(decimal.NewFromInt(60)) {
			t.Errorf("expected debt 60, got %s", got)
		}
	})

	t.Run("can re-fan-out into installments", func(t *testing.T) {
		current := f.engine.Expenses()
		updated, err := f.engine.UpdateExpense(ctx, current[0].ID, CreateExpenseInput{
			Type:             entity.ExpenseTypeCreditCard,
			CardID:           card.ID,
			Amount:           decimal.NewFromInt(90),
			Description:      "shoes",
			Date:             date(2024, time.March, 10),
			InstallmentCount: 3,
			InstallmentType:  entity.InstallmentTypeTotal,
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if len(updated) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(updated))
		}
		if got := f.engine.GetTotalDebt(); !got.Equal(decimal.NewFromInt(90)) {
			t.Errorf("expected debt 90, got %s", got)
		}
	})
}
