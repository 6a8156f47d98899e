package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/shopspring/decimal"
)

const hundred = 100

// AccrueInterest posts daily interest for every account with a positive rate,
// run once per session bootstrap.
//
// The day count is the whole-day ceiling of the time elapsed since the
// account's last accrual date. Interest is simple within one call:
// balance x rate/100 x days, posted through the normal income path, so it
// only compounds on the next invocation. Afterwards every account's accrual
// clock is stamped to today, including accounts with a non-positive balance,
// which prevents a catch-up backlog once the balance crosses zero.
func (e *Engine) AccrueInterest(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.today()

	for _, account := range e.state.Accounts {
		if account.InterestRate.IsPositive() && !account.LastInterestDate.IsZero() {
			elapsed := today.Sub(dateOnly(account.LastInterestDate))
			days := int(math.Ceil(elapsed.Hours() / 24))

			if days >= 1 && !dateOnly(account.LastInterestDate).Equal(today) && account.Balance.IsPositive() {
				interest := account.Balance.
					Mul(account.InterestRate).
					Div(decimal.NewFromInt(hundred)).
					Mul(decimal.NewFromInt(int64(days)))

				e.applyIncome(
					account.ID,
					interest,
					fmt.Sprintf("%d day interest (%s)", days, account.Name),
					today,
				)
				slog.Info("Accrued interest",
					"account", account.Name,
					"days", days,
					"amount", interest.String(),
				)
			}
		}
		account.LastInterestDate = today
	}

	return e.persist(ctx)
}
