// Package forecast turns a budget and its scheduled items into a weekly
// cash-flow projection.
package forecast

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/rhizvo/Budget-Planner/internal/models"
	"github.com/rhizvo/Budget-Planner/internal/schedule"
	"github.com/rhizvo/Budget-Planner/internal/types"
)

// BreakdownKey identifies one expense line in a week's breakdown.
type BreakdownKey struct {
	Category models.Category
	Name     string
}

func (k BreakdownKey) String() string {
	return fmt.Sprintf("%s: %s", k.Category, k.Name)
}

// MarshalText renders the key as "Category: Name" so that breakdown maps
// can be used as JSON objects.
func (k BreakdownKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses the "Category: Name" form produced by MarshalText.
func (k *BreakdownKey) UnmarshalText(text []byte) error {
	category, name, found := strings.Cut(string(text), ": ")
	if !found {
		return fmt.Errorf("no category in breakdown key %q", text)
	}

	k.Category = models.Category(category)
	k.Name = name

	return nil
}

// WeekRow is the projection result for a single Monday-aligned week.
//
// SavingsBalances carries the cumulative balance of every savings target at
// the end of the week, seeded from the account's stored balance. Breakdown
// is sparse: only expense lines with an occurrence that week are present.
type WeekRow struct {
	WeekOfYear      int                              `json:"weekOfYear" example:"27"`
	WeekStart       types.Date                       `json:"weekStart" example:"2026-06-29"`
	WeekEnd         types.Date                       `json:"weekEnd" example:"2026-07-05"`
	Income          decimal.Decimal                  `json:"income" example:"2000"`
	TotalExpenses   decimal.Decimal                  `json:"totalExpenses" example:"1403.27"`
	TotalSavings    decimal.Decimal                  `json:"totalSavings" example:"150"`
	RunningBalance  decimal.Decimal                  `json:"runningBalance" example:"2741.13"`
	SavingsBalances map[string]decimal.Decimal       `json:"savingsBalances"`
	Breakdown       map[BreakdownKey]decimal.Decimal `json:"breakdown"`
}

// Project computes one WeekRow per Monday-aligned week from the Monday on
// or before the budget's start date through its end date.
//
// The running debit balance follows
//
//	balance[w] = balance[w-1] + income[w] - expenses[w] - savings[w]
//
// seeded from the budget's initial debit balance. Expense and transfer
// amounts are positive magnitudes; the synthesized final-paycheck entry is
// negative, so subtracting it adds the partial pay back in.
func Project(data models.BudgetData) []WeekRow {
	balance := data.Budget.InitialDebitBalance

	// Cumulative savings totals, seeded from the stored balances
	savings := make(map[string]decimal.Decimal, len(data.SavingsAccounts))
	targets := make(map[uuid.UUID]string, len(data.SavingsAccounts))
	for _, account := range data.SavingsAccounts {
		savings[account.Name] = account.Balance
		targets[account.ID] = account.Name
	}

	var rows []WeekRow

	weekStart := data.Budget.StartDate.StartOfWeek()
	for ; !weekStart.After(data.Budget.EndDate); weekStart = weekStart.AddDays(7) {
		weekEnd := weekStart.AddDays(6)

		_, week := weekStart.ISOWeek()
		row := WeekRow{
			WeekOfYear: week,
			WeekStart:  weekStart,
			WeekEnd:    weekEnd,
			Breakdown:  make(map[BreakdownKey]decimal.Decimal),
		}

		if data.Income != nil {
			for _, day := range data.Income.Dates {
				if inWeek(day, weekStart, weekEnd) {
					row.Income = row.Income.Add(data.Income.Amount)
				}
			}
		}

		for _, expense := range data.Expenses {
			if expense.Expired(weekStart) {
				continue
			}

			amount := contribution(expense.FinancialItem, weekStart, weekEnd)
			if amount.IsZero() {
				continue
			}

			row.TotalExpenses = row.TotalExpenses.Add(amount)

			key := BreakdownKey{Category: expense.Category, Name: expense.Name}
			row.Breakdown[key] = row.Breakdown[key].Add(amount)
		}

		for _, transfer := range data.Transfers {
			if transfer.Expired(weekStart) {
				continue
			}

			amount := contribution(transfer.FinancialItem, weekStart, weekEnd)
			if amount.IsZero() {
				continue
			}

			row.TotalSavings = row.TotalSavings.Add(amount)

			target, ok := targets[transfer.TargetID]
			if !ok {
				// The cascade on account deletion should make this
				// unreachable. Track the orphan under the transfer's own
				// name with a zero-seeded balance instead of dropping money.
				log.Warn().
					Str("transfer", transfer.Name).
					Str("target_id", transfer.TargetID.String()).
					Msg("savings transfer references an unknown account")

				target = transfer.Name
				if _, seeded := savings[target]; !seeded {
					savings[target] = decimal.Zero
				}
				targets[transfer.TargetID] = target
			}

			savings[target] = savings[target].Add(amount)
		}

		balance = balance.Add(row.Income).Sub(row.TotalExpenses).Sub(row.TotalSavings)
		row.RunningBalance = balance

		row.SavingsBalances = make(map[string]decimal.Decimal, len(savings))
		for name, total := range savings {
			row.SavingsBalances[name] = total
		}

		rows = append(rows, row)
	}

	return rows
}

// contribution is the amount an item adds to a single week. Weekly items
// occur once every week by definition; everything else contributes once per
// occurrence date inside the window.
func contribution(item models.FinancialItem, weekStart, weekEnd types.Date) decimal.Decimal {
	if item.Frequency == schedule.FrequencyWeekly {
		return item.Amount
	}

	total := decimal.Zero
	for _, day := range item.Dates {
		if inWeek(day, weekStart, weekEnd) {
			total = total.Add(item.Amount)
		}
	}

	return total
}

func inWeek(day, weekStart, weekEnd types.Date) bool {
	return !day.Before(weekStart) && !day.After(weekEnd)
}
