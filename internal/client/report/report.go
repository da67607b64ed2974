// Package report derives totals, category aggregates, and equal splits
// from expense lists. All functions are pure and recomputed per call.
package report

import (
	"strings"

	"expenso/internal/models"
)

// Member is a participant in an equal split with the amount they contributed.
type Member struct {
	Name  string  `json:"name"`
	Spent float64 `json:"spent"`
}

// Split is the outcome of splitting a group total equally.
type Split struct {
	Total     float64 `json:"total"`
	PerPerson float64 `json:"per_person"`
}

// Filter returns the expenses whose title contains query
// (case-insensitive) and whose category equals category. An empty
// query matches every title; an empty category disables the category
// filter.
func Filter(expenses []models.Expense, query, category string) []models.Expense {
	query = strings.ToLower(query)
	filtered := make([]models.Expense, 0, len(expenses))
	for _, exp := range expenses {
		if query != "" && !strings.Contains(strings.ToLower(exp.Title), query) {
			continue
		}
		if category != "" && exp.Category != category {
			continue
		}
		filtered = append(filtered, exp)
	}
	return filtered
}

// Total sums the amounts of the given expenses.
func Total(expenses []models.Expense) float64 {
	var total float64
	for _, exp := range expenses {
		total += exp.Amount
	}
	return total
}

// CategoryTotals sums amounts per distinct category over the full list.
// Categories are discovered from the data, not from a fixed set.
func CategoryTotals(expenses []models.Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, exp := range expenses {
		totals[exp.Category] += exp.Amount
	}
	return totals
}

// EqualSplit sums the members' contributions and divides the total
// evenly. With zero members the division is 0/0 and the per-person
// share is NaN; callers that care must check with math.IsNaN.
func EqualSplit(members []Member) Split {
	var total float64
	for _, m := range members {
		total += m.Spent
	}
	return Split{
		Total:     total,
		PerPerson: total / float64(len(members)),
	}
}
