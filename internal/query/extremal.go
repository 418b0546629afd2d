package query

import (
	"github.com/shopspring/decimal"

	"github.com/JOstapjuk/class-clients/internal/client"
)

// Mode selects which per-day rate an extremal search maximizes.
type Mode int

const (
	// Earn maximizes (current - starting) / account_age.
	Earn Mode = iota
	// Loss maximizes (starting - current) / account_age.
	Loss
)

// FindExtremalRate returns the client with the largest per-day rate for the
// given mode, or nil when no client's winning rate is positive. Among equal
// rates the strictly smaller account age wins; an exact tie on both rate and
// age keeps the earliest record in input order.
//
// Rates are compared as (delta, age) rationals by cross-multiplication, so
// mathematically equal rates always compare equal regardless of how their
// quotients would round.
func FindExtremalRate(clients []client.Client, mode Mode) *client.Client {
	var best *client.Client
	var bestDelta, bestAge int64

	for i := range clients {
		delta := int64(clients[i].Delta())
		if mode == Loss {
			delta = -delta
		}
		age := int64(clients[i].AccountAge)

		if best != nil {
			cmp := rateCmp(delta, age, bestDelta, bestAge)
			if cmp < 0 || (cmp == 0 && age >= bestAge) {
				continue
			}
		}
		c := clients[i]
		best = &c
		bestDelta, bestAge = delta, age
	}

	// A maximum rate of zero or less means nobody actually earned (or lost)
	// net money.
	if best == nil || bestDelta <= 0 {
		return nil
	}
	return best
}

// LargestEarningsPerDay returns the client who has earned the most money per
// day, or nil when no client has earned net money.
func LargestEarningsPerDay(clients []client.Client) *client.Client {
	return FindExtremalRate(clients, Earn)
}

// LargestLossPerDay returns the client who has lost the most money per day,
// or nil when no client has lost net money.
func LargestLossPerDay(clients []client.Client) *client.Client {
	return FindExtremalRate(clients, Loss)
}

// rateCmp compares d1/a1 against d2/a2 without dividing. Ages are positive,
// so the comparison reduces to d1*a2 vs d2*a1.
func rateCmp(d1, a1, d2, a2 int64) int {
	left := decimal.NewFromInt(d1).Mul(decimal.NewFromInt(a2))
	right := decimal.NewFromInt(d2).Mul(decimal.NewFromInt(a1))
	return left.Cmp(right)
}
