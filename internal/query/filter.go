package query

import "github.com/JOstapjuk/class-clients/internal/client"

// FilterByBank returns the clients whose bank matches name exactly
// (case-sensitive), preserving input order.
func FilterByBank(clients []client.Client, bank string) []client.Client {
	out := make([]client.Client, 0, len(clients))
	for _, c := range clients {
		if c.Bank == bank {
			out = append(out, c)
		}
	}
	return out
}
