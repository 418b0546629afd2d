package query_test

import (
	"path/filepath"
	"testing"

	"github.com/JOstapjuk/class-clients/internal/client"
	"github.com/JOstapjuk/class-clients/internal/parser"
	"github.com/JOstapjuk/class-clients/internal/query"
)

func fixtureClients() []client.Client {
	return []client.Client{
		{Name: "Ann", Bank: "Sprint", AccountAge: 10, StartingAmount: 1000, CurrentAmount: 1000},
		{Name: "Mark", Bank: "Sprint", AccountAge: 5, StartingAmount: 500, CurrentAmount: 600},
		{Name: "Josh", Bank: "Chase", AccountAge: 2, StartingAmount: 100, CurrentAmount: 300},
		{Name: "Jonah", Bank: "Chase", AccountAge: 100, StartingAmount: 1000, CurrentAmount: 900},
		{Name: "Franz", Bank: "WellsFargo", AccountAge: 4, StartingAmount: 1000, CurrentAmount: 200},
	}
}

func TestLargestEarningsPerDay_Scenario(t *testing.T) {
	got := query.LargestEarningsPerDay(fixtureClients())
	if got == nil {
		t.Fatalf("LargestEarningsPerDay got=nil want=Josh")
	}
	if got.Name != "Josh" {
		t.Fatalf("LargestEarningsPerDay got=%s want=%s", got.Name, "Josh")
	}
}

func TestLargestLossPerDay_Scenario(t *testing.T) {
	got := query.LargestLossPerDay(fixtureClients())
	if got == nil {
		t.Fatalf("LargestLossPerDay got=nil want=Franz")
	}
	if got.Name != "Franz" {
		t.Fatalf("LargestLossPerDay got=%s want=%s", got.Name, "Franz")
	}
}

func TestFindExtremalRate_TieBreakSmallerAge(t *testing.T) {
	// Both earn 10 per day; the one who did it in less time wins.
	clients := []client.Client{
		{Name: "Slow", Bank: "A", AccountAge: 10, StartingAmount: 0, CurrentAmount: 100},
		{Name: "Fast", Bank: "A", AccountAge: 5, StartingAmount: 0, CurrentAmount: 50},
	}
	got := query.FindExtremalRate(clients, query.Earn)
	if got == nil || got.Name != "Fast" {
		t.Fatalf("FindExtremalRate got=%v want=Fast", got)
	}
}

func TestFindExtremalRate_ExactTieKeepsEarliest(t *testing.T) {
	clients := []client.Client{
		{Name: "First", Bank: "A", AccountAge: 5, StartingAmount: 0, CurrentAmount: 50},
		{Name: "Second", Bank: "B", AccountAge: 5, StartingAmount: 100, CurrentAmount: 150},
	}
	got := query.FindExtremalRate(clients, query.Earn)
	if got == nil || got.Name != "First" {
		t.Fatalf("FindExtremalRate got=%v want=First", got)
	}
}

func TestFindExtremalRate_EqualRatesDifferentPairs(t *testing.T) {
	// 2/6 and 1/3 are the same rate; the comparison must see them as equal
	// and let the smaller age win.
	clients := []client.Client{
		{Name: "Sixer", Bank: "A", AccountAge: 6, StartingAmount: 0, CurrentAmount: 2},
		{Name: "Third", Bank: "A", AccountAge: 3, StartingAmount: 0, CurrentAmount: 1},
	}
	got := query.FindExtremalRate(clients, query.Earn)
	if got == nil || got.Name != "Third" {
		t.Fatalf("FindExtremalRate got=%v want=Third", got)
	}
}

func TestFindExtremalRate_NonPositiveThreshold(t *testing.T) {
	// Everyone broke even or lost: no earner. Mirrored for loss mode.
	losers := []client.Client{
		{Name: "Even", Bank: "A", AccountAge: 10, StartingAmount: 100, CurrentAmount: 100},
		{Name: "Down", Bank: "A", AccountAge: 5, StartingAmount: 100, CurrentAmount: 50},
	}
	if got := query.FindExtremalRate(losers, query.Earn); got != nil {
		t.Fatalf("FindExtremalRate(earn) got=%s want=nil", got.Name)
	}

	earners := []client.Client{
		{Name: "Even", Bank: "A", AccountAge: 10, StartingAmount: 100, CurrentAmount: 100},
		{Name: "Up", Bank: "A", AccountAge: 5, StartingAmount: 50, CurrentAmount: 100},
	}
	if got := query.FindExtremalRate(earners, query.Loss); got != nil {
		t.Fatalf("FindExtremalRate(loss) got=%s want=nil", got.Name)
	}
}

func TestFindExtremalRate_EmptyAndSingle(t *testing.T) {
	if got := query.FindExtremalRate(nil, query.Earn); got != nil {
		t.Fatalf("FindExtremalRate(empty) got=%s want=nil", got.Name)
	}

	single := []client.Client{
		{Name: "Only", Bank: "A", AccountAge: 2, StartingAmount: 10, CurrentAmount: 30},
	}
	if got := query.FindExtremalRate(single, query.Earn); got == nil || got.Name != "Only" {
		t.Fatalf("FindExtremalRate(single earn) got=%v want=Only", got)
	}
	if got := query.FindExtremalRate(single, query.Loss); got != nil {
		t.Fatalf("FindExtremalRate(single loss) got=%s want=nil", got.Name)
	}
}

func TestQueries_FromFixtureFile(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "clients_info.txt")
	clients := parser.ReadClients(path)
	if len(clients) != 5 {
		t.Fatalf("ReadClients len got=%d want=%d", len(clients), 5)
	}

	sprint := query.FilterByBank(clients, "Sprint")
	if len(sprint) != 2 || sprint[0].Name != "Ann" || sprint[1].Name != "Mark" {
		t.Fatalf("FilterByBank(Sprint) got=%+v want=[Ann Mark]", sprint)
	}

	if got := query.LargestEarningsPerDay(clients); got == nil || got.Name != "Josh" {
		t.Fatalf("LargestEarningsPerDay got=%v want=Josh", got)
	}
	if got := query.LargestLossPerDay(clients); got == nil || got.Name != "Franz" {
		t.Fatalf("LargestLossPerDay got=%v want=Franz", got)
	}
}
