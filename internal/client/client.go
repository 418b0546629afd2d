package client

import "github.com/shopspring/decimal"

// Client is one bank client's snapshot read from the records file.
type Client struct {
	Name           string `json:"name"`
	Bank           string `json:"bank"`
	AccountAge     int    `json:"account_age"` // days, always positive in the file format
	StartingAmount int    `json:"starting_amount"`
	CurrentAmount  int    `json:"current_amount"`
}

// Delta is the net amount earned since the start (negative for a net loss).
func (c Client) Delta() int {
	return c.CurrentAmount - c.StartingAmount
}

// EarningsPerDay is the signed amount earned per day of account age.
func (c Client) EarningsPerDay() decimal.Decimal {
	return decimal.NewFromInt(int64(c.Delta())).Div(decimal.NewFromInt(int64(c.AccountAge)))
}

// LossPerDay is the signed amount lost per day of account age.
func (c Client) LossPerDay() decimal.Decimal {
	return c.EarningsPerDay().Neg()
}
