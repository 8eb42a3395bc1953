package model

import "strconv"

// Balance is one entry of the upstream account balance array.
type Balance struct {
	Asset  string `json:"asset"`
	Free   string `json:"free"`
	Locked string `json:"locked"`
}

// InUse reports whether the balance holds any funds, free or locked.
// Upstream renders amounts as decimal strings; unparseable values count as
// zero.
func (b Balance) InUse() bool {
	return parseAmount(b.Free) > 0 || parseAmount(b.Locked) > 0
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// AssetBalance is the relay's reshaped balance entry.
type AssetBalance struct {
	Asset     string `json:"asset"`
	Available string `json:"available"`
	OnOrder   string `json:"onOrder"`
}

// Account is the subset of the upstream account payload the balances
// endpoint needs.
type Account struct {
	Balances []Balance `json:"balances"`
}
