package handler

import (
	"encoding/json"

	"binance-relay/model"
)

// reshapePrice extracts the price field from a single-symbol ticker reply.
func reshapePrice(_ int, body []byte) (interface{}, error) {
	var p model.SymbolPrice
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	return map[string]string{"price": p.Price}, nil
}

// reshapePrices flattens the bulk ticker array into symbol -> price.
func reshapePrices(_ int, body []byte) (interface{}, error) {
	var list []model.SymbolPrice
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, err
	}

	prices := make(map[string]string, len(list))
	for _, p := range list {
		prices[p.Symbol] = p.Price
	}
	return prices, nil
}

// reshapeBalances filters the account balances down to entries holding
// funds and renames the fields to the relay contract.
func reshapeBalances(_ int, body []byte) (interface{}, error) {
	var account model.Account
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, err
	}

	balances := make([]model.AssetBalance, 0, len(account.Balances))
	for _, b := range account.Balances {
		if !b.InUse() {
			continue
		}
		balances = append(balances, model.AssetBalance{
			Asset:     b.Asset,
			Available: b.Free,
			OnOrder:   b.Locked,
		})
	}
	return balances, nil
}
