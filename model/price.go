package model

// SymbolPrice is the upstream ticker price payload, returned as a single
// object for one symbol or an array for all symbols.
type SymbolPrice struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}
