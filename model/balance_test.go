package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalanceInUse(t *testing.T) {
	cases := []struct {
		name    string
		balance Balance
		want    bool
	}{
		{"empty", Balance{Asset: "BTC", Free: "0", Locked: "0"}, false},
		{"empty with decimals", Balance{Asset: "BTC", Free: "0.00000000", Locked: "0.00000000"}, false},
		{"free funds", Balance{Asset: "ETH", Free: "1.5", Locked: "0"}, true},
		{"locked funds only", Balance{Asset: "BNB", Free: "0", Locked: "0.001"}, true},
		{"unparseable counts as zero", Balance{Asset: "XRP", Free: "not-a-number", Locked: ""}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.balance.InUse())
		})
	}
}
