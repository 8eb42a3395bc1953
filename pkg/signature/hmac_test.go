package signature

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference vector from the upstream exchange's published signing example:
// secret and query string taken verbatim from the Binance API documentation.
const (
	docSecret = "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	docDigest = "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71"
)

func docParams() *Params {
	return New().
		Set("symbol", "LTCBTC").
		Set("side", "BUY").
		Set("type", "LIMIT").
		Set("timeInForce", "GTC").
		Set("quantity", "1").
		Set("price", "0.1").
		Set("recvWindow", "5000").
		Set("timestamp", "1499827319559")
}

func TestSignMatchesDocumentedExample(t *testing.T) {
	sig, err := Sign(docSecret, docParams())
	require.NoError(t, err)
	assert.Equal(t, docDigest, sig)
}

func TestSignDeterministic(t *testing.T) {
	first, err := Sign(docSecret, docParams())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Sign(docSecret, docParams())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSignIsOrderSensitive(t *testing.T) {
	a := New().Set("symbol", "BTCUSDT").Set("timestamp", "1700000000000")
	b := New().Set("timestamp", "1700000000000").Set("symbol", "BTCUSDT")

	sigA, err := Sign("test-secret", a)
	require.NoError(t, err)
	sigB, err := Sign("test-secret", b)
	require.NoError(t, err)

	assert.Equal(t, "4e7e8444963d2d57498c79c818e00d7325c0de1fe36287ea426397a06945cbea", sigA)
	assert.Equal(t, "746b96ccad6a8f0abeb64ce055d98231de68c6e8ba277f1fb3a6954b174d3334", sigB)
	assert.NotEqual(t, sigA, sigB)
}

func TestSignOutputIsLowercaseHex(t *testing.T) {
	sig, err := Sign("test-secret", New().Set("timestamp", "1700000000000"))
	require.NoError(t, err)

	assert.Len(t, sig, 64)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), sig)
}

func TestSignRejectsEmptyInputs(t *testing.T) {
	_, err := Sign("", New().Set("timestamp", "1"))
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = Sign("secret", New())
	assert.ErrorIs(t, err, ErrEmptyParams)

	_, err = Sign("secret", nil)
	assert.ErrorIs(t, err, ErrEmptyParams)

	assert.True(t, IsInvalidInput(err))
}

func TestSignRejectsReservedKey(t *testing.T) {
	p := New().Set("timestamp", "1").Set("signature", "deadbeef")
	_, err := Sign("secret", p)
	assert.ErrorIs(t, err, ErrReservedKey)
}

func TestSignedQueryAppendsSignatureLast(t *testing.T) {
	p := New().Set("symbol", "BTCUSDT").Set("timestamp", "1700000000000")
	q, err := SignedQuery("test-secret", p)
	require.NoError(t, err)

	assert.Equal(t,
		"symbol=BTCUSDT&timestamp=1700000000000&signature=4e7e8444963d2d57498c79c818e00d7325c0de1fe36287ea426397a06945cbea",
		q)
}

func TestParamsEncodePreservesInsertionOrder(t *testing.T) {
	p := New().Set("z", "1").Set("a", "2").Set("m", "3")
	assert.Equal(t, "z=1&a=2&m=3", p.Encode())
}

func TestParamsSetOverwritesInPlace(t *testing.T) {
	p := New().Set("symbol", "BTCUSDT").Set("limit", "10")
	p.Set("symbol", "ETHUSDT")

	assert.Equal(t, "symbol=ETHUSDT&limit=10", p.Encode())
	assert.Equal(t, 2, p.Len())
}

func TestParamsValuesAreNotEscaped(t *testing.T) {
	// The canonical form is the raw bytes, not the url.Values encoding.
	p := New().SetInt("startTime", 1499827319559).Set("symbol", "LTC/BTC")
	assert.Equal(t, "startTime=1499827319559&symbol=LTC/BTC", p.Encode())
}
