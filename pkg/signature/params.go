package signature

import (
	"strconv"
	"strings"
)

// Params is an insertion-ordered set of request parameters. The upstream
// exchange signs the query string exactly as transmitted, so the order in
// which keys are added is the order in which they are serialized, so Params
// is deliberately not a map.
type Params struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

// New creates an empty parameter set.
func New() *Params {
	return &Params{}
}

// Set adds a parameter, or overwrites the value in place if the key already
// exists. Overwriting keeps the key's original position.
func (p *Params) Set(key, value string) *Params {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs[i].value = value
			return p
		}
	}
	p.pairs = append(p.pairs, pair{key: key, value: value})
	return p
}

// SetInt adds an integer parameter using its decimal representation.
func (p *Params) SetInt(key string, value int64) *Params {
	return p.Set(key, strconv.FormatInt(value, 10))
}

// Get returns the value for key and whether it is present.
func (p *Params) Get(key string) (string, bool) {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			return p.pairs[i].value, true
		}
	}
	return "", false
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.pairs)
}

// Encode serializes the parameters as key1=value1&key2=value2 in insertion
// order. Values are written verbatim, without URL-encoding: the upstream
// signature scheme covers the raw bytes on the wire.
func (p *Params) Encode() string {
	var b strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(kv.key)
		b.WriteByte('=')
		b.WriteString(kv.value)
	}
	return b.String()
}
