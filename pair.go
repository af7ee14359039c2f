package trading

import (
	"fmt"
	"strings"
)

type Asset string

// Quote assets recognized when a pair is given as a concatenated symbol.
var knownQuoteAssets = []Asset{"USDT", "BUSD", "USDC", "BTC", "ETH", "BNB", "EUR"}

type Pair struct {
	Base, Quote Asset
}

// ParsePair accepts either the BASE/QUOTE form or an exchange symbol like
// ADAUSDT, in which case the quote asset must be a known suffix.
func ParsePair(pair string) (Pair, error) {
	pair = strings.ToUpper(strings.TrimSpace(pair))

	if symbols := strings.Split(pair, "/"); len(symbols) == 2 {
		if len(symbols[0]) == 0 || len(symbols[1]) == 0 {
			return Pair{}, fmt.Errorf("invalid pair: [%v]", pair)
		}

		return Pair{Base: Asset(symbols[0]), Quote: Asset(symbols[1])}, nil
	}

	for _, quote := range knownQuoteAssets {
		base := strings.TrimSuffix(pair, string(quote))
		if len(base) > 0 && len(base) < len(pair) {
			return Pair{Base: Asset(base), Quote: quote}, nil
		}
	}

	return Pair{}, fmt.Errorf("could not determine quote asset of pair: [%v]", pair)
}

// Symbol returns the exchange symbol of the pair, e.g. ADAUSDT.
func (p Pair) Symbol() string {
	return string(p.Base + p.Quote)
}

func (p Pair) String() string {
	return string(p.Base) + "/" + string(p.Quote)
}
