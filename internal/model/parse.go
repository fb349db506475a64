package model

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ParsePath converts string addresses into an ordered token path.
func ParsePath(inputs []string) ([]common.Address, error) {
	path := make([]common.Address, 0, len(inputs))
	for _, input := range inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !common.IsHexAddress(input) {
			return nil, fmt.Errorf("invalid address: %s", input)
		}
		path = append(path, common.HexToAddress(input))
	}
	return path, nil
}

// ParseAmounts converts decimal strings into big integer amounts.
func ParseAmounts(inputs []string) ([]*big.Int, error) {
	amounts := make([]*big.Int, 0, len(inputs))
	for _, input := range inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		value, ok := new(big.Int).SetString(input, 10)
		if !ok {
			return nil, fmt.Errorf("invalid amount: %s", input)
		}
		if value.Sign() < 0 {
			return nil, fmt.Errorf("negative amount: %s", input)
		}
		amounts = append(amounts, value)
	}
	return amounts, nil
}

// ParseSources converts string names into liquidity sources.
func ParseSources(inputs []string) ([]Source, error) {
	known := make(map[Source]struct{}, len(KnownSources()))
	for _, source := range KnownSources() {
		known[source] = struct{}{}
	}

	sources := make([]Source, 0, len(inputs))
	for _, input := range inputs {
		input = strings.ToLower(strings.TrimSpace(input))
		if input == "" {
			continue
		}
		source := Source(input)
		if _, ok := known[source]; !ok {
			return nil, fmt.Errorf("unknown source: %s", input)
		}
		sources = append(sources, source)
	}
	return sources, nil
}
