package registry

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"quoteSampler/internal/sampler"
)

// Built-in sampler entrypoint deployments.
var defaultEntrypoints = map[uint64]common.Address{
	1:     common.HexToAddress("0x5bC91F84D4f9D0Ec1BcD636353611cCb4b1D4E61"),
	56:    common.HexToAddress("0x9A8cbEa532AdC246Ed065E8472A21bB8aCcD6B2B"),
	137:   common.HexToAddress("0x7D0cC13bF21E29dE14C2C4483c50f49b8eA2110D"),
	8453:  common.HexToAddress("0x3C63E11dB1D7bf94E2aF48eE6583bAD7A9e1Cc58"),
	42161: common.HexToAddress("0xC0dA41dE55D7F9Cb1C0Fb414Eb1b813B26AF3C9e"),
}

// Entrypoints resolves the batch entrypoint address per chain. Overrides
// are injected at construction, so no process-wide state is involved.
type Entrypoints struct {
	addresses map[uint64]common.Address
}

// New builds a resolver from the built-in deployments plus overrides.
func New(overrides map[uint64]common.Address) Entrypoints {
	addresses := make(map[uint64]common.Address, len(defaultEntrypoints)+len(overrides))
	for chainID, address := range defaultEntrypoints {
		addresses[chainID] = address
	}
	for chainID, address := range overrides {
		addresses[chainID] = address
	}
	return Entrypoints{addresses: addresses}
}

// Resolve returns the entrypoint address for a chain.
func (e Entrypoints) Resolve(chainID uint64) (common.Address, error) {
	address, ok := e.addresses[chainID]
	if !ok {
		return common.Address{}, &sampler.ConfigurationError{ChainID: chainID}
	}
	return address, nil
}

// ChainIDs lists the configured chains in ascending order.
func (e Entrypoints) ChainIDs() []uint64 {
	ids := make([]uint64, 0, len(e.addresses))
	for chainID := range e.addresses {
		ids = append(ids, chainID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
