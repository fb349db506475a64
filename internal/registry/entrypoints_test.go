package registry

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"quoteSampler/internal/sampler"
)

func TestResolveKnownChain(t *testing.T) {
	address, err := New(nil).Resolve(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if address == (common.Address{}) {
		t.Fatalf("expected non-zero entrypoint address")
	}
}

func TestResolveOverrideWins(t *testing.T) {
	custom := common.HexToAddress("0x0000000000000000000000000000000000000042")
	entrypoints := New(map[uint64]common.Address{1: custom})

	address, err := entrypoints.Resolve(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if address != custom {
		t.Fatalf("override ignored: %s", address.Hex())
	}
}

func TestResolveUnknownChain(t *testing.T) {
	_, err := New(nil).Resolve(999999)
	var cfgErr *sampler.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if cfgErr.ChainID != 999999 {
		t.Fatalf("error names wrong chain: %d", cfgErr.ChainID)
	}
}

func TestChainIDsSorted(t *testing.T) {
	ids := New(nil).ChainIDs()
	if len(ids) == 0 {
		t.Fatalf("expected built-in chains")
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("chain ids not sorted: %v", ids)
		}
	}
}
