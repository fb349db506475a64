package sampler

import (
	"bytes"
	"errors"
	"testing"

	"quoteSampler/internal/model"
)

func TestExpandSellOrdering(t *testing.T) {
	expander := NewExpander(NewFactory(nil))

	routes := []model.Route{
		{Source: model.SourceUniswapV3, Path: testPath},
		{Source: model.SourceUniswapV2, Path: testPath},
		{Source: model.SourceSushiSwap, Path: testPath},
	}

	ops, err := expander.ExpandSell(testAmounts, routes)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(ops) != len(routes) {
		t.Fatalf("expected %d ops, got %d", len(routes), len(ops))
	}
	for i, op := range ops {
		if op.Source() != routes[i].Source {
			t.Fatalf("op %d tagged %s, want %s", i, op.Source(), routes[i].Source)
		}
	}
}

func TestExpandBuyUnsupportedSource(t *testing.T) {
	expander := NewExpander(NewFactory(nil))

	routes := []model.Route{
		{Source: model.SourceUniswapV2, Path: testPath},
		{Source: model.Source("mystery-dex"), Path: testPath},
	}

	_, err := expander.ExpandBuy(testAmounts, routes)
	var unsupported *UnsupportedProtocolError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedProtocolError, got %v", err)
	}
	if unsupported.Source != model.Source("mystery-dex") {
		t.Fatalf("error names wrong source: %s", unsupported.Source)
	}
}

func TestExpandSharedSourceStaysSeparate(t *testing.T) {
	expander := NewExpander(NewFactory(nil))

	routes := []model.Route{
		{Source: model.SourceUniswapV2, Path: testPath},
		{Source: model.SourceUniswapV2, Path: testPath},
	}

	ops, err := expander.ExpandSell(testAmounts, routes)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected two independent ops, got %d", len(ops))
	}
	if ops[0] == ops[1] {
		t.Fatalf("routes sharing a source must not share an operation")
	}
	if !bytes.Equal(ops[0].Encode(), ops[1].Encode()) {
		t.Fatalf("identical routes must encode identically")
	}
}
