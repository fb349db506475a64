package sampler

import (
	"bytes"
	"errors"
	"math/big"
	"reflect"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"quoteSampler/internal/model"
)

var (
	testPath = []common.Address{
		common.HexToAddress("0x1111111111111111111111111111111111111111"),
		common.HexToAddress("0x2222222222222222222222222222222222222222"),
	}
	testAmounts = []*big.Int{big.NewInt(100), big.NewInt(200)}
)

func packQuoteResult(t *testing.T, method string, amounts []*big.Int) []byte {
	t.Helper()
	entryABI, err := EntrypointABI()
	if err != nil {
		t.Fatalf("parse abi: %v", err)
	}
	raw, err := entryABI.Methods[method].Outputs.Pack(amounts)
	if err != nil {
		t.Fatalf("pack %s result: %v", method, err)
	}
	return raw
}

func TestQuoteOperationEncodeDeterministic(t *testing.T) {
	factory := NewFactory(nil)

	op, err := factory.UniswapV2SellQuotes(testPath, testAmounts, model.SourceUniswapV2)
	if err != nil {
		t.Fatalf("build op: %v", err)
	}
	again, err := factory.UniswapV2SellQuotes(testPath, testAmounts, model.SourceUniswapV2)
	if err != nil {
		t.Fatalf("rebuild op: %v", err)
	}

	if !bytes.Equal(op.Encode(), op.Encode()) {
		t.Fatalf("repeated Encode differs")
	}
	if !bytes.Equal(op.Encode(), again.Encode()) {
		t.Fatalf("identical construction yields different payloads")
	}
	if IsSentinel(op.Encode()) {
		t.Fatalf("real payload classified as sentinel")
	}
}

func TestQuoteOperationDecode(t *testing.T) {
	factory := NewFactory(nil)

	op, err := factory.UniswapV2SellQuotes(testPath, testAmounts, model.SourceUniswapV2)
	if err != nil {
		t.Fatalf("build op: %v", err)
	}

	want := []*big.Int{big.NewInt(10), big.NewInt(19)}
	raw := packQuoteResult(t, "sampleSellsFromUniswapV2", want)

	got, err := op.DecodeSuccess(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("decoded amounts mismatch: %v != %v", got, want)
	}
}

func TestQuoteOperationDecodeGarbage(t *testing.T) {
	factory := NewFactory(nil)

	op, err := factory.UniswapV2SellQuotes(testPath, testAmounts, model.SourceUniswapV2)
	if err != nil {
		t.Fatalf("build op: %v", err)
	}

	_, err = op.DecodeSuccess([]byte{0xde, 0xad})
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestQuoteOperationSentinelDecode(t *testing.T) {
	factory := NewFactory(nil)

	op, err := factory.UniswapV3BuyQuotes(testPath, testAmounts, model.SourceUniswapV3)
	if err != nil {
		t.Fatalf("build op: %v", err)
	}

	got, err := op.DecodeSuccess(SentinelPayload)
	if err != nil {
		t.Fatalf("sentinel decode must not fail: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("sentinel decode must be neutral, got %v", got)
	}
}

func TestQuoteOperationDecodeFailure(t *testing.T) {
	factory := NewFactory(nil)

	op, err := factory.UniswapV2SellQuotes(testPath, testAmounts, model.SourceUniswapV2)
	if err != nil {
		t.Fatalf("build op: %v", err)
	}

	got := op.DecodeFailure([]byte("not a standard revert"))
	if len(got) != 0 {
		t.Fatalf("failure decode must be neutral, got %v", got)
	}
}

func TestQuoteOperationAliasing(t *testing.T) {
	factory := NewFactory(nil)

	canonical, err := factory.UniswapV2SellQuotes(testPath, testAmounts, model.SourceUniswapV2)
	if err != nil {
		t.Fatalf("build canonical op: %v", err)
	}
	aliased, err := factory.UniswapV2SellQuotes(testPath, testAmounts, model.SourceSushiSwap)
	if err != nil {
		t.Fatalf("build aliased op: %v", err)
	}

	if !bytes.Equal(canonical.Encode(), aliased.Encode()) {
		t.Fatalf("aliased sources must share the query payload")
	}
	if aliased.Source() != model.SourceSushiSwap {
		t.Fatalf("aliased op lost its tag: %s", aliased.Source())
	}
}

func TestQuoteOperationShortPath(t *testing.T) {
	factory := NewFactory(nil)

	if _, err := factory.UniswapV2SellQuotes(testPath[:1], testAmounts, model.SourceUniswapV2); err == nil {
		t.Fatalf("expected error for single-token path")
	}
}
