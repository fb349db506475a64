package sampler

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"quoteSampler/internal/model"
)

// QuoteOperation samples quote amounts for one route. It decodes to one
// output amount per input amount, and reports its source tag so aliased
// sources keep their own identity in results.
type QuoteOperation struct {
	inner  *contractOperation[[]*big.Int]
	source model.Source
	logger *zap.Logger
}

func (o *QuoteOperation) Source() model.Source {
	return o.source
}

func (o *QuoteOperation) Encode() []byte {
	return o.inner.Encode()
}

func (o *QuoteOperation) DecodeSuccess(raw []byte) ([]*big.Int, error) {
	return o.inner.DecodeSuccess(raw)
}

func (o *QuoteOperation) DecodeFailure(raw []byte) []*big.Int {
	record := model.RevertRecord{
		Source: o.source,
		Method: o.inner.method,
		Reason: revertReason(raw),
	}
	o.logger.Warn("quote reverted",
		zap.String("source", string(record.Source)),
		zap.String("method", record.Method),
		zap.String("reason", record.Reason),
	)
	return []*big.Int{}
}

// Factory builds quote operations for each supported query shape.
type Factory struct {
	logger *zap.Logger
}

func NewFactory(logger *zap.Logger) *Factory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factory{logger: logger}
}

// UniswapV2SellQuotes builds a sell-quote operation against the V2 pair
// query shape, tagged with the given source. SourceUniswapV2 is the
// canonical tag; aliased sources pass their own.
func (f *Factory) UniswapV2SellQuotes(path []common.Address, amounts []*big.Int, source model.Source) (*QuoteOperation, error) {
	return f.quoteOperation("sampleSellsFromUniswapV2", path, amounts, source)
}

// UniswapV2BuyQuotes builds a buy-quote operation against the V2 pair
// query shape, tagged with the given source. SourceUniswapV2 is the
// canonical tag; aliased sources pass their own.
func (f *Factory) UniswapV2BuyQuotes(path []common.Address, amounts []*big.Int, source model.Source) (*QuoteOperation, error) {
	return f.quoteOperation("sampleBuysFromUniswapV2", path, amounts, source)
}

// UniswapV3SellQuotes builds a sell-quote operation against the V3 quoter
// shape, tagged with the given source. SourceUniswapV3 is the canonical
// tag; aliased sources pass their own.
func (f *Factory) UniswapV3SellQuotes(path []common.Address, amounts []*big.Int, source model.Source) (*QuoteOperation, error) {
	return f.quoteOperation("sampleSellsFromUniswapV3", path, amounts, source)
}

// UniswapV3BuyQuotes builds a buy-quote operation against the V3 quoter
// shape, tagged with the given source. SourceUniswapV3 is the canonical
// tag; aliased sources pass their own.
func (f *Factory) UniswapV3BuyQuotes(path []common.Address, amounts []*big.Int, source model.Source) (*QuoteOperation, error) {
	return f.quoteOperation("sampleBuysFromUniswapV3", path, amounts, source)
}

func (f *Factory) quoteOperation(method string, path []common.Address, amounts []*big.Int, source model.Source) (*QuoteOperation, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("path needs at least two tokens, got %d", len(path))
	}

	inner, err := newContractOperation[[]*big.Int](
		method,
		[]interface{}{path, amounts},
		convertAmounts,
		func() []*big.Int { return []*big.Int{} },
		f.logger,
	)
	if err != nil {
		return nil, err
	}

	return &QuoteOperation{inner: inner, source: source, logger: f.logger}, nil
}

func convertAmounts(values []interface{}) ([]*big.Int, error) {
	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected value count: %d", len(values))
	}
	amounts, ok := values[0].([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected value type: %T", values[0])
	}
	return amounts, nil
}

type quoteConstructor func(*Factory, []common.Address, []*big.Int, model.Source) (*QuoteOperation, error)

// Constructor registries keyed by source. Aliased sources share one query
// shape but keep their own tag.
var (
	sellConstructors = map[model.Source]quoteConstructor{
		model.SourceUniswapV2: (*Factory).UniswapV2SellQuotes,
		model.SourceSushiSwap: (*Factory).UniswapV2SellQuotes,
		model.SourcePancakeV2: (*Factory).UniswapV2SellQuotes,
		model.SourceUniswapV3: (*Factory).UniswapV3SellQuotes,
		model.SourcePancakeV3: (*Factory).UniswapV3SellQuotes,
	}

	buyConstructors = map[model.Source]quoteConstructor{
		model.SourceUniswapV2: (*Factory).UniswapV2BuyQuotes,
		model.SourceSushiSwap: (*Factory).UniswapV2BuyQuotes,
		model.SourcePancakeV2: (*Factory).UniswapV2BuyQuotes,
		model.SourceUniswapV3: (*Factory).UniswapV3BuyQuotes,
		model.SourcePancakeV3: (*Factory).UniswapV3BuyQuotes,
	}
)
