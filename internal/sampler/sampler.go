package sampler

import (
	"context"
	"math/big"

	"go.uber.org/zap"

	"quoteSampler/internal/model"
)

// Sampler is the high-level entry point: it expands routes into quote
// operations, folds them into one composed batch call, and executes it in
// a single remote round trip.
type Sampler struct {
	expander *Expander
	executor *Executor
	logger   *zap.Logger
}

func New(invoker BatchInvoker, logger *zap.Logger) *Sampler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sampler{
		expander: NewExpander(NewFactory(logger)),
		executor: NewExecutor(invoker, logger),
		logger:   logger,
	}
}

// SampleSells quotes selling each amount along every route. The result is
// routes-major: result[i][j] samples routes[i] with amounts[j]. A route
// whose quote reverted gets an empty row; the others keep their values.
func (s *Sampler) SampleSells(ctx context.Context, amounts []*big.Int, routes []model.Route, ec ExecutionContext) ([][]model.Sample, error) {
	ops, err := s.expander.ExpandSell(amounts, routes)
	if err != nil {
		return nil, err
	}
	return s.sampleRoutes(ctx, ops, amounts, routes, ec)
}

// SampleBuys quotes buying each amount along every route, shaped like
// SampleSells.
func (s *Sampler) SampleBuys(ctx context.Context, amounts []*big.Int, routes []model.Route, ec ExecutionContext) ([][]model.Sample, error) {
	ops, err := s.expander.ExpandBuy(amounts, routes)
	if err != nil {
		return nil, err
	}
	return s.sampleRoutes(ctx, ops, amounts, routes, ec)
}

func (s *Sampler) sampleRoutes(ctx context.Context, ops []*QuoteOperation, amounts []*big.Int, routes []model.Route, ec ExecutionContext) ([][]model.Sample, error) {
	subOps := make([]Operation[[]*big.Int], len(ops))
	for i, op := range ops {
		subOps[i] = op
	}

	composed, err := Compose(
		subOps,
		CombineRouteSamples(amounts, routes),
		func() [][]model.Sample { return emptyRows(len(routes)) },
		s.logger,
	)
	if err != nil {
		return nil, err
	}

	results, err := ExecuteBatch(ctx, s.executor, []Operation[[][]model.Sample]{composed}, ec)
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

// CombineRouteSamples builds the routes-major combinator: outputs[i][j]
// becomes a Sample tagged with routes[i].Source for input amounts[j]. A
// row whose output count does not match the amounts (the neutral value of
// an absorbed revert) collapses to an empty row.
func CombineRouteSamples(amounts []*big.Int, routes []model.Route) func([][]*big.Int) ([][]model.Sample, error) {
	return func(outputs [][]*big.Int) ([][]model.Sample, error) {
		rows := make([][]model.Sample, len(outputs))
		for i, output := range outputs {
			if len(output) != len(amounts) {
				rows[i] = []model.Sample{}
				continue
			}
			row := make([]model.Sample, len(output))
			for j, amount := range amounts {
				row[j] = model.Sample{
					Source: routes[i].Source,
					Input:  amount,
					Output: output[j],
				}
			}
			rows[i] = row
		}
		return rows, nil
	}
}

func emptyRows(count int) [][]model.Sample {
	rows := make([][]model.Sample, count)
	for i := range rows {
		rows[i] = []model.Sample{}
	}
	return rows
}
