package sampler

import (
	"math/big"

	"quoteSampler/internal/model"
)

// Expander turns abstract routes into concrete quote operations.
type Expander struct {
	factory *Factory
}

func NewExpander(factory *Factory) *Expander {
	return &Expander{factory: factory}
}

// ExpandSell builds one sell-quote operation per route, sharing the sell
// amounts across all of them. Output order matches the input routes.
func (e *Expander) ExpandSell(amounts []*big.Int, routes []model.Route) ([]*QuoteOperation, error) {
	return e.expand(sellConstructors, amounts, routes)
}

// ExpandBuy builds one buy-quote operation per route, sharing the buy
// amounts across all of them. Output order matches the input routes.
func (e *Expander) ExpandBuy(amounts []*big.Int, routes []model.Route) ([]*QuoteOperation, error) {
	return e.expand(buyConstructors, amounts, routes)
}

func (e *Expander) expand(constructors map[model.Source]quoteConstructor, amounts []*big.Int, routes []model.Route) ([]*QuoteOperation, error) {
	ops := make([]*QuoteOperation, 0, len(routes))
	for _, route := range routes {
		construct, ok := constructors[route.Source]
		if !ok {
			return nil, &UnsupportedProtocolError{Source: route.Source}
		}
		op, err := construct(e.factory, route.Path, amounts, route.Source)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
