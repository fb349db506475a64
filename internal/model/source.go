package model

// Source identifies the liquidity source a quote is sampled from.
type Source string

const (
	SourceUniswapV2 Source = "uniswap-v2"
	SourceSushiSwap Source = "sushiswap"
	SourcePancakeV2 Source = "pancakeswap-v2"
	SourceUniswapV3 Source = "uniswap-v3"
	SourcePancakeV3 Source = "pancakeswap-v3"
)

// KnownSources lists every source the sampler can quote, in a stable order.
func KnownSources() []Source {
	return []Source{
		SourceUniswapV2,
		SourceSushiSwap,
		SourcePancakeV2,
		SourceUniswapV3,
		SourcePancakeV3,
	}
}
