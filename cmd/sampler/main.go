package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"quoteSampler/internal/chain"
	"quoteSampler/internal/config"
	"quoteSampler/internal/model"
	"quoteSampler/internal/registry"
	"quoteSampler/internal/sampler"
	"quoteSampler/internal/storage"
	"quoteSampler/internal/storage/postgres"
)

func main() {
	root := &cobra.Command{
		Use:          "sampler",
		Short:        "Batched DEX quote sampler",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	sellCmd := &cobra.Command{
		Use:   "sell",
		Short: "Sample sell quotes along a token path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuote(cmd, "sell")
		},
	}
	addQuoteFlags(sellCmd)
	root.AddCommand(sellCmd)

	buyCmd := &cobra.Command{
		Use:   "buy",
		Short: "Sample buy quotes along a token path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuote(cmd, "buy")
		},
	}
	addQuoteFlags(buyCmd)
	root.AddCommand(buyCmd)

	networksCmd := &cobra.Command{
		Use:   "networks",
		Short: "List chains with a known sampler entrypoint",
		RunE:  runNetworks,
	}
	root.AddCommand(networksCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addQuoteFlags(cmd *cobra.Command) {
	cmd.Flags().String("rpc", "", "RPC URL")
	cmd.Flags().Uint64("block", 0, "block number to pin quotes to, 0 means latest")
	cmd.Flags().StringSlice("path", nil, "token path addresses (comma-separated, at least two)")
	cmd.Flags().StringSlice("amount", nil, "amounts in base units (comma-separated)")
	cmd.Flags().StringSlice("source", nil, "liquidity sources (comma-separated)")
	cmd.Flags().String("entrypoint", "", "override sampler entrypoint address")
	cmd.Flags().String("out", "", "optional JSONL output path")
	cmd.Flags().String("pg-dsn", "", "optional Postgres DSN")
	cmd.Flags().Int("max-retries", 3, "maximum retry attempts for the batch call")
	cmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func runQuote(cmd *cobra.Command, side string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}

	path, err := model.ParsePath(cfg.Path)
	if err != nil {
		return err
	}
	if len(path) < 2 {
		return fmt.Errorf("path needs at least two tokens")
	}

	amounts, err := model.ParseAmounts(cfg.Amounts)
	if err != nil {
		return err
	}
	if len(amounts) == 0 {
		return fmt.Errorf("at least one amount is required")
	}

	sources, err := model.ParseSources(cfg.Sources)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("at least one source is required")
	}

	routes := make([]model.Route, len(sources))
	for i, source := range sources {
		routes[i] = model.Route{Source: source, Path: path}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
	}
	defer chainClient.Close()

	chainID, err := chainClient.GetChainID(ctx)
	if err != nil {
		return fmt.Errorf("get chain id: %w", err)
	}
	if !chainID.IsUint64() {
		return fmt.Errorf("chain id does not fit in uint64: %s", chainID)
	}

	overrides := map[uint64]common.Address{}
	if cfg.Entrypoint != "" {
		if !common.IsHexAddress(cfg.Entrypoint) {
			return fmt.Errorf("invalid entrypoint address: %s", cfg.Entrypoint)
		}
		overrides[chainID.Uint64()] = common.HexToAddress(cfg.Entrypoint)
	}

	entrypoint, err := registry.New(overrides).Resolve(chainID.Uint64())
	if err != nil {
		return err
	}

	block := cfg.Block
	if block == 0 {
		latest, err := chainClient.LatestBlockNumber(ctx)
		if err != nil {
			return fmt.Errorf("get latest block: %w", err)
		}
		block = latest
	}
	blockNumber := new(big.Int).SetUint64(block)

	header, err := chainClient.HeaderByNumber(ctx, blockNumber)
	if err != nil {
		return fmt.Errorf("get block header: %w", err)
	}
	sampledAt := time.Unix(int64(header.Time), 0).UTC().Format(time.RFC3339)

	smp := sampler.New(chain.NewInvoker(chainClient, entrypoint, logger), logger)
	ec := sampler.ExecutionContext{BlockNumber: blockNumber}

	logger.Info("sampling quotes",
		zap.String("side", side),
		zap.Uint64("chain_id", chainID.Uint64()),
		zap.Uint64("block", block),
		zap.String("entrypoint", entrypoint.Hex()),
		zap.Int("routes", len(routes)),
		zap.Int("amounts", len(amounts)),
	)

	var rows [][]model.Sample
	err = withRetry(ctx, cfg.MaxRetries, cfg.RetryBackoff, func(ctx context.Context) error {
		var sampleErr error
		if side == "sell" {
			rows, sampleErr = smp.SampleSells(ctx, amounts, routes, ec)
		} else {
			rows, sampleErr = smp.SampleBuys(ctx, amounts, routes, ec)
		}
		return sampleErr
	})
	if err != nil {
		return err
	}

	printSamples(routes, rows)

	batches := buildSampleBatches(chainID.Uint64(), block, side, sampledAt, path, routes, rows)
	if cfg.Out != "" {
		if err := storage.NewJsonlStorage(cfg.Out).PutSampleBatch(batches); err != nil {
			return err
		}
	}
	if cfg.PgDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PgDSN)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.UpsertSampleBatches(ctx, batches); err != nil {
			return err
		}
	}

	return nil
}

func runNetworks(cmd *cobra.Command, _ []string) error {
	entrypoints := registry.New(nil)
	for _, chainID := range entrypoints.ChainIDs() {
		address, err := entrypoints.Resolve(chainID)
		if err != nil {
			return err
		}
		fmt.Printf("%d\t%s\n", chainID, address.Hex())
	}
	return nil
}

func printSamples(routes []model.Route, rows [][]model.Sample) {
	for i, route := range routes {
		if len(rows[i]) == 0 {
			fmt.Printf("%s\tno quotes\n", route.Source)
			continue
		}
		for _, sample := range rows[i] {
			fmt.Printf("%s\t%s\t%s\n", sample.Source, sample.Input, sample.Output)
		}
	}
}

func buildSampleBatches(
	chainID uint64,
	block uint64,
	side string,
	sampledAt string,
	path []common.Address,
	routes []model.Route,
	rows [][]model.Sample,
) []model.SampleBatch {
	tokenIn := path[0].Hex()
	tokenOut := path[len(path)-1].Hex()

	batches := make([]model.SampleBatch, len(routes))
	for i, route := range routes {
		batches[i] = model.SampleBatch{
			ChainID:     chainID,
			BlockNumber: block,
			Side:        side,
			Source:      route.Source,
			TokenIn:     tokenIn,
			TokenOut:    tokenOut,
			Samples:     rows[i],
			SampledAt:   sampledAt,
		}
	}
	return batches
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
