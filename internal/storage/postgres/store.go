package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quoteSampler/internal/model"
)

// Store provides Postgres persistence for sampled quotes.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertSampleBatches inserts or updates one row per sample.
func (s *Store) UpsertSampleBatches(ctx context.Context, batches []model.SampleBatch) error {
	if len(batches) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	queued := 0
	for _, b := range batches {
		for _, sample := range b.Samples {
			batch.Queue(`
				INSERT INTO quote_samples (
					chain_id, block_number, side, source, token_in, token_out,
					amount_in, amount_out, sampled_at, created_at, updated_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
				ON CONFLICT (chain_id, block_number, side, source, token_in, token_out, amount_in)
				DO UPDATE SET
					amount_out = EXCLUDED.amount_out,
					sampled_at = EXCLUDED.sampled_at,
					updated_at = now()
			`,
				int64(b.ChainID),
				int64(b.BlockNumber),
				b.Side,
				string(b.Source),
				b.TokenIn,
				b.TokenOut,
				sample.Input.String(),
				sample.Output.String(),
				b.SampledAt,
			)
			queued++
		}
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < queued; i++ {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// PutSampleBatch implements the storage sink over the upsert.
func (s *Store) PutSampleBatch(batches []model.SampleBatch) error {
	return s.UpsertSampleBatches(context.Background(), batches)
}
