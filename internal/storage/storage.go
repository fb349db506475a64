package storage

import "quoteSampler/internal/model"

// Storage defines a sink for sample batches.
type Storage interface {
	PutSampleBatch(batches []model.SampleBatch) error
}
