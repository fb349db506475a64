package sampler

import (
	"fmt"

	"go.uber.org/zap"
)

// composedOperation wraps N sub-operations into one batchCall operation.
type composedOperation[T any, R any] struct {
	subOps         []Operation[T]
	payload        []byte
	combine        func([]T) (R, error)
	onBatchFailure func() R
	logger         *zap.Logger
}

// Compose folds sub-operations into a single Operation whose payload
// invokes them all in one nested batchCall. Decoding fans the per-slot
// results back out to each sub-operation and applies combine; a revert of
// one slot is absorbed by that sub-operation alone. onBatchFailure only
// fires when the composed call itself fails as a whole.
func Compose[T any, R any](
	subOps []Operation[T],
	combine func([]T) (R, error),
	onBatchFailure func() R,
	logger *zap.Logger,
) (Operation[R], error) {
	callDatas := make([][]byte, len(subOps))
	for i, op := range subOps {
		callDatas[i] = op.Encode()
	}

	payload, err := PackBatchCall(callDatas)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &composedOperation[T, R]{
		subOps:         subOps,
		payload:        payload,
		combine:        combine,
		onBatchFailure: onBatchFailure,
		logger:         logger,
	}, nil
}

func (o *composedOperation[T, R]) Encode() []byte {
	out := make([]byte, len(o.payload))
	copy(out, o.payload)
	return out
}

func (o *composedOperation[T, R]) DecodeSuccess(raw []byte) (R, error) {
	var zero R

	if IsSentinel(raw) {
		return o.onBatchFailure(), nil
	}

	slots, err := UnpackBatchCall(raw)
	if err != nil {
		return zero, &DecodeError{Method: "batchCall", Err: err}
	}
	if len(slots) != len(o.subOps) {
		return zero, &DecodeError{
			Method: "batchCall",
			Err:    fmt.Errorf("expected %d slots, got %d", len(o.subOps), len(slots)),
		}
	}

	results := make([]T, len(o.subOps))
	for i, op := range o.subOps {
		slot := slots[i]
		if !slot.Success {
			results[i] = op.DecodeFailure(slot.Data)
			continue
		}
		result, err := op.DecodeSuccess(slot.Data)
		if err != nil {
			return zero, err
		}
		results[i] = result
	}

	return o.combine(results)
}

func (o *composedOperation[T, R]) DecodeFailure(raw []byte) R {
	o.logger.Warn("composed batch call reverted",
		zap.Int("sub_ops", len(o.subOps)),
		zap.String("reason", revertReason(raw)),
	)
	return o.onBatchFailure()
}
