package sampler

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

// CallResult is one slot of a batch invocation. A reverted sub-call is
// surfaced as Success=false with the revert data, not as a failure of the
// whole invocation.
type CallResult struct {
	Success bool
	Data    []byte
}

// BatchInvoker executes call datas in one remote invocation against the
// given block, or the latest state when blockNumber is nil. It must return
// exactly one result per call data, in order, and fail the whole call only
// on transport or malformed-outer-payload conditions.
type BatchInvoker interface {
	BatchInvoke(ctx context.Context, callDatas [][]byte, blockNumber *big.Int) ([]CallResult, error)
}

// ExecutionContext pins an execution to a historical block. The zero value
// means latest. Passing it at execution time lets one operation set be
// replayed at different blocks.
type ExecutionContext struct {
	BlockNumber *big.Int
}

// Executor runs operation batches in single remote round trips.
type Executor struct {
	invoker BatchInvoker
	logger  *zap.Logger
}

func NewExecutor(invoker BatchInvoker, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{invoker: invoker, logger: logger}
}

// ExecuteBatch encodes every operation, sends the non-sentinel payloads as
// one remote invocation, and splices the results back so result[i] always
// corresponds to ops[i]. Sentinel operations are resolved locally; when
// every payload is the sentinel no remote call is made at all.
func ExecuteBatch[T any](ctx context.Context, ex *Executor, ops []Operation[T], ec ExecutionContext) ([]T, error) {
	if ex.invoker == nil {
		return nil, fmt.Errorf("batch invoker is nil")
	}

	payloads := make([][]byte, len(ops))
	remote := make([][]byte, 0, len(ops))
	for i, op := range ops {
		payloads[i] = op.Encode()
		if !IsSentinel(payloads[i]) {
			remote = append(remote, payloads[i])
		}
	}

	var slots []CallResult
	if len(remote) > 0 {
		invoked, err := ex.invoker.BatchInvoke(ctx, remote, ec.BlockNumber)
		if err != nil {
			var remoteErr *RemoteExecutionError
			if !errors.As(err, &remoteErr) {
				err = &RemoteExecutionError{Err: err}
			}
			return nil, err
		}
		if len(invoked) != len(remote) {
			return nil, &RemoteExecutionError{
				Err: fmt.Errorf("expected %d results, got %d", len(remote), len(invoked)),
			}
		}
		slots = invoked
	} else {
		ex.logger.Debug("all payloads are sentinels, skipping remote call",
			zap.Int("ops", len(ops)),
		)
	}

	results := make([]T, len(ops))
	next := 0
	for i, op := range ops {
		if IsSentinel(payloads[i]) {
			result, err := op.DecodeSuccess(SentinelPayload)
			if err != nil {
				return nil, err
			}
			results[i] = result
			continue
		}

		slot := slots[next]
		next++
		if !slot.Success {
			results[i] = op.DecodeFailure(slot.Data)
			continue
		}
		result, err := op.DecodeSuccess(slot.Data)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}

	return results, nil
}
