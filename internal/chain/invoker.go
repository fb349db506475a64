package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"quoteSampler/internal/sampler"
)

// ContractCaller is the eth_call capability the invoker needs.
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Invoker executes batched call datas against a sampler entrypoint via
// eth_call. The entrypoint's batchCall catches each sub-call's revert and
// returns it as a per-slot failure, so a failed eth_call here means the
// whole invocation failed, never an individual quote.
type Invoker struct {
	caller     ContractCaller
	entrypoint common.Address
	logger     *zap.Logger
}

func NewInvoker(caller ContractCaller, entrypoint common.Address, logger *zap.Logger) *Invoker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invoker{caller: caller, entrypoint: entrypoint, logger: logger}
}

// BatchInvoke sends all call datas as one batchCall pinned to blockNumber,
// or the latest state when blockNumber is nil.
func (iv *Invoker) BatchInvoke(ctx context.Context, callDatas [][]byte, blockNumber *big.Int) ([]sampler.CallResult, error) {
	payload, err := sampler.PackBatchCall(callDatas)
	if err != nil {
		return nil, &sampler.RemoteExecutionError{Err: err}
	}

	iv.logger.Debug("batch invoke",
		zap.Int("calls", len(callDatas)),
		zap.String("entrypoint", iv.entrypoint.Hex()),
		zap.Bool("pinned", blockNumber != nil),
	)

	msg := ethereum.CallMsg{To: &iv.entrypoint, Data: payload}
	raw, err := iv.caller.CallContract(ctx, msg, blockNumber)
	if err != nil {
		return nil, &sampler.RemoteExecutionError{Err: err}
	}

	results, err := sampler.UnpackBatchCall(raw)
	if err != nil {
		return nil, &sampler.RemoteExecutionError{Err: err}
	}
	return results, nil
}
