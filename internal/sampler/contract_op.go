package sampler

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"go.uber.org/zap"
)

// contractOperation is an Operation backed by one entrypoint method. The
// call data is packed once at construction, which keeps Encode pure and
// infallible.
type contractOperation[T any] struct {
	method  string
	payload []byte
	convert func(values []interface{}) (T, error)
	neutral func() T
	logger  *zap.Logger
}

func newContractOperation[T any](
	method string,
	args []interface{},
	convert func(values []interface{}) (T, error),
	neutral func() T,
	logger *zap.Logger,
) (*contractOperation[T], error) {
	entryABI, err := EntrypointABI()
	if err != nil {
		return nil, fmt.Errorf("parse entrypoint abi: %w", err)
	}
	if _, ok := entryABI.Methods[method]; !ok {
		return nil, fmt.Errorf("unknown entrypoint method: %s", method)
	}

	payload, err := entryABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &contractOperation[T]{
		method:  method,
		payload: payload,
		convert: convert,
		neutral: neutral,
		logger:  logger,
	}, nil
}

func (o *contractOperation[T]) Encode() []byte {
	out := make([]byte, len(o.payload))
	copy(out, o.payload)
	return out
}

func (o *contractOperation[T]) DecodeSuccess(raw []byte) (T, error) {
	if IsSentinel(raw) {
		return o.neutral(), nil
	}

	entryABI, err := EntrypointABI()
	if err != nil {
		var zero T
		return zero, &DecodeError{Method: o.method, Err: err}
	}

	values, err := entryABI.Methods[o.method].Outputs.Unpack(raw)
	if err != nil {
		var zero T
		return zero, &DecodeError{Method: o.method, Err: err}
	}

	result, err := o.convert(values)
	if err != nil {
		var zero T
		return zero, &DecodeError{Method: o.method, Err: err}
	}
	return result, nil
}

func (o *contractOperation[T]) DecodeFailure(raw []byte) T {
	o.logger.Warn("sample call reverted",
		zap.String("method", o.method),
		zap.String("reason", revertReason(raw)),
	)
	return o.neutral()
}

// revertReason extracts a human-readable reason from revert data, falling
// back to a byte count for non-standard payloads.
func revertReason(raw []byte) string {
	reason, err := abi.UnpackRevert(raw)
	if err != nil {
		return fmt.Sprintf("%d opaque revert bytes", len(raw))
	}
	return reason
}
