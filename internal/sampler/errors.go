package sampler

import (
	"fmt"

	"quoteSampler/internal/model"
)

// UnsupportedProtocolError means a route names a source with no registered
// quote constructor. It aborts the whole expansion.
type UnsupportedProtocolError struct {
	Source model.Source
}

func (e *UnsupportedProtocolError) Error() string {
	return fmt.Sprintf("unsupported liquidity source: %s", e.Source)
}

// ConfigurationError means no batch entrypoint is known for a chain.
type ConfigurationError struct {
	ChainID uint64
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no batch entrypoint configured for chain %d", e.ChainID)
}

// DecodeError means a success-path decode received bytes that do not match
// the expected shape. It indicates an ABI mismatch, not a remote failure,
// and always propagates.
type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s result: %v", e.Method, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RemoteExecutionError means the batch invocation itself failed. No local
// recovery is attempted; retrying is the caller's decision.
type RemoteExecutionError struct {
	Err error
}

func (e *RemoteExecutionError) Error() string {
	return fmt.Sprintf("batch invocation failed: %v", e.Err)
}

func (e *RemoteExecutionError) Unwrap() error {
	return e.Err
}
