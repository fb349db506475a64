package sampler

// Operation is a self-contained read against the sampler entrypoint: it
// produces its own call data, decodes a successful raw result into T, and
// absorbs a per-slot revert into a neutral T.
type Operation[T any] interface {
	// Encode returns the call data for this operation. It is pure and
	// deterministic: repeated calls return byte-identical payloads.
	Encode() []byte

	// DecodeSuccess converts a successful raw result into a typed value.
	// Feeding it the sentinel payload must return the neutral value, never
	// an error. Malformed bytes fail with a DecodeError.
	DecodeSuccess(raw []byte) (T, error)

	// DecodeFailure converts a reverted slot into the neutral value for T.
	// It never fails; the revert is reported through diagnostics only.
	DecodeFailure(raw []byte) T
}

// SentinelPayload is the distinguished "no remote call needed" payload.
// Real call data always carries at least a four-byte selector, so a
// zero-length payload can never collide with one.
var SentinelPayload = []byte{}

// IsSentinel reports whether a payload is the no-op sentinel.
func IsSentinel(payload []byte) bool {
	return len(payload) == 0
}
