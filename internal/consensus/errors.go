package consensus

import "fmt"

// ErrorCode identifies one of the failure kinds this verifier can raise.
// It mirrors the teacher codebase's ErrorCode/txerr convention.
type ErrorCode string

const (
	ErrIO                     ErrorCode = "ERR_IO"
	ErrTruncated              ErrorCode = "ERR_TRUNCATED"
	ErrMalformedHeader        ErrorCode = "ERR_MALFORMED_HEADER"
	ErrHeaderMissing          ErrorCode = "ERR_HEADER_MISSING"
	ErrHashMismatch           ErrorCode = "ERR_HASH_MISMATCH"
	ErrGenesisHashMismatch    ErrorCode = "ERR_GENESIS_HASH_MISMATCH"
	ErrGenesisHeaderMissing   ErrorCode = "ERR_GENESIS_HEADER_MISSING"
	ErrGenesisMerkleMismatch  ErrorCode = "ERR_GENESIS_MERKLE_MISMATCH"
	ErrUTXOCommitmentMismatch ErrorCode = "ERR_UTXO_COMMITMENT_MISMATCH"
	ErrEmptyMuhashMismatch    ErrorCode = "ERR_EMPTY_MUHASH_MISMATCH"
	ErrChainTooLong           ErrorCode = "ERR_CHAIN_TOO_LONG"
	ErrChainBroken            ErrorCode = "ERR_CHAIN_BROKEN"
)

// VerifyError is the tagged error type raised by every phase of the
// verifier. Callers that need to branch on failure kind should use
// errors.As to recover the Code.
type VerifyError struct {
	Code ErrorCode
	Msg  string
}

func (e *VerifyError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func newErr(code ErrorCode, format string, args ...any) error {
	return &VerifyError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// NewError builds a VerifyError for callers outside this package (the
// chain walker and verification driver), keeping error construction in
// one place.
func NewError(code ErrorCode, format string, args ...any) error {
	return newErr(code, format, args...)
}
