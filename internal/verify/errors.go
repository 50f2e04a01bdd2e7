package verify

import "github.com/kaspa-genesis/verify/internal/consensus"

func newErr(code consensus.ErrorCode, format string, args ...any) error {
	return consensus.NewError(code, format, args...)
}
