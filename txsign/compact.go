package txsign

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// CompactSigLen is the length of a compact (r||s) signature.
const CompactSigLen = 64

// CompactToDER converts a 64-byte compact signature into its DER encoding,
// normalizing s to the low-S form first. The result is at most 72 bytes and
// carries no sighash type byte.
func CompactToDER(compact []byte) ([]byte, error) {
	if len(compact) != CompactSigLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d",
			ErrInvalidCompactSig, len(compact), CompactSigLen)
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(compact[:32]); overflow {
		return nil, fmt.Errorf("%w: r overflows the group order",
			ErrInvalidCompactSig)
	}
	if overflow := s.SetByteSlice(compact[32:]); overflow {
		return nil, fmt.Errorf("%w: s overflows the group order",
			ErrInvalidCompactSig)
	}

	if s.IsOverHalfOrder() {
		s.Negate()
	}

	return secpecdsa.NewSignature(&r, &s).Serialize(), nil
}
