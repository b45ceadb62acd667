package txsign

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

// TestCompactToDER converts a known compact signature to DER and checks the
// result against the DER serialization produced by the signer itself.
func TestCompactToDER(t *testing.T) {
	t.Parallel()

	privKey, _ := btcec.PrivKeyFromBytes(testKeyBytes)
	digest := sha256.Sum256([]byte("bitcointool compact to der"))

	// SignCompact and Sign use the same deterministic nonce, so the DER
	// serialization of the signature must match the conversion of the
	// compact form.
	compact := ecdsa.SignCompact(privKey, digest[:], true)
	der, err := CompactToDER(compact[1:])
	require.NoError(t, err)

	want := ecdsa.Sign(privKey, digest[:]).Serialize()
	require.Equal(t, want, der)

	// Syntactic DER checks: SEQUENCE tag, INTEGER tags, bounded length.
	require.LessOrEqual(t, len(der), 72)
	require.EqualValues(t, 0x30, der[0])
	require.EqualValues(t, 0x02, der[2])

	parsed, err := ecdsa.ParseDERSignature(der)
	require.NoError(t, err)
	require.True(t, parsed.Verify(digest[:], privKey.PubKey()))
}

// TestCompactToDERHighS asserts that a high-S compact signature is
// normalized to its low-S form.
func TestCompactToDERHighS(t *testing.T) {
	t.Parallel()

	privKey, _ := btcec.PrivKeyFromBytes(testKeyBytes)
	digest := sha256.Sum256([]byte("bitcointool high s"))

	compact := ecdsa.SignCompact(privKey, digest[:], true)
	lowS, err := CompactToDER(compact[1:])
	require.NoError(t, err)

	// Flip s to the high form: s' = N - s.
	highS := negateS(t, compact[1:])
	der, err := CompactToDER(highS)
	require.NoError(t, err)
	require.Equal(t, lowS, der)
}

// TestCompactToDERInvalid exercises rejected inputs.
func TestCompactToDERInvalid(t *testing.T) {
	t.Parallel()

	_, err := CompactToDER(nil)
	require.ErrorIs(t, err, ErrInvalidCompactSig)

	_, err = CompactToDER(make([]byte, 63))
	require.ErrorIs(t, err, ErrInvalidCompactSig)

	// r beyond the group order overflows.
	overflow := bytes.Repeat([]byte{0xff}, CompactSigLen)
	_, err = CompactToDER(overflow)
	require.ErrorIs(t, err, ErrInvalidCompactSig)
}

// negateS returns a copy of the compact signature with s replaced by its
// additive inverse modulo the group order.
func negateS(t *testing.T, compact []byte) []byte {
	t.Helper()

	require.Len(t, compact, CompactSigLen)

	flipped := make([]byte, CompactSigLen)
	copy(flipped, compact[:32])

	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(compact[32:])
	require.False(t, overflow)
	s.Negate()

	sBytes := s.Bytes()
	copy(flipped[32:], sBytes[:])

	return flipped
}
