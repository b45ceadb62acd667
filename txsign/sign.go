// Package txsign implements the transaction-input signing pipeline: request
// validation, transaction and script decoding, legacy sighash computation,
// script classification, optional ECDSA signing with compact and DER
// artifacts, and re-serialization of the signed transaction.
package txsign

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/santos177/bitcointool/keys"
)

const (
	// MaxTxBytes is the largest accepted transaction size of 100 KB.
	MaxTxBytes = 1024 * 100

	// MaxTxHexLen is MaxTxBytes in hex characters.
	MaxTxHexLen = MaxTxBytes * 2
)

// Request carries the parameters of one signing invocation.
type Request struct {
	// TxHex is the hex-encoded transaction to sign.
	TxHex string

	// ScriptHex is the hex-encoded previous output script of the input
	// being signed.
	ScriptHex string

	// InputIndex designates the transaction input the signature hash is
	// computed for.
	InputIndex int

	// SigHashType selects which parts of the transaction the signature
	// commits to.
	SigHashType txscript.SigHashType

	// Amount is the value of the previous output in satoshis. It is
	// unused by the legacy signature hash but kept for the request
	// surface.
	Amount int64

	// PrivKeyWIF optionally holds the WIF-encoded private key to sign
	// with. If empty, or if it is a short string that fails to decode,
	// the pipeline computes diagnostics only.
	PrivKeyWIF string

	// Params identifies the active network.
	Params *chaincfg.Params
}

// Result reports all artifacts of one pipeline run. The signature fields
// are populated only when signing took place.
type Result struct {
	// SigHash is the computed 32-byte signature hash in computation
	// order. Its String method renders the byte-reversed display form.
	SigHash chainhash.Hash

	// ScriptClass is the diagnostic classification of the script.
	ScriptClass txscript.ScriptClass

	// Skipped reports that no usable private key was supplied and
	// signing was not attempted.
	Skipped bool

	// Warning carries a non-fatal signing problem, such as an
	// unsupported script class. The pipeline still succeeds.
	Warning string

	// CompactSig is the 64-byte r||s signature.
	CompactSig []byte

	// DERSig is the DER-encoded signature with the sighash type byte
	// appended.
	DERSig []byte

	// SignedTxHex is the re-serialized transaction, with the signature
	// script embedded when signing succeeded for a supported script
	// class. Empty when signing was skipped.
	SignedTxHex string
}

// Sign runs the signing pipeline for the given request. Validation and
// decoding failures abort with an error; a failed best-effort signing step
// is reported through Result.Warning instead. Decoded private key material
// is zeroed on every exit path.
func Sign(req *Request) (*Result, error) {
	if req.TxHex == "" || req.ScriptHex == "" {
		return nil, ErrMissingInput
	}
	if len(req.TxHex) > MaxTxHexLen {
		return nil, fmt.Errorf("%w: max %d bytes", ErrInputTooLarge,
			MaxTxBytes)
	}

	rawTx, err := hex.DecodeString(req.TxHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}

	tx := &wire.MsgTx{}
	if err := tx.Deserialize(bytes.NewReader(rawTx)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}

	if req.InputIndex < 0 || req.InputIndex >= len(tx.TxIn) {
		return nil, fmt.Errorf("%w: index %d, %d inputs",
			ErrInputIndexOutOfRange, req.InputIndex, len(tx.TxIn))
	}

	script, err := hex.DecodeString(req.ScriptHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}

	sigHash, err := txscript.CalcSignatureHash(
		script, req.SigHashType, tx, req.InputIndex,
	)
	if err != nil {
		return nil, fmt.Errorf("computing signature hash: %w", err)
	}

	result := &Result{
		ScriptClass: txscript.GetScriptClass(script),
	}
	copy(result.SigHash[:], sigHash)

	log.Debugf("Sighash for input %d (%v): %v", req.InputIndex,
		result.ScriptClass, result.SigHash)

	privKey, skip, err := decodeSigningKey(req.PrivKeyWIF, req.Params)
	if err != nil {
		return nil, err
	}
	if skip {
		result.Skipped = true
		return result, nil
	}
	defer privKey.Zero()

	// Only pay-to-pubkey-hash scripts get a full signature script
	// embedded. Other classes still produce the detached signature
	// artifacts below, with a warning.
	if result.ScriptClass == txscript.PubKeyHashTy {
		sigScript, err := txscript.SignatureScript(
			tx, req.InputIndex, script, req.SigHashType, privKey,
			true,
		)
		if err != nil {
			result.Warning = fmt.Sprintf("signing failed: %v", err)
		} else {
			tx.TxIn[req.InputIndex].SignatureScript = sigScript
		}
	} else {
		result.Warning = fmt.Sprintf("script class %v not supported "+
			"for signing, signature not embedded",
			result.ScriptClass)
	}

	// DER signature with the sighash type byte appended, as it would
	// appear in a signature script.
	derSig, err := txscript.RawTxInSignature(
		tx, req.InputIndex, script, req.SigHashType, privKey,
	)
	if err != nil {
		return nil, fmt.Errorf("creating signature: %w", err)
	}
	result.DERSig = derSig

	// The compact form is the fixed 64-byte r||s encoding; SignCompact
	// prepends a recovery byte which is stripped here.
	compact := ecdsa.SignCompact(privKey, result.SigHash[:], true)
	result.CompactSig = compact[1:]

	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serializing transaction: %w", err)
	}
	result.SignedTxHex = hex.EncodeToString(buf.Bytes())

	return result, nil
}

// decodeSigningKey applies the tool's WIF handling rules: an empty string
// means no signing was requested; a string that fails to decode is an error
// only if it is long enough to plausibly be WIF, otherwise signing is
// silently skipped.
func decodeSigningKey(wifStr string, params *chaincfg.Params) (
	*btcec.PrivateKey, bool, error) {

	if wifStr == "" {
		return nil, true, nil
	}

	wif, err := btcutil.DecodeWIF(wifStr)
	if err != nil || !wif.IsForNet(params) {
		if len(wifStr) > keys.MinWIFLen {
			return nil, false, ErrInvalidPrivateKey
		}
		return nil, true, nil
	}

	return wif.PrivKey, false, nil
}
