// Package keys implements the thin key and address operations of the tool:
// public key and address derivation from a WIF private key, address
// derivation from a raw public key, and fresh key generation. All private
// key material handled here is zeroed before the functions return.
package keys

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// MinWIFLen is the minimum accepted length for a WIF-encoded private key.
// Real WIF strings for compressed and uncompressed keys are 51 or 52
// characters; anything shorter is rejected before any cryptographic call.
const MinWIFLen = 50

var (
	// ErrInvalidPrivateKey is returned for private keys that are too
	// short to be WIF, fail to decode, or belong to another network.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidPublicKey is returned for public keys that are not valid
	// hex or do not parse as a secp256k1 point.
	ErrInvalidPublicKey = errors.New("invalid public key")
)

// Addrs bundles the three standard address encodings of a public key.
type Addrs struct {
	// P2PKH is the legacy pay-to-pubkey-hash address.
	P2PKH string

	// NestedP2WPKH is the script-hash-wrapped segwit address
	// (P2SH-P2WPKH).
	NestedP2WPKH string

	// P2WPKH is the native segwit (bech32) address.
	P2WPKH string
}

// KeyInfo is the result of deriving the public side of a key.
type KeyInfo struct {
	// PubKeyHex is the compressed public key in hex.
	PubKeyHex string

	Addrs
}

// PubFromPriv decodes a WIF private key for the given network and returns
// its compressed public key together with the three standard address
// encodings. The decoded private key is zeroed before returning.
func PubFromPriv(wifStr string, params *chaincfg.Params) (*KeyInfo, error) {
	if len(wifStr) < MinWIFLen {
		return nil, fmt.Errorf("%w: must be WIF encoded",
			ErrInvalidPrivateKey)
	}

	wif, err := btcutil.DecodeWIF(wifStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	if !wif.IsForNet(params) {
		return nil, fmt.Errorf("%w: key is for a different network",
			ErrInvalidPrivateKey)
	}
	defer wif.PrivKey.Zero()

	return describePubKey(wif.PrivKey.PubKey(), params)
}

// AddressesFromPub parses a hex-encoded public key and returns its three
// standard address encodings.
func AddressesFromPub(pubHex string,
	params *chaincfg.Params) (*KeyInfo, error) {

	rawPub, err := hex.DecodeString(pubHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	pubKey, err := btcec.ParsePubKey(rawPub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	return describePubKey(pubKey, params)
}

// GenKey generates a fresh private key for the given network and returns
// it in WIF and raw hex form.
func GenKey(params *chaincfg.Params) (wifStr, hexStr string, err error) {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return "", "", fmt.Errorf("generating key: %w", err)
	}
	defer privKey.Zero()

	wif, err := btcutil.NewWIF(privKey, params, true)
	if err != nil {
		return "", "", fmt.Errorf("encoding WIF: %w", err)
	}

	rawKey := privKey.Serialize()
	hexStr = hex.EncodeToString(rawKey)
	Zero(rawKey)

	return wif.String(), hexStr, nil
}

// describePubKey derives the P2PKH, P2SH-P2WPKH and P2WPKH addresses of a
// public key. All three are derived from the hash of the compressed
// serialization.
func describePubKey(pubKey *btcec.PublicKey,
	params *chaincfg.Params) (*KeyInfo, error) {

	serialized := pubKey.SerializeCompressed()
	pkHash := btcutil.Hash160(serialized)

	p2pkh, err := btcutil.NewAddressPubKeyHash(pkHash, params)
	if err != nil {
		return nil, fmt.Errorf("deriving p2pkh address: %w", err)
	}

	p2wpkh, err := btcutil.NewAddressWitnessPubKeyHash(pkHash, params)
	if err != nil {
		return nil, fmt.Errorf("deriving p2wpkh address: %w", err)
	}

	// The nested form wraps the witness program in a standard script
	// hash.
	witnessScript, err := txscript.PayToAddrScript(p2wpkh)
	if err != nil {
		return nil, fmt.Errorf("building witness script: %w", err)
	}
	nested, err := btcutil.NewAddressScriptHash(witnessScript, params)
	if err != nil {
		return nil, fmt.Errorf("deriving p2sh-p2wpkh address: %w", err)
	}

	return &KeyInfo{
		PubKeyHex: hex.EncodeToString(serialized),
		Addrs: Addrs{
			P2PKH:        p2pkh.EncodeAddress(),
			NestedP2WPKH: nested.EncodeAddress(),
			P2WPKH:       p2wpkh.EncodeAddress(),
		},
	}, nil
}
