package hdkey

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// NodeInfo holds the decoded fields of an extended key node for display.
type NodeInfo struct {
	// Depth is the node's depth in the derivation tree, zero for a
	// master key.
	Depth uint8

	// ChildIndex is the index this node was derived with.
	ChildIndex uint32

	// ParentFingerprint identifies the node's parent key.
	ParentFingerprint uint32

	// IsPrivate reports whether the node carries private key material.
	IsPrivate bool

	// ExtendedKey is the node's own serialization.
	ExtendedKey string

	// XPub is the public serialization of the node.
	XPub string

	// PubKeyHex is the compressed EC public key in hex.
	PubKeyHex string

	// WIF is the node's private key in WIF encoding, empty for public
	// nodes.
	WIF string
}

// DescribeNode decodes an extended key of the given network into its
// display fields. Private key material touched along the way is zeroed
// before returning.
func DescribeNode(extKey string, params *chaincfg.Params) (*NodeInfo, error) {
	key, err := hdkeychain.NewKeyFromString(extKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if !key.IsForNet(params) {
		return nil, fmt.Errorf("%w: key is for a different network",
			ErrInvalidKey)
	}

	return describe(key, params)
}

func describe(key *hdkeychain.ExtendedKey,
	params *chaincfg.Params) (*NodeInfo, error) {

	info := &NodeInfo{
		Depth:             key.Depth(),
		ChildIndex:        key.ChildIndex(),
		ParentFingerprint: key.ParentFingerprint(),
		IsPrivate:         key.IsPrivate(),
		ExtendedKey:       key.String(),
	}

	pubKey, err := key.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	info.PubKeyHex = hex.EncodeToString(pubKey.SerializeCompressed())

	if key.IsPrivate() {
		neutered, err := key.Neuter()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		info.XPub = neutered.String()

		privKey, err := key.ECPrivKey()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		wif, err := btcutil.NewWIF(privKey, params, true)
		privKey.Zero()
		if err != nil {
			return nil, fmt.Errorf("encoding WIF: %w", err)
		}
		info.WIF = wif.String()
	} else {
		info.XPub = info.ExtendedKey
	}

	return info, nil
}

// DescribeDerived is like DescribeNode but for a node already derived in
// memory, avoiding a serialize/reparse round trip.
func DescribeDerived(key *hdkeychain.ExtendedKey,
	params *chaincfg.Params) (*NodeInfo, error) {

	return describe(key, params)
}
