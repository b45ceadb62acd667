// Package hdkey orchestrates BIP32 hierarchical key derivation on top of the
// btcutil hdkeychain primitives: master key generation, path derivation over
// one or many paths, node decoding for display, and re-serialization of an
// extended key under another network's version bytes.
package hdkey

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/santos177/bitcointool/keys"
)

var (
	// ErrInvalidKey is returned when an extended key cannot be decoded or
	// belongs to a different network than the active one.
	ErrInvalidKey = errors.New("invalid extended key")

	// ErrInvalidPath is returned when a derivation path cannot be parsed.
	ErrInvalidPath = errors.New("invalid derivation path")

	// ErrDerivationFailed is returned when child key derivation fails for
	// an otherwise well-formed path, for example when a derived key falls
	// outside the valid range for secp256k1.
	ErrDerivationFailed = errors.New("deriving child key failed")
)

// GenMaster generates a fresh master extended private key for the given
// network from a cryptographically random seed. The seed is zeroed before
// returning.
func GenMaster(params *chaincfg.Params) (*hdkeychain.ExtendedKey, error) {
	seed, err := hdkeychain.GenerateSeed(hdkeychain.RecommendedSeedLen)
	if err != nil {
		return nil, fmt.Errorf("generating seed: %w", err)
	}
	defer keys.Zero(seed)

	master, err := hdkeychain.NewMaster(seed, params)
	if err != nil {
		return nil, fmt.Errorf("generating master key: %w", err)
	}

	return master, nil
}

// Derive parses extKey, verifies it belongs to the given network, and
// derives the child node identified by path.
func Derive(extKey, path string,
	params *chaincfg.Params) (*hdkeychain.ExtendedKey, error) {

	key, err := hdkeychain.NewKeyFromString(extKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if !key.IsForNet(params) {
		return nil, fmt.Errorf("%w: key is for a different network",
			ErrInvalidKey)
	}

	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	log.Debugf("Deriving path %s (%d children)", path, len(indices))

	node := key
	for _, index := range indices {
		node, err = node.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("%w: %v",
				ErrDerivationFailed, err)
		}
	}

	return node, nil
}

// DeriveResult is the outcome of deriving a single path during DeriveAll.
type DeriveResult struct {
	// Path is the concrete derivation path that was attempted.
	Path string

	// Key is the derived node, nil if derivation failed.
	Key *hdkeychain.ExtendedKey

	// Err is the per-path derivation error, nil on success.
	Err error
}

// DeriveOption modifies the behavior of DeriveAll.
type DeriveOption func(*deriveConfig)

type deriveConfig struct {
	continueOnError bool
}

// WithContinueOnError makes DeriveAll record per-path failures and keep
// going instead of aborting on the first one.
func WithContinueOnError() DeriveOption {
	return func(cfg *deriveConfig) {
		cfg.continueOnError = true
	}
}

// DeriveAll derives every path in sequence order from the given extended
// key. The default policy aborts on the first failing path and returns its
// error together with the results gathered so far. With
// WithContinueOnError, all paths are attempted and failures are reported
// per element instead.
func DeriveAll(extKey string, paths []string, params *chaincfg.Params,
	opts ...DeriveOption) ([]DeriveResult, error) {

	var cfg deriveConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make([]DeriveResult, 0, len(paths))
	for _, path := range paths {
		node, err := Derive(extKey, path, params)
		results = append(results, DeriveResult{
			Path: path,
			Key:  node,
			Err:  err,
		})

		if err != nil && !cfg.continueOnError {
			return results, err
		}
	}

	return results, nil
}

// Retarget re-serializes an extended key under the version bytes of the
// target network. Private keys yield both the re-encoded private key and
// its public counterpart; public keys yield only the latter.
func Retarget(extKey string,
	target *chaincfg.Params) (xprv, xpub string, err error) {

	key, err := hdkeychain.NewKeyFromString(extKey)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	if !key.IsPrivate() {
		pubKey, err := key.CloneWithVersion(target.HDPublicKeyID[:])
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		return "", pubKey.String(), nil
	}

	privKey, err := key.CloneWithVersion(target.HDPrivateKeyID[:])
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	neutered, err := privKey.Neuter()
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return privKey.String(), neutered.String(), nil
}
