package hdkey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// ParsePath parses a BIP32 derivation path of the form "m/0'/1/2h" into the
// sequence of child indices to derive. A leading "m" or "M" element is
// optional. An apostrophe or "h"/"H" suffix marks a hardened index.
func ParsePath(path string) ([]uint32, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	parts := strings.Split(path, "/")
	if parts[0] == "m" || parts[0] == "M" {
		parts = parts[1:]
	}

	indices := make([]uint32, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: empty path element",
				ErrInvalidPath)
		}

		hardened := false
		switch part[len(part)-1] {
		case '\'', 'h', 'H':
			hardened = true
			part = part[:len(part)-1]
		}

		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid path element "+
				"%q", ErrInvalidPath, part)
		}
		if index >= hdkeychain.HardenedKeyStart {
			return nil, fmt.Errorf("%w: index %d out of range",
				ErrInvalidPath, index)
		}

		if hardened {
			index += hdkeychain.HardenedKeyStart
		}
		indices = append(indices, uint32(index))
	}

	return indices, nil
}
