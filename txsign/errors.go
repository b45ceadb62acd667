package txsign

import "errors"

var (
	// ErrMissingInput is returned when the transaction or script hex is
	// absent from a signing request.
	ErrMissingInput = errors.New("missing transaction or script hex")

	// ErrInputTooLarge is returned when the transaction hex exceeds the
	// accepted maximum size.
	ErrInputTooLarge = errors.New("transaction too large")

	// ErrInvalidTransaction is returned when the transaction hex fails
	// to decode or deserialize.
	ErrInvalidTransaction = errors.New("invalid transaction hex")

	// ErrInputIndexOutOfRange is returned when the requested input index
	// does not exist in the transaction.
	ErrInputIndexOutOfRange = errors.New("input index out of range")

	// ErrInvalidScript is returned when the script hex fails to decode.
	ErrInvalidScript = errors.New("invalid script hex")

	// ErrInvalidPrivateKey is returned when a WIF string of plausible
	// length fails to decode. Shorter undecodable strings are treated as
	// "no signing requested" instead.
	ErrInvalidPrivateKey = errors.New("invalid WIF private key")

	// ErrInvalidCompactSig is returned when a compact signature is not
	// exactly 64 bytes or its components are not valid scalars.
	ErrInvalidCompactSig = errors.New("invalid compact signature")
)
