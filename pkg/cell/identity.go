package cell

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IdentityScheme selects how identity tokens are minted for wrapped values.
type IdentityScheme int32

const (
	// SerialIdentity numbers values from a process-wide counter.
	SerialIdentity IdentityScheme = iota
	// UUIDIdentity gives every value a random UUID.
	UUIDIdentity
)

var (
	scheme atomic.Int32
	serial atomic.Uint64
)

// SetIdentityScheme changes the scheme for values wrapped from now on.
func SetIdentityScheme(s IdentityScheme) {
	scheme.Store(int32(s))
}

func CurrentIdentityScheme() IdentityScheme {
	return IdentityScheme(scheme.Load())
}

func ParseIdentityScheme(name string) (IdentityScheme, error) {
	switch name {
	case "", "serial":
		return SerialIdentity, nil
	case "uuid":
		return UUIDIdentity, nil
	}
	return SerialIdentity, fmt.Errorf("unknown identity scheme %q", name)
}

func (s IdentityScheme) String() string {
	switch s {
	case SerialIdentity:
		return "serial"
	case UUIDIdentity:
		return "uuid"
	}
	return "IdentityScheme(" + strconv.Itoa(int(s)) + ")"
}

func mintToken() string {
	if CurrentIdentityScheme() == UUIDIdentity {
		return uuid.NewString()
	}
	return strconv.FormatUint(serial.Add(1), 10)
}
