// Package domain defines the identity types shared across the ledger.
//
// A Principal is an opaque caller identity: a 20-byte address rendered as
// 0x-prefixed lowercase hex. The ledger never looks inside an address; it
// only compares them and rejects the zero value where a real principal is
// required.
package domain

import (
	"encoding/hex"
	"strings"

	dErrors "fisc/pkg/domain-errors"
)

// AddressLength is the number of bytes in a principal address.
const AddressLength = 20

// Principal is an opaque unique caller identity. The zero value ("") and
// the all-zero address are both treated as the null principal.
type Principal string

// ZeroPrincipal is the null principal. It is never a valid caller or
// recipient.
const ZeroPrincipal Principal = "0x0000000000000000000000000000000000000000"

// ParsePrincipal validates and normalizes an address string into a
// Principal. Input must be 0x-prefixed hex of exactly AddressLength bytes;
// case is normalized to lowercase so equality is plain string equality.
func ParsePrincipal(s string) (Principal, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidAddress, "principal is required")
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", dErrors.New(dErrors.CodeInvalidAddress, "principal must be 0x-prefixed hex")
	}
	body := strings.ToLower(s[2:])
	if len(body) != AddressLength*2 {
		return "", dErrors.Newf(dErrors.CodeInvalidAddress, "principal must be %d hex characters", AddressLength*2)
	}
	if _, err := hex.DecodeString(body); err != nil {
		return "", dErrors.New(dErrors.CodeInvalidAddress, "principal contains non-hex characters")
	}
	return Principal("0x" + body), nil
}

// MustParsePrincipal is ParsePrincipal for tests and static configuration;
// it panics on invalid input.
func MustParsePrincipal(s string) Principal {
	p, err := ParsePrincipal(s)
	if err != nil {
		panic(err)
	}
	return p
}

// IsZero reports whether p is the null principal (unset or all-zero).
func (p Principal) IsZero() bool {
	return p == "" || p == ZeroPrincipal
}

func (p Principal) String() string {
	return string(p)
}
