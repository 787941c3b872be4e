package models

import (
	"encoding/binary"
	"errors"
	"hash/fnv"
)

// ErrNotComparable is returned when a comparison operand is not a
// *UserProfile. Callers decide whether that is fatal.
var ErrNotComparable = errors.New("operand is not a user profile")

// Equal reports whether other is a profile with the same identity key.
// Only the key participates; differing plain fields do not break equality.
// Profiles that were never persisted (key still zero) are equal only to
// themselves, a shared zero key does not make two records the same.
func (p *UserProfile) Equal(other any) (bool, error) {
	o, ok := other.(*UserProfile)
	if !ok || o == nil {
		return false, ErrNotComparable
	}
	if p.ID == 0 && o.ID == 0 {
		return p == o, nil
	}
	return p.ID == o.ID, nil
}

// Less orders profiles by JoinedAt ascending, earliest join first.
func (p *UserProfile) Less(other any) (bool, error) {
	o, ok := other.(*UserProfile)
	if !ok || o == nil {
		return false, ErrNotComparable
	}
	return p.JoinedAt.Before(o.JoinedAt), nil
}

// Hash returns a 64-bit FNV-1a hash of the identity key. Profiles that
// compare equal hash equal.
func (p *UserProfile) Hash() uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(p.ID))
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}
