package models

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// UserProfile is a stored user account. Plain fields are read and written
// freely; JoinedAt is stamped once at creation and never updated afterwards.
// A single profile is not safe for concurrent use.
type UserProfile struct {
	BaseFields
	FirstName string `validate:"max=50"`
	LastName  string `validate:"max=50"`
	Username  string `validate:"required,max=100"`
	Email     string `validate:"omitempty,email"`
	JoinedAt  time.Time
	Age       *int `validate:"omitempty,gte=0"`

	adult *bool
}

// FullName joins the non-empty name parts with a single space. When both
// parts are empty it falls back to Username. Recomputed on every call.
func (p *UserProfile) FullName() string {
	var parts []string
	if p.FirstName != "" {
		parts = append(parts, p.FirstName)
	}
	if p.LastName != "" {
		parts = append(parts, p.LastName)
	}
	if len(parts) == 0 {
		return p.Username
	}
	return strings.Join(parts, " ")
}

// IsAdult reports whether Age is set and at least 18. The first call
// computes the flag; later calls return the cached value even if Age
// changed since. Callers own invalidation via InvalidateAdultCache.
func (p *UserProfile) IsAdult() bool {
	if p.adult == nil {
		v := p.Age != nil && *p.Age >= 18
		p.adult = &v
	}
	return *p.adult
}

// InvalidateAdultCache drops the cached adult flag so the next IsAdult
// call recomputes it from the current Age.
func (p *UserProfile) InvalidateAdultCache() {
	p.adult = nil
}

// Fields returns a lazy sequence over the six plain field values in
// declaration order: FirstName, LastName, Username, Email, JoinedAt and
// the Age value, or nil when Age is unset. Each call starts over from
// the first field.
func (p *UserProfile) Fields() iter.Seq[any] {
	return func(yield func(any) bool) {
		if !yield(p.FirstName) {
			return
		}
		if !yield(p.LastName) {
			return
		}
		if !yield(p.Username) {
			return
		}
		if !yield(p.Email) {
			return
		}
		if !yield(p.JoinedAt) {
			return
		}
		if p.Age != nil {
			yield(*p.Age)
			return
		}
		yield(nil)
	}
}

// String returns the human-readable form: Username when non-empty,
// otherwise the full name.
func (p *UserProfile) String() string {
	if p.Username != "" {
		return p.Username
	}
	return p.FullName()
}

// GoString returns the debug form used in logs and failure messages.
func (p *UserProfile) GoString() string {
	return fmt.Sprintf("UserProfile(id=%d, username=%s)", p.ID, p.Username)
}
