package models

import (
	"errors"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestProperty4_EqualityFollowsIdentityKey(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := &UserProfile{
			BaseFields: BaseFields{ID: rapid.Int64().Draw(t, "idA")},
			Username:   rapid.String().Draw(t, "usernameA"),
		}
		b := &UserProfile{
			BaseFields: BaseFields{ID: rapid.Int64().Draw(t, "idB")},
			Username:   rapid.String().Draw(t, "usernameB"),
		}

		eq, err := a.Equal(b)
		if err != nil {
			t.Fatalf("Equal() against profile returned error: %v", err)
		}
		want := a.ID == b.ID
		if a.ID == 0 && b.ID == 0 {
			// Distinct unsaved instances never compare equal.
			want = false
		}
		if eq != want {
			t.Fatalf("Equal() = %v for ids %d and %d", eq, a.ID, b.ID)
		}

		// Equal profiles hash equal.
		if a.ID == b.ID && a.Hash() != b.Hash() {
			t.Fatalf("equal profiles hash differently: %d vs %d", a.Hash(), b.Hash())
		}

		// Reflexive regardless of the other fields.
		if self, _ := a.Equal(a); !self {
			t.Fatalf("profile must equal itself")
		}
	})
}

func TestUserProfileEqualIgnoresPlainFields(t *testing.T) {
	a := &UserProfile{BaseFields: BaseFields{ID: 1}, Username: "ada"}
	b := &UserProfile{BaseFields: BaseFields{ID: 1}, Username: "grace", FirstName: "Grace"}

	eq, err := a.Equal(b)
	if err != nil {
		t.Fatalf("Equal() error: %v", err)
	}
	if !eq {
		t.Fatalf("profiles with same id must be equal")
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("profiles with same id must hash equal")
	}
}

func TestUserProfileEqualUnsavedInstances(t *testing.T) {
	a := &UserProfile{Username: "ada"}
	b := &UserProfile{Username: "ada"}

	eq, err := a.Equal(b)
	if err != nil {
		t.Fatalf("Equal() error: %v", err)
	}
	if eq {
		t.Fatal("distinct unsaved profiles must not be equal on a shared zero key")
	}

	self, err := a.Equal(a)
	if err != nil {
		t.Fatalf("Equal() error: %v", err)
	}
	if !self {
		t.Fatal("an unsaved profile must equal itself")
	}
}

func TestUserProfileEqualNotComparable(t *testing.T) {
	profile := &UserProfile{BaseFields: BaseFields{ID: 1}, Username: "ada"}

	operands := []struct {
		name  string
		other any
	}{
		{"string", "ada"},
		{"int", 1},
		{"nil", nil},
		{"nil profile pointer", (*UserProfile)(nil)},
		{"profile value", UserProfile{}},
	}

	for _, tc := range operands {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := profile.Equal(tc.other); !errors.Is(err, ErrNotComparable) {
				t.Errorf("Equal(%s) error = %v, want ErrNotComparable", tc.name, err)
			}
			if _, err := profile.Less(tc.other); !errors.Is(err, ErrNotComparable) {
				t.Errorf("Less(%s) error = %v, want ErrNotComparable", tc.name, err)
			}
		})
	}
}

func TestProperty5_OrderingFollowsJoinTime(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		earlier := time.Unix(int64(rapid.IntRange(0, 1<<30).Draw(t, "earlier")), 0)
		delta := rapid.IntRange(0, 1<<20).Draw(t, "delta")
		later := earlier.Add(time.Duration(delta) * time.Second)

		a := &UserProfile{BaseFields: BaseFields{ID: 1}, Username: "a", JoinedAt: earlier}
		b := &UserProfile{BaseFields: BaseFields{ID: 2}, Username: "b", JoinedAt: later}

		less, err := a.Less(b)
		if err != nil {
			t.Fatalf("Less() error: %v", err)
		}
		if less != earlier.Before(later) {
			t.Fatalf("Less() = %v for %v before %v", less, earlier, later)
		}

		// Antisymmetric over distinct join times.
		reverse, _ := b.Less(a)
		if delta > 0 && less == reverse {
			t.Fatalf("Less() not antisymmetric: both %v", less)
		}
	})
}

func TestUserProfileHashStable(t *testing.T) {
	profile := &UserProfile{BaseFields: BaseFields{ID: 42}, Username: "ada"}

	first := profile.Hash()
	profile.Username = "renamed"
	if second := profile.Hash(); second != first {
		t.Fatalf("Hash() changed after plain field mutation: %d vs %d", first, second)
	}

	other := &UserProfile{BaseFields: BaseFields{ID: 43}}
	if other.Hash() == first {
		t.Fatalf("distinct ids produced identical hashes")
	}
}
