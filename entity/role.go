package entity

import (
	"encoding/json"
	"fmt"
)

// RoleSet packs a user's roles into one column as bitflags. Everybody
// is a buyer; seller and rider are opt-in and gated on admin approval.
type RoleSet uint8

const (
	RoleBuyer  RoleSet = 1 << iota // 1
	RoleSeller                     // 2
	RoleRider                      // 4
)

var roleNames = map[RoleSet]string{
	RoleBuyer:  "buyer",
	RoleSeller: "seller",
	RoleRider:  "rider",
}

var rolesByName = map[string]RoleSet{
	"buyer":  RoleBuyer,
	"seller": RoleSeller,
	"rider":  RoleRider,
}

func (s RoleSet) Has(r RoleSet) bool { return s&r != 0 }

// Normalized guarantees the buyer role is always present.
func (s RoleSet) Normalized() RoleSet { return s | RoleBuyer }

// Names renders the set in a fixed order.
func (s RoleSet) Names() []string {
	out := make([]string, 0, 3)
	for _, r := range []RoleSet{RoleBuyer, RoleSeller, RoleRider} {
		if s.Has(r) {
			out = append(out, roleNames[r])
		}
	}
	return out
}

// ParseRoles builds a set from role names, rejecting unknown ones.
func ParseRoles(names []string) (RoleSet, error) {
	var s RoleSet
	for _, n := range names {
		r, ok := rolesByName[n]
		if !ok {
			return 0, fmt.Errorf("unknown role %q", n)
		}
		s |= r
	}
	return s, nil
}

// MarshalJSON renders the set as a name array, the shape clients send
// at registration.
func (s RoleSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

func (s *RoleSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	parsed, err := ParseRoles(names)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
