package teamcore

import (
	"encoding/json"
	"fmt"
)

// Role is a player's broad positional role, a 2-bit field distinct from the
// finer-grained formation Position.
type Role struct {
	Enum

	// ID as it appears in the ROM.
	ID byte
}

// Roles is an enumeration of the possible player roles.
var Roles = []*Role{
	{Enum{"goalkeeper"}, 0},
	{Enum{"defender"}, 1},
	{Enum{"midfielder"}, 2},
	{Enum{"forward"}, 3},
}

// Named roles.
var (
	RoleGoalkeeper = Roles[0]
	RoleDefender   = Roles[1]
	RoleMidfielder = Roles[2]
	RoleForward    = Roles[3]
)

// RoleByID returns the Role for a given ID, or an Unknown placeholder if
// out of range.
func RoleByID(id byte) *Role {
	if int(id) < len(Roles) {
		return Roles[id]
	}
	return &Role{UnknownEnum(id), id}
}

// RoleFromName resolves a canonical role name.
func RoleFromName(name string) (*Role, error) {
	for _, r := range Roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("teamcore: unknown role name %q", name)
}

// RoleFromInt resolves a role by its underlying ID, 0..3.
func RoleFromInt(id int) (*Role, error) {
	if id < 0 || id >= len(Roles) {
		return nil, fmt.Errorf("teamcore: role ID %d out of range 0..%d", id, len(Roles)-1)
	}
	return Roles[id], nil
}

// MarshalJSON emits the canonical name.
func (r *Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Name)
}

// UnmarshalJSON accepts either the canonical name or the underlying int ID.
func (r *Role) UnmarshalJSON(data []byte) error {
	name, isName, num, isNum, err := decodeNameOrInt(data)
	if err != nil {
		return err
	}

	var resolved *Role
	if isName {
		resolved, err = RoleFromName(name)
	} else if isNum {
		resolved, err = RoleFromInt(num)
	}
	if err != nil {
		return err
	}

	*r = *resolved
	return nil
}
