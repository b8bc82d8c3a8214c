package domain

import (
	"strconv"
	"strings"
)

// Actor is the caller identity for one request.
//
// It is derived from the x-branch-id and x-role headers, which nobody verifies.
// This is a placeholder until a real authentication layer exists and must never
// be treated as a trust boundary.
type Actor struct {
	Role     Role
	BranchID *uint
}

// IsDG reports whether the actor bypasses branch scoping
func (a Actor) IsDG() bool {
	return a.Role == RoleDGAdmin
}

// Branch returns the actor's branch id, if it has a usable one
func (a Actor) Branch() (uint, bool) {
	if a.BranchID == nil || *a.BranchID == 0 {
		return 0, false
	}
	return *a.BranchID, true
}

// ParseActor builds an Actor from raw header values
func ParseActor(branchID, role string) Actor {
	return Actor{
		Role:     ParseRole(role),
		BranchID: ParseBranchID(branchID),
	}
}

// ParseBranchID returns nil for absent or non-numeric input
func ParseBranchID(raw string) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return nil
	}
	id := uint(n)
	return &id
}

// ParseRole matches raw case-insensitively against the known roles.
// Anything else, including an empty value, falls back to AGENT.
func ParseRole(raw string) Role {
	switch r := Role(strings.ToUpper(strings.TrimSpace(raw))); r {
	case RoleDGAdmin, RoleAgencyManager, RoleAgent:
		return r
	}
	return RoleAgent
}
