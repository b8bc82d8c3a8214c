package domain

import "time"

// Role is the label an actor acts under
type Role string

const (
	RoleDGAdmin       Role = "DG_ADMIN"
	RoleAgencyManager Role = "AGENCY_MANAGER"
	RoleAgent         Role = "AGENT"
)

// ClientStatus is the lifecycle state of a client. ACTIVE -> INACTIVE is one-way.
type ClientStatus string

const (
	ClientActive   ClientStatus = "ACTIVE"
	ClientInactive ClientStatus = "INACTIVE"
)

// PolicyType is the insured product line
type PolicyType string

const (
	PolicyTypeAuto   PolicyType = "AUTO"
	PolicyTypeSante  PolicyType = "SANTE"
	PolicyTypeMaison PolicyType = "MAISON"
	PolicyTypeVoyage PolicyType = "VOYAGE"
	PolicyTypeAutre  PolicyType = "AUTRE"
)

// Valid reports whether t is one of the persisted policy types
func (t PolicyType) Valid() bool {
	switch t {
	case PolicyTypeAuto, PolicyTypeSante, PolicyTypeMaison, PolicyTypeVoyage, PolicyTypeAutre:
		return true
	}
	return false
}

// PolicyStatus is the lifecycle state of a policy
type PolicyStatus string

const (
	PolicyActive   PolicyStatus = "ACTIVE"
	PolicyExpired  PolicyStatus = "EXPIRED"
	PolicyCanceled PolicyStatus = "CANCELED"
)

// Valid reports whether s is one of the persisted policy statuses
func (s PolicyStatus) Valid() bool {
	switch s {
	case PolicyActive, PolicyExpired, PolicyCanceled:
		return true
	}
	return false
}

// ExpiringWindow is how far ahead the overview looks for policies ending soon
const ExpiringWindow = 30 * 24 * time.Hour

// ExpiringSoonLimit caps the expiring-soon list of the overview
const ExpiringSoonLimit = 20
