package domain

import "time"

// Company is a client workspace holding Profit First accounts and cadence settings.
type Company struct {
	CompanyID   string     `json:"id"`
	FirmID      *string    `json:"firmId,omitempty"` // nil for companies outside any firm
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	IsDemo      bool       `json:"isDemo"`
	ActiveSince *time.Time `json:"activeSince,omitempty"`
}

// FirmKey returns the firm id or an empty string.
func (c Company) FirmKey() string {
	if c.FirmID == nil {
		return ""
	}
	return *c.FirmID
}

// Firm is an accounting or bookkeeping practice owning several companies.
type Firm struct {
	FirmID string `json:"id"`
	Name   string `json:"name"`
}

// CompanyMembership grants a user direct access to one company.
type CompanyMembership struct {
	CompanyID   string       `json:"companyId"`
	UserID      string       `json:"userId"`
	AccessLevel PlatformRole `json:"accessLevel"`
	InvitedAt   time.Time    `json:"invitedAt"`
	AcceptedAt  *time.Time   `json:"acceptedAt,omitempty"`
}

// FirmMembership grants a user access to every company of a firm.
type FirmMembership struct {
	FirmID     string       `json:"firmId"`
	UserID     string       `json:"userId"`
	Role       PlatformRole `json:"role"`
	InvitedAt  time.Time    `json:"invitedAt"`
	AcceptedAt *time.Time   `json:"acceptedAt,omitempty"`
}
