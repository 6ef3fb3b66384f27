package models

import "time"

// Company represents a company row together with its demo flag.
type Company struct {
	CompanyID   string     `db:"company_id"`
	FirmID      *string    `db:"firm_id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	IsDemo      bool       `db:"is_demo"`
	ActiveSince *time.Time `db:"active_since"`
}

// CompanyMember is a row of company_members.
type CompanyMember struct {
	CompanyID   string     `db:"company_id"`
	UserID      string     `db:"user_id"`
	AccessLevel string     `db:"access_level"`
	InvitedAt   time.Time  `db:"invited_at"`
	AcceptedAt  *time.Time `db:"accepted_at"`
}

// FirmMember is a row of firm_members.
type FirmMember struct {
	FirmID     string     `db:"firm_id"`
	UserID     string     `db:"user_id"`
	Role       string     `db:"role"`
	InvitedAt  time.Time  `db:"invited_at"`
	AcceptedAt *time.Time `db:"accepted_at"`
}
