// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity entity, representing one registered company
// contact. Email is the login identifier and is unique across all accounts
// (matched case-sensitively).
type Account struct {
	ID           uuid.UUID // Immutable identifier, generated at creation (UUIDv7: time + random component).
	Email        string    // Login identifier, unique across all accounts.
	PasswordHash string    // bcrypt hash of the password. Never leaves this package through Profile.
	Name         string    // Contact person's display name.
	Phone        string    // Contact phone number.
	Role         Role      // Fixed at registration, drives dashboard routing and route authorization.
	CompanyName  string    // Optional, present for buyer/seller accounts.
	GST          string    // Optional GST registration number for buyer/seller accounts.
	CreatedAt    time.Time // Immutable creation timestamp.
}

// Profile is the sanitized, externally visible view of an Account.
// It deliberately has no password hash field, so handlers cannot leak one.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Role        Role      `json:"role"`
	CompanyName string    `json:"companyName,omitempty"`
	GST         string    `json:"gst,omitempty"`
}

// Profile strips the credential material from the account.
func (a *Account) Profile() *Profile {
	return &Profile{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		Phone:       a.Phone,
		Role:        a.Role,
		CompanyName: a.CompanyName,
		GST:         a.GST,
	}
}
