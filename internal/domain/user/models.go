package user

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// User is the admin-facing read model of a product user.
type User struct {
	ID                    int64      `json:"_id,string"`
	Email                 string     `json:"email"`
	Username              string     `json:"username"`
	WalletAddress         *string    `json:"walletAddress,omitempty"`
	Country               *string    `json:"country,omitempty"`
	Status                string     `json:"status,omitempty"`
	ReferralCode          *string    `json:"referralCode,omitempty"`
	ReferredBy            *Referrer  `json:"referredBy,omitempty"`
	ReferralCodeUsed      *string    `json:"referralCodeUsed,omitempty"`
	TotalBalance          float64    `json:"totalBalance"`
	SavingsBalance        float64    `json:"savingsBalance"`
	CardBalance           float64    `json:"cardBalance"`
	WalletBalance         float64    `json:"walletBalance"`
	LastActivityTimestamp *time.Time `json:"lastActivityTimestamp,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
}

// Referrer identifies the user whose code was used at signup.
type Referrer struct {
	ID           int64  `json:"id,string"`
	Username     string `json:"username"`
	ReferralCode string `json:"referralCode"`
}

// Balance is one currency bucket of a user's holdings.
type Balance struct {
	Currency    string  `json:"currency"`
	Available   float64 `json:"available"`
	Pending     float64 `json:"pending"`
	Total       float64 `json:"total"`
	AccountType string  `json:"accountType,omitempty"`
}

// ListFilters are the search/sort/pagination parameters of the users table.
type ListFilters struct {
	Search string
	Sort   string
	Order  string
	Page   int
	Limit  int
}

// ListMeta is the pagination envelope for user listings.
type ListMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
