package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
	FirstName string `json:"first_name" validate:"required,min=2"`
	LastName  string `json:"last_name" validate:"required,min=2"`
	Role      string `json:"role" validate:"required,oneof=EMPLOYER EMPLOYEE PROVIDER HMO ADMIN"`
	Phone     string `json:"phone" validate:"omitempty,min=7,max=15"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID              uuid.UUID                `json:"id"`
	Email           string                   `json:"email"`
	FirstName       string                   `json:"first_name"`
	LastName        string                   `json:"last_name"`
	FullName        string                   `json:"full_name"`
	Role            string                   `json:"role"`
	Phone           string                   `json:"phone,omitempty"`
	EmployerProfile *EmployerProfileResponse `json:"employer_profile,omitempty"`
	EmployeeProfile *EmployeeProfileResponse `json:"employee_profile,omitempty"`
	ProviderProfile *ProviderProfileResponse `json:"provider_profile,omitempty"`
	HMOProfile      *HMOProfileResponse      `json:"hmo_profile,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// RegisterResponse carries the created profile plus an initial token pair so
// a fresh registration lands signed in.
type RegisterResponse struct {
	User   *UserResponse  `json:"user"`
	Tokens *TokenResponse `json:"tokens"`
}
