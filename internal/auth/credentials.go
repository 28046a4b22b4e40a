// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/vestra-app/vestra/internal/config"
)

// ErrInvalidCredentials is returned when username or password verification
// fails. The same error covers both cases so a caller cannot distinguish an
// unknown user from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// bcryptCost is the cost factor used when hashing new passwords.
const bcryptCost = 12

// Authenticator verifies login credentials against the configured admin
// account and issues tokens on success.
type Authenticator struct {
	username     string
	passwordHash string
	jwt          *JWTManager
}

// NewAuthenticator wires credential verification to token issuance.
func NewAuthenticator(cfg *config.SecurityConfig, jwt *JWTManager) *Authenticator {
	return &Authenticator{
		username:     cfg.AdminUsername,
		passwordHash: cfg.AdminPasswordHash,
		jwt:          jwt,
	}
}

// Login verifies the credentials and returns a signed token. The bcrypt
// comparison runs even for unknown usernames to keep response timing
// uniform.
func (a *Authenticator) Login(username, password string) (string, error) {
	err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password))
	if err != nil || username != a.username {
		return "", ErrInvalidCredentials
	}
	return a.jwt.GenerateToken(username, "admin")
}

// HashPassword hashes a plaintext password for storage in configuration.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
