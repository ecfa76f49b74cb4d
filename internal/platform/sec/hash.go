// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the fixed bcrypt work factor for account passwords.
//
// Pinned rather than relying on bcrypt.DefaultCost so that a library upgrade
// cannot silently change the hashing cost across deployments.
const PasswordHashCost = 10

// HashPassword hashes a plain-text password using the bcrypt algorithm.
//
// The output embeds the salt and cost, so the same plaintext produces a
// different digest on every call while remaining verifiable.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its hashed version.
//
// A mismatch is reported as false, never as an error, so callers cannot
// accidentally distinguish "wrong password" from other verification paths.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}
