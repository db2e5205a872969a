/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package common

import (
	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/sethvargo/go-password/password"
)

const (
	PasswordSymbolsCount          = 0
	PasswordLowercaseOnly         = false
	PasswordAllowRepeatCharacters = true
)

// IDGenerator produces globally unique, hyphen-delimited tokens (e.g. UUIDs).
// Implementations must be safe for concurrent use.
type IDGenerator interface {
	Generate() string
}

// PasswordGenerator produces a credential of exactly the requested length.
// A non-positive length must fail with a NotValid error.
type PasswordGenerator interface {
	Generate(length int) (string, error)
}

type IDGeneratorFunc func() string

func (f IDGeneratorFunc) Generate() string {
	return f()
}

type PasswordGeneratorFunc func(length int) (string, error)

func (f PasswordGeneratorFunc) Generate(length int) (string, error) {
	return f(length)
}

// UUIDGenerator emits random (version 4) UUIDs
type UUIDGenerator struct{}

func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// RandomPasswordGenerator emits mixed-case alphanumeric passwords, a third of
// which are digits.
type RandomPasswordGenerator struct{}

func (RandomPasswordGenerator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", errors.NotValidf("password length %d", length)
	}

	return password.Generate(length, length/3, PasswordSymbolsCount, PasswordLowercaseOnly, PasswordAllowRepeatCharacters)
}
