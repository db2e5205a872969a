/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package common

import (
	"regexp"

	emailverifier "github.com/AfterShip/email-verifier"
	"github.com/inhies/go-bytesize"
	"github.com/juju/errors"
)

const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
)

var (
	domainRegex   = regexp.MustCompile(`^(?i)[a-z0-9-]+(\.[a-z0-9-]+)+\.?$`)
	hostnameRegex = regexp.MustCompile(`^([a-zA-Z0-9]{1}[a-zA-Z0-9_-]{0,62}){1}(\.[a-zA-Z0-9_]{1}[a-zA-Z0-9_-]{0,62})*?$`)

	emailVerifier = emailverifier.NewVerifier()
)

func HumanByteSize(n uint64) string {
	return bytesize.New(float64(n)).String()
}

// VerifyEmail only checks address syntax, no DNS nor SMTP probing is done.
func VerifyEmail(email string) error {
	s := emailVerifier.ParseAddress(email)
	if !s.Valid {
		return errors.NotValidf("email address %q", email)
	}
	return nil
}

func VerifyDomain(name string) bool {
	return domainRegex.MatchString(name)
}

// VerifyHostname accepts RFC 1123 names (leading digits allowed)
func VerifyHostname(name string) bool {
	return hostnameRegex.MatchString(name)
}
