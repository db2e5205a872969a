/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package workload

import (
	"github.com/juju/errors"
	passwordvalidator "github.com/wagslane/go-password-validator"

	"github.com/kowabunga-cloud/weblets/weblets/common"
)

const (
	PasswordMinEntropyBitsDefault = 60
)

// Validate checks a descriptor is ready for submission. Descriptors are
// never validated at construction, so required fields (admin email, domain)
// are only enforced here.
func Validate(w Workload, minEntropyBits float64) error {
	i := w.Base()
	if !common.VerifyHostname(i.Name) {
		return errors.NotValidf("instance name %q", i.Name)
	}
	if i.CPU <= 0 {
		return errors.NotValidf("vCPUs count %d", i.CPU)
	}
	if i.Memory <= 0 {
		return errors.NotValidf("memory size %d MiB", i.Memory)
	}
	if i.DiskSize <= 0 {
		return errors.NotValidf("disk size %d GiB", i.DiskSize)
	}

	if i.Domain == "" {
		return errors.NewNotValid(nil, "domain is required")
	}
	if !common.VerifyDomain(i.Domain) {
		return errors.NotValidf("domain %q", i.Domain)
	}

	c := w.Admin()
	if c.AdminEmail == "" {
		return errors.NewNotValid(nil, "admin email is required")
	}
	err := common.VerifyEmail(c.AdminEmail)
	if err != nil {
		return err
	}
	if c.AdminUsername == "" {
		return errors.NewNotValid(nil, "admin username is required")
	}
	if f, ok := w.(FixedAdmin); ok && c.AdminUsername != f.FixedAdminUsername() {
		return errors.NotValidf("admin username %q, %s only supports %q", c.AdminUsername, w.Kind(), f.FixedAdminUsername())
	}
	err = passwordvalidator.Validate(c.AdminPassword, minEntropyBits)
	if err != nil {
		return errors.NewNotValid(err, "admin password")
	}

	if r, ok := w.(MailRelay); ok {
		err = validateRelay(r.Relay())
		if err != nil {
			return err
		}
	}

	return nil
}

func validateRelay(s *SMTP) error {
	if s.Host == "" {
		return errors.NewNotValid(nil, "SMTP host is required")
	}
	if !common.VerifyHostname(s.Host) {
		return errors.NotValidf("SMTP host %q", s.Host)
	}
	if s.Port <= 0 || s.Port > 65535 {
		return errors.NotValidf("SMTP port %d", s.Port)
	}
	return nil
}
