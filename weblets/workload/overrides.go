/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package workload

import (
	"github.com/kowabunga-cloud/weblets/weblets/common/klog"
)

// Overrides replace construction defaults. Zero values are ignored.
type Overrides struct {
	Name          string `yaml:"name"`
	CPU           int64  `yaml:"cpu"`
	Memory        int64  `yaml:"memory"`
	DiskSize      int64  `yaml:"diskSize"`
	Domain        string `yaml:"domain"`
	PublicIPv4    *bool  `yaml:"publicIPv4"`
	AdminEmail    string `yaml:"adminEmail"`
	AdminUsername string `yaml:"adminUsername"`
	AdminPassword string `yaml:"adminPassword"`
	SMTP          SMTP   `yaml:"smtp"`
}

func setFieldStr(field *string, value string) {
	if value != "" {
		*field = value
	}
}

func setFieldInt(field *int64, value int64) {
	if value > 0 {
		*field = value
	}
}

func (s *SMTP) merge(other SMTP) {
	setFieldStr(&s.Host, other.Host)
	if other.Port > 0 {
		s.Port = other.Port
	}
	setFieldStr(&s.Username, other.Username)
	setFieldStr(&s.Password, other.Password)
}

// Apply sets every non-zero override onto w. SMTP settings only apply to
// workloads with a mail relay, hardcoded admin logins are kept.
func (o Overrides) Apply(w Workload) {
	i := w.Base()
	setFieldStr(&i.Name, o.Name)
	setFieldInt(&i.CPU, o.CPU)
	setFieldInt(&i.Memory, o.Memory)
	setFieldInt(&i.DiskSize, o.DiskSize)
	setFieldStr(&i.Domain, o.Domain)
	if o.PublicIPv4 != nil {
		i.PublicIPv4 = *o.PublicIPv4
	}

	c := w.Admin()
	setFieldStr(&c.AdminEmail, o.AdminEmail)
	if f, ok := w.(FixedAdmin); ok && o.AdminUsername != "" && o.AdminUsername != f.FixedAdminUsername() {
		klog.Warningf("%s admin username is always %q, ignoring %q", w.Kind(), f.FixedAdminUsername(), o.AdminUsername)
	} else {
		setFieldStr(&c.AdminUsername, o.AdminUsername)
	}
	setFieldStr(&c.AdminPassword, o.AdminPassword)

	if r, ok := w.(MailRelay); ok {
		r.Relay().merge(o.SMTP)
	}
}

// Merge returns o, with every field set in other taking precedence
func (o Overrides) Merge(other Overrides) Overrides {
	setFieldStr(&o.Name, other.Name)
	setFieldInt(&o.CPU, other.CPU)
	setFieldInt(&o.Memory, other.Memory)
	setFieldInt(&o.DiskSize, other.DiskSize)
	setFieldStr(&o.Domain, other.Domain)
	if other.PublicIPv4 != nil {
		o.PublicIPv4 = other.PublicIPv4
	}
	setFieldStr(&o.AdminEmail, other.AdminEmail)
	setFieldStr(&o.AdminUsername, other.AdminUsername)
	setFieldStr(&o.AdminPassword, other.AdminPassword)
	o.SMTP.merge(other.SMTP)
	return o
}
