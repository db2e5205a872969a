/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package workload

import (
	"strconv"

	"github.com/kowabunga-cloud/weblets/weblets/common/klog"
)

const (
	DiscourseKind          = "discourse"
	DiscourseNamePrefix    = "dc"
	DiscourseAdminUsername = "admin"
	DiscourseCPU           = 2
	DiscourseMemory        = 2048 // MiB
	DiscourseDiskSize      = 50   // GiB
	DiscourseSMTPPort      = 587
)

// SMTP relay settings. Discourse refuses to bootstrap without outgoing mail.
type SMTP struct {
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

// MailRelay is implemented by workloads which need an outgoing SMTP relay
type MailRelay interface {
	Relay() *SMTP
}

type Discourse struct {
	Instance
	Credentials

	SMTP SMTP
}

func NewDiscourse(gen Generators, passwordLength int) (*Discourse, error) {
	instance, err := NewInstance(DiscourseNamePrefix, gen.ids())
	if err != nil {
		return nil, err
	}
	instance.CPU = DiscourseCPU
	instance.Memory = DiscourseMemory
	instance.DiskSize = DiscourseDiskSize

	creds, err := newCredentials(gen.passwords(), DiscourseAdminUsername, passwordLength)
	if err != nil {
		return nil, err
	}

	dc := Discourse{
		Instance:    instance,
		Credentials: creds,
		SMTP: SMTP{
			Port: DiscourseSMTPPort,
		},
	}
	klog.Debugf("Created new %s descriptor %s", DiscourseKind, dc.Name)

	return &dc, nil
}

func (dc *Discourse) Kind() string {
	return DiscourseKind
}

func (dc *Discourse) Relay() *SMTP {
	return &dc.SMTP
}

func (dc *Discourse) Env() map[string]string {
	return map[string]string{
		"DISCOURSE_HOSTNAME":         dc.Domain,
		"DISCOURSE_DEVELOPER_EMAILS": dc.AdminEmail,
		"DISCOURSE_ADMIN_USERNAME":   dc.AdminUsername,
		"DISCOURSE_ADMIN_PASSWORD":   dc.AdminPassword,
		"DISCOURSE_SMTP_ADDRESS":     dc.SMTP.Host,
		"DISCOURSE_SMTP_PORT":        strconv.Itoa(dc.SMTP.Port),
		"DISCOURSE_SMTP_USER_NAME":   dc.SMTP.Username,
		"DISCOURSE_SMTP_PASSWORD":    dc.SMTP.Password,
	}
}

func init() {
	Register(KindInfo{
		Kind:        DiscourseKind,
		Prefix:      DiscourseNamePrefix,
		Description: "Discourse discussion forum",
		DiskSize:    DiscourseDiskSize,
		New:         newFactory(NewDiscourse),
	})
}
