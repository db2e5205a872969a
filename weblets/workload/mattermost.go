/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package workload

import (
	"fmt"

	"github.com/kowabunga-cloud/weblets/weblets/common/klog"
)

const (
	MattermostKind          = "mattermost"
	MattermostNamePrefix    = "mm"
	MattermostAdminUsername = "admin"
	MattermostCPU           = 2
	MattermostMemory        = 2048 // MiB
	MattermostDiskSize      = 50   // GiB
)

type Mattermost struct {
	Instance
	Credentials
}

func NewMattermost(gen Generators, passwordLength int) (*Mattermost, error) {
	instance, err := NewInstance(MattermostNamePrefix, gen.ids())
	if err != nil {
		return nil, err
	}
	instance.CPU = MattermostCPU
	instance.Memory = MattermostMemory
	instance.DiskSize = MattermostDiskSize

	creds, err := newCredentials(gen.passwords(), MattermostAdminUsername, passwordLength)
	if err != nil {
		return nil, err
	}

	mm := Mattermost{
		Instance:    instance,
		Credentials: creds,
	}
	klog.Debugf("Created new %s descriptor %s", MattermostKind, mm.Name)

	return &mm, nil
}

func (mm *Mattermost) Kind() string {
	return MattermostKind
}

func (mm *Mattermost) Env() map[string]string {
	env := map[string]string{
		"MATTERMOST_DOMAIN":         mm.Domain,
		"MATTERMOST_ADMIN_EMAIL":    mm.AdminEmail,
		"MATTERMOST_ADMIN_USERNAME": mm.AdminUsername,
		"MATTERMOST_ADMIN_PASSWORD": mm.AdminPassword,
	}
	if mm.Domain != "" {
		env["MM_SERVICESETTINGS_SITEURL"] = fmt.Sprintf("https://%s", mm.Domain)
	}
	return env
}

func init() {
	Register(KindInfo{
		Kind:        MattermostKind,
		Prefix:      MattermostNamePrefix,
		Description: "Mattermost team messaging",
		DiskSize:    MattermostDiskSize,
		New:         newFactory(NewMattermost),
	})
}
