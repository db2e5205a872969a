/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package workload

import (
	"github.com/kowabunga-cloud/weblets/weblets/common/klog"
)

const (
	PeertubeKind          = "peertube"
	PeertubeNamePrefix    = "pt"
	PeertubeAdminUsername = "root" // hardcoded by PeerTube itself
	PeertubeCPU           = 2
	PeertubeMemory        = 4096 // MiB
	PeertubeDiskSize      = 100  // GiB, video storage
)

type Peertube struct {
	Instance
	Credentials
}

func NewPeertube(gen Generators, passwordLength int) (*Peertube, error) {
	instance, err := NewInstance(PeertubeNamePrefix, gen.ids())
	if err != nil {
		return nil, err
	}
	instance.CPU = PeertubeCPU
	instance.Memory = PeertubeMemory
	instance.DiskSize = PeertubeDiskSize

	creds, err := newCredentials(gen.passwords(), PeertubeAdminUsername, passwordLength)
	if err != nil {
		return nil, err
	}

	pt := Peertube{
		Instance:    instance,
		Credentials: creds,
	}
	klog.Debugf("Created new %s descriptor %s", PeertubeKind, pt.Name)

	return &pt, nil
}

func (pt *Peertube) Kind() string {
	return PeertubeKind
}

func (pt *Peertube) FixedAdminUsername() string {
	return PeertubeAdminUsername
}

func (pt *Peertube) Env() map[string]string {
	return map[string]string{
		"PEERTUBE_WEBSERVER_HOSTNAME": pt.Domain,
		"PEERTUBE_ADMIN_EMAIL":        pt.AdminEmail,
		"PT_INITIAL_ROOT_PASSWORD":    pt.AdminPassword,
	}
}

func init() {
	Register(KindInfo{
		Kind:        PeertubeKind,
		Prefix:      PeertubeNamePrefix,
		Description: "PeerTube federated video platform",
		DiskSize:    PeertubeDiskSize,
		New:         newFactory(NewPeertube),
	})
}
