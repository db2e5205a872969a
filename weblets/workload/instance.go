/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package workload

import (
	"strings"

	"github.com/juju/errors"

	"github.com/kowabunga-cloud/weblets/weblets/common"
)

const (
	InstanceDefaultCPU    = 1
	InstanceDefaultMemory = 1024 // MiB

	instanceIdSeparator = "-"
)

// Instance holds the attributes shared by every virtual-machine-backed
// workload. Specializations embed it and only ever add fields.
type Instance struct {
	// immutable once generated, hence no setter
	id string

	Name       string
	CPU        int64 // vCPUs
	Memory     int64 // MiB
	DiskSize   int64 // GiB
	Domain     string
	PublicIPv4 bool
}

// NewInstance derives the instance identifier from the first segment of a
// freshly generated token, then names the instance after it.
func NewInstance(prefix string, ids common.IDGenerator) (Instance, error) {
	token := ids.Generate()
	id, _, _ := strings.Cut(token, instanceIdSeparator)
	if id == "" {
		return Instance{}, errors.NotValidf("instance identifier %q", token)
	}

	return Instance{
		id:     id,
		Name:   prefix + id,
		CPU:    InstanceDefaultCPU,
		Memory: InstanceDefaultMemory,
	}, nil
}

func (i *Instance) ID() string {
	return i.id
}

func (i *Instance) Base() *Instance {
	return i
}
