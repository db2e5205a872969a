/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package workload

import (
	"context"

	"github.com/kowabunga-cloud/weblets/weblets/common"
)

// Workload is implemented by every deployable application descriptor
type Workload interface {
	Kind() string
	Base() *Instance
	Admin() *Credentials
	// Env is the environment handed over to the workload image
	Env() map[string]string
}

// FixedAdmin is implemented by workloads whose administrator login is
// hardcoded by the application itself.
type FixedAdmin interface {
	FixedAdminUsername() string
}

// Deployer is the provisioning backend descriptors are submitted to.
type Deployer interface {
	Deploy(ctx context.Context, d Descriptor) error
}

// Generators bundles the identifier and password sources used at
// construction time. Nil members fall back to the random defaults.
type Generators struct {
	IDs       common.IDGenerator
	Passwords common.PasswordGenerator
}

func (g Generators) ids() common.IDGenerator {
	if g.IDs == nil {
		return common.UUIDGenerator{}
	}
	return g.IDs
}

func (g Generators) passwords() common.PasswordGenerator {
	if g.Passwords == nil {
		return common.RandomPasswordGenerator{}
	}
	return g.Passwords
}

// Credentials of the workload's built-in administrator account
type Credentials struct {
	AdminEmail    string
	AdminUsername string
	AdminPassword string
}

func newCredentials(passwords common.PasswordGenerator, username string, passwordLength int) (Credentials, error) {
	pwd, err := passwords.Generate(passwordLength)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		AdminUsername: username,
		AdminPassword: pwd,
	}, nil
}

func (c *Credentials) Admin() *Credentials {
	return c
}

// Descriptor is the flat, serializable form of a workload, as submitted to a
// Deployer.
type Descriptor struct {
	Kind          string            `yaml:"kind" json:"kind"`
	ID            string            `yaml:"id" json:"id"`
	Name          string            `yaml:"name" json:"name"`
	CPU           int64             `yaml:"cpu" json:"cpu"`
	Memory        int64             `yaml:"memory" json:"memory"`
	DiskSize      int64             `yaml:"diskSize" json:"diskSize"`
	Domain        string            `yaml:"domain" json:"domain"`
	PublicIPv4    bool              `yaml:"publicIPv4" json:"publicIPv4"`
	AdminEmail    string            `yaml:"adminEmail" json:"adminEmail"`
	AdminUsername string            `yaml:"adminUsername" json:"adminUsername"`
	AdminPassword string            `yaml:"adminPassword" json:"adminPassword"`
	Env           map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
}

func Model(w Workload) Descriptor {
	i := w.Base()
	c := w.Admin()
	return Descriptor{
		Kind:          w.Kind(),
		ID:            i.ID(),
		Name:          i.Name,
		CPU:           i.CPU,
		Memory:        i.Memory,
		DiskSize:      i.DiskSize,
		Domain:        i.Domain,
		PublicIPv4:    i.PublicIPv4,
		AdminEmail:    c.AdminEmail,
		AdminUsername: c.AdminUsername,
		AdminPassword: c.AdminPassword,
		Env:           w.Env(),
	}
}
