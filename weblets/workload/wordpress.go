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
	WordpressKind          = "wordpress"
	WordpressNamePrefix    = "WP"
	WordpressAdminUsername = "admin"
	WordpressDiskSize      = 50 // GiB
)

type Wordpress struct {
	// anonymous fields, composition
	Instance
	Credentials
}

// NewWordpress returns a submission-ready WordPress descriptor. Admin email
// and domain are left for the caller to fill in.
func NewWordpress(gen Generators, passwordLength int) (*Wordpress, error) {
	// name is derived from id, so instance comes first
	instance, err := NewInstance(WordpressNamePrefix, gen.ids())
	if err != nil {
		return nil, err
	}
	instance.DiskSize = WordpressDiskSize

	creds, err := newCredentials(gen.passwords(), WordpressAdminUsername, passwordLength)
	if err != nil {
		return nil, err
	}

	wp := Wordpress{
		Instance:    instance,
		Credentials: creds,
	}
	klog.Debugf("Created new %s descriptor %s", WordpressKind, wp.Name)

	return &wp, nil
}

func (wp *Wordpress) Kind() string {
	return WordpressKind
}

func (wp *Wordpress) Env() map[string]string {
	return map[string]string{
		"WP_URL":         wp.Domain,
		"ADMIN_EMAIL":    wp.AdminEmail,
		"MYSQL_USER":     wp.AdminUsername,
		"MYSQL_PASSWORD": wp.AdminPassword,
	}
}

func init() {
	Register(KindInfo{
		Kind:        WordpressKind,
		Prefix:      WordpressNamePrefix,
		Description: "WordPress content management system",
		DiskSize:    WordpressDiskSize,
		New:         newFactory(NewWordpress),
	})
}
