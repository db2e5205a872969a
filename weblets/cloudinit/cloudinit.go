/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package cloudinit

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/kdomanski/iso9660"

	"github.com/kowabunga-cloud/weblets/weblets/common"
	"github.com/kowabunga-cloud/weblets/weblets/common/klog"
	"github.com/kowabunga-cloud/weblets/weblets/workload"
)

const (
	CloudInitUserData    = "user-data"
	CloudInitMetaData    = "meta-data"
	CloudInitVolumeLabel = "cidata"

	RootPasswordLength = 24
)

// environment keys matching any of these never reach the seed image
var secretKeyMarkers = []string{"PASSWORD", "SECRET", "TOKEN"}

// CloudInit assembles a NoCloud seed for a workload instance
type CloudInit struct {
	Name      string
	TmpDir    string
	IsoImage  string
	IsoSize   int64
	Passwords common.PasswordGenerator
}

func NewCloudInit(name string) (*CloudInit, error) {
	dir, err := os.MkdirTemp("", "cloud-init")
	if err != nil {
		return nil, err
	}

	return &CloudInit{
		Name:      name,
		TmpDir:    dir,
		Passwords: common.RandomPasswordGenerator{},
	}, nil
}

// SetData renders the template file at src, or the built-in one if src is
// empty, into dst within the seed directory.
func (ci *CloudInit) SetData(src, builtin, dst string, values any) error {
	tpl := common.LoadTemplateFunctions(template.New(dst))

	var err error
	if src != "" {
		tpl, err = tpl.ParseFiles(src)
		if err == nil {
			tpl = tpl.Lookup(filepath.Base(src))
		}
	} else {
		tpl, err = tpl.Parse(builtin)
	}
	if err != nil {
		return err
	}

	out, err := os.Create(filepath.Clean(filepath.Join(ci.TmpDir, dst)))
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	return tpl.Execute(out, values)
}

type UserDataSettings struct {
	Hostname     string
	Domain       string
	Kind         string
	RootPassword string
	Env          map[string]string
}

func isSecretKey(key string) bool {
	key = strings.ToUpper(key)
	for _, m := range secretKeyMarkers {
		if strings.Contains(key, m) {
			return true
		}
	}
	return false
}

// PublicEnv returns env without credentials
func PublicEnv(env map[string]string) map[string]string {
	public := map[string]string{}
	for k, v := range env {
		if !isSecretKey(k) {
			public[k] = v
		}
	}
	return public
}

// SetUserData renders user-data for d. The root account gets its own
// generated password, only its hash is written out. Workload credentials
// are stripped from the environment file.
func (ci *CloudInit) SetUserData(src string, d workload.Descriptor) error {
	rootPassword, err := ci.Passwords.Generate(RootPasswordLength)
	if err != nil {
		return err
	}

	data := UserDataSettings{
		Hostname:     d.Name,
		Domain:       d.Domain,
		Kind:         d.Kind,
		RootPassword: rootPassword,
		Env:          PublicEnv(d.Env),
	}
	return ci.SetData(src, UserDataGoTmpl, CloudInitUserData, data)
}

type MetaDataSettings struct {
	InstanceID string
	Hostname   string
}

func (ci *CloudInit) SetMetaData(src string, d workload.Descriptor) error {
	data := MetaDataSettings{
		InstanceID: d.ID,
		Hostname:   d.Name,
	}
	return ci.SetData(src, MetaDataGoTmpl, CloudInitMetaData, data)
}

// WriteISO packs the seed directory into an ISO9660 image at dst
func (ci *CloudInit) WriteISO(dst string) error {
	wr, err := iso9660.NewWriter()
	if err != nil {
		return err
	}
	defer func() {
		_ = wr.Cleanup()
	}()

	err = wr.AddLocalDirectory(ci.TmpDir, "/")
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(dst))
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	ci.IsoImage = f.Name()

	klog.Debugf("Saving %s cloud-init ISO image into %s", ci.Name, ci.IsoImage)
	err = wr.WriteTo(f, CloudInitVolumeLabel)
	if err != nil {
		return err
	}

	infos, err := f.Stat()
	if err != nil {
		return err
	}
	ci.IsoSize = infos.Size()

	return nil
}

// Delete removes the seed directory, the ISO image is kept
func (ci *CloudInit) Delete() error {
	return os.RemoveAll(ci.TmpDir)
}
