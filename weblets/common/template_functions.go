/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package common

import (
	"encoding/base64"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/tredoe/osutil/user/crypt"
	"github.com/tredoe/osutil/user/crypt/sha512_crypt"

	"github.com/kowabunga-cloud/weblets/weblets/common/klog"
)

const (
	Sha512Rounds = 4096
)

var TemplateFunctions = template.FuncMap{
	"b64encode": func(str string) string {
		return base64.StdEncoding.EncodeToString([]byte(str))
	},
	"generatePassword": func(n int) (string, error) {
		return RandomPasswordGenerator{}.Generate(n)
	},
	"lower": strings.ToLower,
	"sha512": Shasum512,
}

// Shasum512 returns a SHA-512 crypt(3) hash, as expected in /etc/shadow
// and cloud-init "passwd" entries.
func Shasum512(in string) string {
	c := crypt.New(crypt.SHA512)
	s := sha512_crypt.GetSalt()
	salt := s.GenerateWRounds(s.SaltLenMax, Sha512Rounds)
	hash, err := c.Generate([]byte(in), salt)
	if err != nil {
		klog.Error(err)
		return ""
	}
	return hash
}

// LoadTemplateFunctions registers sprig functions, then ours on top.
func LoadTemplateFunctions(tpl *template.Template) *template.Template {
	return tpl.Funcs(sprig.TxtFuncMap()).Funcs(TemplateFunctions)
}
