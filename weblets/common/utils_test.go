/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package common

import (
	"strings"
	"testing"
	"text/template"

	"github.com/juju/errors"
)

func TestVerifyEmail(t *testing.T) {
	if err := VerifyEmail("admin@example.com"); err != nil {
		t.Errorf("valid address rejected: %v", err)
	}
	for _, email := range []string{"", "admin", "admin@", "@example.com"} {
		if err := VerifyEmail(email); !errors.Is(err, errors.NotValid) {
			t.Errorf("%q: expected NotValid error, got %v", email, err)
		}
	}
}

func TestVerifyDomain(t *testing.T) {
	valid := []string{"example.com", "blog.example.com", "my-site.example.org."}
	for _, d := range valid {
		if !VerifyDomain(d) {
			t.Errorf("%s should be a valid domain", d)
		}
	}
	invalid := []string{"", "localhost", "exa mple.com", "http://example.com"}
	for _, d := range invalid {
		if VerifyDomain(d) {
			t.Errorf("%s should not be a valid domain", d)
		}
	}
}

func TestVerifyHostname(t *testing.T) {
	if !VerifyHostname("WP1a2b3c4d") {
		t.Errorf("WP1a2b3c4d should be a valid hostname")
	}
	if VerifyHostname("-wp") {
		t.Errorf("-wp should not be a valid hostname")
	}
}

func TestHumanByteSize(t *testing.T) {
	s := HumanByteSize(50 * GiB)
	if !strings.HasPrefix(s, "50") || !strings.HasSuffix(s, "GB") {
		t.Errorf("unexpected human size: %s", s)
	}
}

func TestShasum512(t *testing.T) {
	h := Shasum512("superpass")
	if !strings.HasPrefix(h, "$6$") {
		t.Errorf("not a SHA-512 crypt hash: %s", h)
	}
	if h == Shasum512("superpass") {
		t.Errorf("hashes should be salted")
	}
}

func TestTemplateFunctions(t *testing.T) {
	tpl := LoadTemplateFunctions(template.New("test"))
	tpl, err := tpl.Parse(`{{ "ADMIN" | lower }} {{ b64encode "wp" }} {{ generatePassword 8 | len }} {{ "x" | upper }}`)
	if err != nil {
		t.Fatalf("%s", err.Error())
	}

	var out strings.Builder
	err = tpl.Execute(&out, nil)
	if err != nil {
		t.Fatalf("%s", err.Error())
	}
	if out.String() != "admin d3A= 8 X" {
		t.Errorf("unexpected template output: %q", out.String())
	}
}
