/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/kowabunga-cloud/weblets/weblets/workload"
)

func TestParseCommands(t *testing.T) {
	opts, err := ParseCommands([]string{"-d", "new", "wordpress", "-l", "20", "--domain", "blog.example.com", "--public-ip", "-o", "json"})
	if err != nil {
		t.Fatalf("%s", err.Error())
	}
	if opts.Command != CommandNew || opts.Kind != "wordpress" || !opts.Debug {
		t.Errorf("unexpected options: %+v", opts)
	}
	if !opts.PasswordLengthSet || opts.PasswordLength != 20 {
		t.Errorf("unexpected password length: %d (%v)", opts.PasswordLength, opts.PasswordLengthSet)
	}
	if opts.Overrides.Domain != "blog.example.com" || opts.Overrides.PublicIPv4 == nil || !*opts.Overrides.PublicIPv4 {
		t.Errorf("unexpected overrides: %+v", opts.Overrides)
	}
	if opts.Output != OutputJSON {
		t.Errorf("unexpected output format: %s", opts.Output)
	}

	opts, err = ParseCommands([]string{"new", "peertube"})
	if err != nil {
		t.Fatalf("%s", err.Error())
	}
	if opts.PasswordLengthSet || opts.Overrides.PublicIPv4 != nil || opts.Output != OutputYAML {
		t.Errorf("unexpected defaults: %+v", opts)
	}

	_, err = ParseCommands([]string{"new", "wordpress", "-o", "xml"})
	if err == nil {
		t.Errorf("xml output format should be rejected")
	}
}

func TestRunKinds(t *testing.T) {
	var out bytes.Buffer
	err := Run([]string{CommandKinds}, &out)
	if err != nil {
		t.Fatalf("%s", err.Error())
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(workload.Kinds())+1 {
		t.Fatalf("unexpected kinds listing:\n%s", out.String())
	}
	if !strings.HasPrefix(lines[4], "wordpress") || !strings.Contains(lines[4], "WP") {
		t.Errorf("unexpected wordpress line: %s", lines[4])
	}
}

func TestRunNewYAML(t *testing.T) {
	cfg := writeTestConfig(t, `
workloads:
  wordpress:
    diskSize: 80
    domain: old.example.com
`)

	var out bytes.Buffer
	err := Run([]string{"-c", cfg, "new", "WordPress", "-l", "12", "--domain", "blog.example.com"}, &out)
	if err != nil {
		t.Fatalf("%s", err.Error())
	}

	var d workload.Descriptor
	err = yaml.Unmarshal(out.Bytes(), &d)
	if err != nil {
		t.Fatalf("%s", err.Error())
	}
	if d.Kind != workload.WordpressKind || d.Name != "WP"+d.ID || len(d.AdminPassword) != 12 {
		t.Errorf("unexpected descriptor: %+v", d)
	}
	if d.DiskSize != 80 || d.Domain != "blog.example.com" || d.AdminEmail != "" {
		t.Errorf("overrides not applied: %+v", d)
	}
}

func TestRunNewJSONWithSeed(t *testing.T) {
	dir := t.TempDir()
	iso := filepath.Join(dir, "seed.iso")
	metrics := filepath.Join(dir, "weblets.prom")

	var out bytes.Buffer
	err := Run([]string{"new", "mattermost", "-o", "json", "--domain", "chat.example.com", "--email", "ops@example.com",
		"--validate", "--seed-iso", iso, "--metrics-textfile", metrics}, &out)
	if err != nil {
		t.Fatalf("%s", err.Error())
	}

	var d workload.Descriptor
	err = json.Unmarshal(out.Bytes(), &d)
	if err != nil {
		t.Fatalf("%s", err.Error())
	}
	if d.Kind != workload.MattermostKind || d.AdminEmail != "ops@example.com" || len(d.AdminPassword) != PasswordLengthDefault {
		t.Errorf("unexpected descriptor: %+v", d)
	}
	if d.Env["MM_SERVICESETTINGS_SITEURL"] != "https://chat.example.com" {
		t.Errorf("unexpected environment: %v", d.Env)
	}

	for _, f := range []string{iso, metrics} {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("%s should have been written: %v", f, err)
		}
	}
}

func TestRunNewDiscourse(t *testing.T) {
	cfg := writeTestConfig(t, `
workloads:
  discourse:
    smtp:
      host: smtp.example.com
      password: relay
`)

	var out bytes.Buffer
	err := Run([]string{"-c", cfg, "new", "discourse", "--domain", "forum.example.com", "--email", "ops@example.com",
		"--smtp-port", "2525", "--validate"}, &out)
	if err != nil {
		t.Fatalf("%s", err.Error())
	}

	var d workload.Descriptor
	err = yaml.Unmarshal(out.Bytes(), &d)
	if err != nil {
		t.Fatalf("%s", err.Error())
	}
	if d.Env["DISCOURSE_SMTP_ADDRESS"] != "smtp.example.com" || d.Env["DISCOURSE_SMTP_PORT"] != "2525" || d.Env["DISCOURSE_SMTP_PASSWORD"] != "relay" {
		t.Errorf("unexpected discourse environment: %v", d.Env)
	}

	// no relay configured
	out.Reset()
	err = Run([]string{"new", "discourse", "--domain", "forum.example.com", "--email", "ops@example.com", "--validate"}, &out)
	if !errors.Is(err, errors.NotValid) {
		t.Errorf("expected NotValid error, got %v", err)
	}
}

func TestRunNewPeertubeUsername(t *testing.T) {
	var out bytes.Buffer
	err := Run([]string{"new", "peertube", "--username", "bob"}, &out)
	if err != nil {
		t.Fatalf("%s", err.Error())
	}

	var d workload.Descriptor
	err = yaml.Unmarshal(out.Bytes(), &d)
	if err != nil {
		t.Fatalf("%s", err.Error())
	}
	if d.AdminUsername != workload.PeertubeAdminUsername {
		t.Errorf("peertube admin username should stay %s, got %s", workload.PeertubeAdminUsername, d.AdminUsername)
	}
}

func TestRunNewErrors(t *testing.T) {
	var out bytes.Buffer

	err := Run([]string{"new", "wordpres"}, &out)
	if !errors.Is(err, errors.NotFound) || !strings.Contains(err.Error(), "wordpress") {
		t.Errorf("expected NotFound error with suggestion, got %v", err)
	}

	err = Run([]string{"new", "wordpress", "-l", "0"}, &out)
	if !errors.Is(err, errors.NotValid) {
		t.Errorf("expected NotValid error, got %v", err)
	}

	// admin email and domain are missing
	err = Run([]string{"new", "wordpress", "--validate"}, &out)
	if !errors.Is(err, errors.NotValid) {
		t.Errorf("expected NotValid error, got %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("nothing should be printed on failure:\n%s", out.String())
	}
}
