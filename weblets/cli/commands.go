/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package cli

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/kowabunga-cloud/weblets/weblets/workload"
)

var version = "was not built correctly"  // set via the Makefile
var codename = "was not built correctly" // set via the Makefile

const (
	CommandKinds = "kinds"
	CommandNew   = "new"

	OutputYAML = "yaml"
	OutputJSON = "json"

	flagDescConfig          = "YAML config file to be used"
	flagDescDebug           = "Enable verbose/debug output"
	flagDescPasswordLength  = "Length of the generated admin password"
	flagDescDomain          = "Domain name the workload is served on"
	flagDescEmail           = "Administrator email address"
	flagDescUsername        = "Administrator login name"
	flagDescName            = "Instance name, defaults to kind prefix followed by instance id"
	flagDescCPU             = "Number of vCPUs"
	flagDescMemory          = "Memory size (MiB)"
	flagDescDisk            = "Disk size (GiB)"
	flagDescPublicIP        = "Expose the instance on a public IPv4 address"
	flagDescOutput          = "Descriptor output format"
	flagDescValidate        = "Ensure descriptor is ready for submission"
	flagDescSeedISO         = "Write a cloud-init NoCloud seed ISO image to this path"
	flagDescMetricsTextfile = "Dump Prometheus counters to this node-exporter textfile"
	flagDescSMTPHost        = "Outgoing mail relay host (discourse)"
	flagDescSMTPPort        = "Outgoing mail relay port (discourse)"
	flagDescSMTPUsername    = "Outgoing mail relay login (discourse)"
	flagDescSMTPPassword    = "Outgoing mail relay password (discourse)"
)

type Options struct {
	Command    string
	ConfigFile string
	Debug      bool

	// new
	Kind              string
	PasswordLength    int
	PasswordLengthSet bool
	Overrides         workload.Overrides
	Output            string
	Validate          bool
	SeedISO           string
	MetricsTextfile   string
}

func ParseCommands(args []string) (*Options, error) {
	opts := Options{}

	app := kingpin.New("weblet", "Build ready-to-submit workload descriptors")
	app.Version(fmt.Sprintf("%s (%s)", version, codename)).VersionFlag.Short('v')
	app.HelpFlag.Short('h')
	app.Flag("config", flagDescConfig).Short('c').StringVar(&opts.ConfigFile)
	app.Flag("debug", flagDescDebug).Short('d').BoolVar(&opts.Debug)

	app.Command(CommandKinds, "List supported workload kinds")

	var publicIP, publicIPSet bool
	newCmd := app.Command(CommandNew, "Create a new workload descriptor")
	newCmd.Arg("kind", "Workload kind").Required().StringVar(&opts.Kind)
	newCmd.Flag("password-length", flagDescPasswordLength).Short('l').IsSetByUser(&opts.PasswordLengthSet).IntVar(&opts.PasswordLength)
	newCmd.Flag("domain", flagDescDomain).StringVar(&opts.Overrides.Domain)
	newCmd.Flag("email", flagDescEmail).StringVar(&opts.Overrides.AdminEmail)
	newCmd.Flag("username", flagDescUsername).StringVar(&opts.Overrides.AdminUsername)
	newCmd.Flag("name", flagDescName).StringVar(&opts.Overrides.Name)
	newCmd.Flag("cpu", flagDescCPU).Int64Var(&opts.Overrides.CPU)
	newCmd.Flag("memory", flagDescMemory).Int64Var(&opts.Overrides.Memory)
	newCmd.Flag("disk", flagDescDisk).Int64Var(&opts.Overrides.DiskSize)
	newCmd.Flag("public-ip", flagDescPublicIP).IsSetByUser(&publicIPSet).BoolVar(&publicIP)
	newCmd.Flag("smtp-host", flagDescSMTPHost).StringVar(&opts.Overrides.SMTP.Host)
	newCmd.Flag("smtp-port", flagDescSMTPPort).IntVar(&opts.Overrides.SMTP.Port)
	newCmd.Flag("smtp-username", flagDescSMTPUsername).StringVar(&opts.Overrides.SMTP.Username)
	newCmd.Flag("smtp-password", flagDescSMTPPassword).StringVar(&opts.Overrides.SMTP.Password)
	newCmd.Flag("output", flagDescOutput).Short('o').Default(OutputYAML).EnumVar(&opts.Output, OutputYAML, OutputJSON)
	newCmd.Flag("validate", flagDescValidate).BoolVar(&opts.Validate)
	newCmd.Flag("seed-iso", flagDescSeedISO).StringVar(&opts.SeedISO)
	newCmd.Flag("metrics-textfile", flagDescMetricsTextfile).StringVar(&opts.MetricsTextfile)

	cmd, err := app.Parse(args)
	if err != nil {
		return nil, err
	}
	opts.Command = cmd

	if publicIPSet {
		opts.Overrides.PublicIPv4 = &publicIP
	}

	return &opts, nil
}
