/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/kowabunga-cloud/weblets/weblets/cloudinit"
	"github.com/kowabunga-cloud/weblets/weblets/common"
	"github.com/kowabunga-cloud/weblets/weblets/common/klog"
	"github.com/kowabunga-cloud/weblets/weblets/workload"
)

func Run(args []string, stdout io.Writer) error {
	opts, err := ParseCommands(args)
	if err != nil {
		return err
	}

	cfg, err := ParseConfig(opts.ConfigFile)
	if err != nil {
		return errors.Annotate(err, "config")
	}

	err = klog.Init("weblet", cfg.Loggers(opts.Debug))
	if err != nil {
		return errors.Annotate(err, "logger")
	}

	switch opts.Command {
	case CommandKinds:
		return listKinds(stdout)
	case CommandNew:
		err = newDescriptor(&cfg, opts, stdout)
		if opts.MetricsTextfile != "" {
			merr := workload.WriteMetrics(opts.MetricsTextfile)
			if merr != nil {
				klog.Error(merr)
			}
		}
		return err
	}

	return errors.NotSupportedf("command %q", opts.Command)
}

func listKinds(stdout io.Writer) error {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KIND\tPREFIX\tDISK\tDESCRIPTION")
	for _, k := range workload.Kinds() {
		disk := common.HumanByteSize(uint64(k.DiskSize) * common.GiB)
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", k.Kind, k.Prefix, disk, k.Description)
	}
	return w.Flush()
}

func newDescriptor(cfg *WebletConfig, opts *Options, stdout io.Writer) error {
	passwordLength := cfg.Global.PasswordLength
	if opts.PasswordLengthSet {
		passwordLength = opts.PasswordLength
	}

	w, err := workload.New(opts.Kind, workload.Generators{}, passwordLength)
	if err != nil {
		return errors.Annotatef(err, "unable to create %s descriptor", opts.Kind)
	}

	// command line takes precedence over configuration file
	cfg.Workloads[w.Kind()].Merge(opts.Overrides).Apply(w)

	if opts.Validate {
		err = workload.Validate(w, cfg.Global.MinPasswordEntropyBits)
		if err != nil {
			return errors.Annotatef(err, "%s descriptor %s", w.Kind(), w.Base().Name)
		}
	}

	d := workload.Model(w)
	err = writeDescriptor(stdout, d, opts.Output)
	if err != nil {
		return err
	}

	if opts.SeedISO != "" {
		return writeSeed(cfg, d, opts.SeedISO)
	}

	return nil
}

func writeDescriptor(out io.Writer, d workload.Descriptor, format string) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	default:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		err := enc.Encode(d)
		if err != nil {
			return err
		}
		return enc.Close()
	}
}

func writeSeed(cfg *WebletConfig, d workload.Descriptor, dst string) error {
	ci, err := cloudinit.NewCloudInit(d.Name)
	if err != nil {
		return err
	}
	defer func() {
		err := ci.Delete()
		if err != nil {
			klog.Error(err)
		}
	}()

	err = ci.SetUserData(cfg.CloudInit.UserData, d)
	if err != nil {
		return errors.Annotate(err, "cloud-init user-data")
	}

	err = ci.SetMetaData(cfg.CloudInit.MetaData, d)
	if err != nil {
		return errors.Annotate(err, "cloud-init meta-data")
	}

	err = ci.WriteISO(dst)
	if err != nil {
		return err
	}
	klog.Infof("Wrote %s cloud-init seed %s (%s)", d.Name, ci.IsoImage, common.HumanByteSize(uint64(ci.IsoSize)))

	return nil
}
