/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"os"

	"github.com/kowabunga-cloud/weblets/weblets/cli"
	"github.com/kowabunga-cloud/weblets/weblets/common/klog"
)

func main() {
	err := cli.Run(os.Args[1:], os.Stdout)
	if err != nil {
		klog.Error(err)
		os.Exit(1)
	}
}
