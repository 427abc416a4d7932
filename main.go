// SPDX-License-Identifier: MPL-2.0

package main

import "rundbg-cli/cmd/rundbg"

func main() {
	cmd.Execute()
}
