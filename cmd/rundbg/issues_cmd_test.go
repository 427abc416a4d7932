// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestIssuesCommandRendersWholeCatalog(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)

	if err := runIssues(c, nil); err != nil {
		t.Fatalf("runIssues() error = %v", err)
	}

	for _, want := range []string{
		"No Python interpreter found",
		"Target script not found",
		"Working directory unavailable",
		"Failed to load configuration",
		"Failed to start the target",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("catalog output missing %q", want)
		}
	}
}
