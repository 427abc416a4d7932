// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"rundbg-cli/internal/issue"

	"github.com/spf13/cobra"
)

// issuesCmd renders the whole troubleshooting catalog, so an operator can
// browse the failure cards without reproducing each failure first.
var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "Show the troubleshooting catalog",
	RunE:  runIssues,
}

func runIssues(cmd *cobra.Command, _ []string) error {
	for _, iss := range issue.Sorted() {
		card, err := iss.Render("auto")
		if err != nil {
			// Fall back to the raw markdown rather than dropping the card.
			card = string(iss.MarkdownMsg()) + "\n"
		}
		fmt.Fprint(cmd.OutOrStdout(), card)
	}
	return nil
}
