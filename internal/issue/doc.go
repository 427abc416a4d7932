// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error reporting: ActionableError values
// carrying operation context and fix suggestions, and a catalog of known
// launcher failure modes rendered as markdown.
package issue
