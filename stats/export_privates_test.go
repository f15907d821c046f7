// SPDX-License-Identifier: MIT

package stats

// Test bridge: unexported helpers made reachable from package stats_test.

// ExportedQuantileAt exposes quantileAt.
var ExportedQuantileAt = quantileAt
