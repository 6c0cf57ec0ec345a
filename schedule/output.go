/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package schedule

import (
	"fmt"
	"strings"
)

// BuildScheduleOutput formats a schedule into aligned, round-by-round
// string output. ros may be nil, in which case participants are shown
// as numbered placeholders.
func BuildScheduleOutput(s *Schedule, ros *Roster) string {
	var sb strings.Builder

	for _, rd := range s.Rounds {
		if rd.Date.IsZero() {
			sb.WriteString(fmt.Sprintf("Round %d\n", rd.Number))
		} else {
			sb.WriteString(fmt.Sprintf("Round %d (%s)\n", rd.Number,
				rd.Date.Format("Mon 2006-01-02")))
		}

		// Compute the left column width so the "vs." column lines up
		maxW := 0
		for _, p := range rd.Pairings {
			if l := len(ros.Name(p[0])); l > maxW {
				maxW = l
			}
		}
		for board, p := range rd.Pairings {
			sb.WriteString(fmt.Sprintf("  Board %d: %-*s vs. %s\n", board+1,
				maxW, ros.Name(p[0]), ros.Name(p[1])))
		}
		if rd.Bye != NoBye {
			sb.WriteString(fmt.Sprintf("  BYE: %s\n", ros.Name(rd.Bye)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// BuildRosterOutput formats a roster into aligned string output.
func BuildRosterOutput(ros *Roster) string {
	var sb strings.Builder

	maxN := len("Player")
	for _, name := range ros.Names {
		if l := len(name); l > maxN {
			maxN = l
		}
	}
	sb.WriteString(fmt.Sprintf("%-3s  %-*s\n", "#", maxN, "Player"))
	for i, name := range ros.Names {
		sb.WriteString(fmt.Sprintf("%-3d  %-*s\n", i+1, maxN, name))
	}

	return sb.String()
}
