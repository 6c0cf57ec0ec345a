/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package schedule

import (
	"strings"
	"testing"
)

func TestBuildScheduleOutputEven(t *testing.T) {
	sched, err := Generate(4)
	if err != nil {
		t.Fatalf("Generate(4) returned error: %v", err)
	}
	ros := &Roster{Names: []string{"Alice", "Bob", "Carol", "Dave"}}

	out := BuildScheduleOutput(sched, ros)
	for _, want := range []string{
		"Round 1\n",
		"Round 3\n",
		"Board 1: Alice vs. Dave",
		"Board 2: Bob",
		"vs. Carol",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "BYE") {
		t.Errorf("even schedule should have no byes:\n%s", out)
	}
}

func TestBuildScheduleOutputOdd(t *testing.T) {
	sched, err := Generate(3)
	if err != nil {
		t.Fatalf("Generate(3) returned error: %v", err)
	}

	// nil roster falls back to numbered placeholders
	out := BuildScheduleOutput(sched, nil)
	for _, want := range []string{
		"Board 1: Player 2 vs. Player 3",
		"BYE: Player 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "BYE:"); got != 3 {
		t.Errorf("expected 3 bye lines, got %d:\n%s", got, out)
	}
}

func TestBuildScheduleOutputDates(t *testing.T) {
	sched, err := Generate(4)
	if err != nil {
		t.Fatalf("Generate(4) returned error: %v", err)
	}
	if err := AssignDatesFromString(sched, "2026-09-01", 7); err != nil {
		t.Fatalf("AssignDatesFromString returned error: %v", err)
	}

	out := BuildScheduleOutput(sched, nil)
	for _, want := range []string{
		"Round 1 (Tue 2026-09-01)",
		"Round 2 (Tue 2026-09-08)",
		"Round 3 (Tue 2026-09-15)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBuildRosterOutput(t *testing.T) {
	ros := &Roster{Names: []string{"Alice Anderson", "Bob"}}

	out := BuildRosterOutput(ros)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines:\n%s", len(lines),
			out)
	}
	if !strings.Contains(lines[0], "Player") {
		t.Errorf("missing header in %q", lines[0])
	}
	if !strings.Contains(lines[1], "Alice Anderson") ||
		!strings.HasPrefix(lines[1], "1") {
		t.Errorf("unexpected first row %q", lines[1])
	}
}
