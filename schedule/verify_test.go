/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package schedule

import (
	"strings"
	"testing"
)

// TestVerifyRange regenerates and checks schedules across a range of
// player counts, covering both parities.
func TestVerifyRange(t *testing.T) {
	for n := 2; n <= 50; n++ {
		sched, err := Generate(n)
		if err != nil {
			t.Fatalf("Generate(%d) returned error: %v", n, err)
		}
		if err := Verify(sched); err != nil {
			t.Errorf("Verify failed for %d players: %v", n, err)
		}

		sched, err = GenerateSeeded(n, int64(n)*7919)
		if err != nil {
			t.Fatalf("GenerateSeeded(%d) returned error: %v", n, err)
		}
		if err := Verify(sched); err != nil {
			t.Errorf("Verify failed for seeded %d players: %v", n, err)
		}
	}
}

func TestVerifyCatchesCorruption(t *testing.T) {
	cases := []struct {
		name    string
		n       int
		corrupt func(s *Schedule)
		want    string
	}{
		{
			name: "duplicated round",
			n:    6,
			corrupt: func(s *Schedule) {
				s.Rounds[1].Pairings = s.Rounds[0].Pairings
			},
			want: "meet",
		},
		{
			name: "player paired twice in a round",
			n:    6,
			corrupt: func(s *Schedule) {
				s.Rounds[0].Pairings[1] = s.Rounds[0].Pairings[0]
			},
			want: "scheduled twice",
		},
		{
			name: "missing round",
			n:    6,
			corrupt: func(s *Schedule) {
				s.Rounds = s.Rounds[:len(s.Rounds)-1]
			},
			want: "rounds",
		},
		{
			name: "missing bye",
			n:    5,
			corrupt: func(s *Schedule) {
				s.Rounds[2].Bye = NoBye
			},
			want: "missing bye",
		},
		{
			name: "bye in even schedule",
			n:    6,
			corrupt: func(s *Schedule) {
				s.Rounds[0].Bye = 3
			},
			want: "unexpected bye",
		},
		{
			name: "non-canonical out-of-range pairing",
			n:    6,
			corrupt: func(s *Schedule) {
				s.Rounds[0].Pairings[0] = Pair{10, 3}
			},
			want: "invalid pairing",
		},
		{
			name: "bye player also paired",
			n:    5,
			corrupt: func(s *Schedule) {
				s.Rounds[0].Bye = s.Rounds[0].Pairings[0][0]
			},
			want: "scheduled twice",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sched, err := Generate(c.n)
			if err != nil {
				t.Fatalf("Generate(%d) returned error: %v", c.n, err)
			}
			c.corrupt(sched)
			err = Verify(sched)
			if err == nil {
				t.Fatal("Verify accepted a corrupted schedule")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Errorf("Verify = %q; want mention of %q", err, c.want)
			}
		})
	}
}
