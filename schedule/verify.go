/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package schedule

import (
	"fmt"
)

// Verify checks that s is a valid round-robin schedule: every pair of
// participants meets exactly once, no participant plays twice in a
// round, and (for odd counts) every participant sits out exactly once.
// A non-nil return from a Generate-produced schedule indicates a bug in
// the generator, not bad input.
func Verify(s *Schedule) error {
	n := s.NumPlayers
	if n < 2 {
		return fmt.Errorf("invalid player count %d", n)
	}

	wantRounds := n - 1
	pairsPerRound := n / 2
	if n%2 != 0 {
		wantRounds = n
		pairsPerRound = (n - 1) / 2
	}
	if len(s.Rounds) != wantRounds {
		return fmt.Errorf("expected %d rounds, got %d", wantRounds,
			len(s.Rounds))
	}

	met := make(map[Pair]int)
	byes := make(map[int]int)
	for _, rd := range s.Rounds {
		if len(rd.Pairings) != pairsPerRound {
			return fmt.Errorf("round %d: expected %d pairings, got %d",
				rd.Number, pairsPerRound, len(rd.Pairings))
		}
		seen := make(map[int]bool)
		if rd.Bye != NoBye {
			if n%2 == 0 {
				return fmt.Errorf("round %d: unexpected bye for player %d",
					rd.Number, rd.Bye)
			}
			seen[rd.Bye] = true
			byes[rd.Bye]++
		} else if n%2 != 0 {
			return fmt.Errorf("round %d: missing bye", rd.Number)
		}
		for _, p := range rd.Pairings {
			if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n ||
				p[0] == p[1] {
				return fmt.Errorf("round %d: invalid pairing %v", rd.Number, p)
			}
			for _, player := range p {
				if seen[player] {
					return fmt.Errorf("round %d: player %d scheduled twice",
						rd.Number, player)
				}
				seen[player] = true
			}
			met[NewPair(p[0], p[1])]++
		}
	}

	// every unordered pair exactly once
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			switch met[Pair{a, b}] {
			case 0:
				return fmt.Errorf("players %d and %d never meet", a, b)
			case 1:
			default:
				return fmt.Errorf("players %d and %d meet %d times", a, b,
					met[Pair{a, b}])
			}
		}
	}

	if n%2 != 0 {
		for player := 0; player < n; player++ {
			if byes[player] != 1 {
				return fmt.Errorf("player %d has %d byes, expected 1", player,
					byes[player])
			}
		}
	}

	return nil
}
