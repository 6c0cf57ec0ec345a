/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/mikeb26/roundrobin-tdbot/internal"
)

// Pair is a single pairing of two participants, stored lower index
// first.
type Pair [2]int

// NewPair returns the canonical form of the pairing {a, b}.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{a, b}
}

// NoBye is the Round.Bye value when every participant plays.
const NoBye = -1

// Round is one round of play: disjoint pairings covering all
// participants, plus at most one bye when the participant count is odd.
type Round struct {
	Number   int
	Pairings []Pair
	Bye      int
	Date     time.Time
}

// Schedule is an all-play-all schedule: an ordered sequence of rounds
// in which every pair of participants meets exactly once.
type Schedule struct {
	NumPlayers int
	Rounds     []Round
}

var ErrTooFewPlayers = errors.New("at least 2 players are required")

// Generate builds a round-robin schedule for players 0..n-1 using the
// circle method: player at slot 0 stays fixed while the remaining slots
// rotate one position per round. Even n yields n-1 rounds of n/2
// pairings; odd n yields n rounds of (n-1)/2 pairings plus one bye.
func Generate(n int) (*Schedule, error) {
	return generate(n, nil)
}

// GenerateSeeded is Generate with a seed-determined initial arrangement
// of the circle. Identical (n, seed) inputs always produce identical
// schedules.
func GenerateSeeded(n int, seed int64) (*Schedule, error) {
	if n < 2 {
		return nil, ErrTooFewPlayers
	}
	rng := rand.New(rand.NewSource(seed))
	return generate(n, rng.Perm(n))
}

func generate(n int, order []int) (*Schedule, error) {
	if n < 2 {
		return nil, ErrTooFewPlayers
	}

	// Round odd player counts up to even by seating a synthetic
	// player; whoever draws it sits out that round.
	m := n
	byeID := NoBye
	if m%2 != 0 {
		m++
		byeID = n
	}

	circle := make([]int, m)
	for i := 0; i < n; i++ {
		if order != nil {
			circle[i] = order[i]
		} else {
			circle[i] = i
		}
	}
	if byeID != NoBye {
		circle[m-1] = byeID
	}

	rounds := make([]Round, 0, m-1)
	for r := 0; r < m-1; r++ {
		rd := Round{Number: r + 1, Bye: NoBye}
		record := func(a, b int) {
			if a == byeID {
				rd.Bye = b
			} else if b == byeID {
				rd.Bye = a
			} else {
				rd.Pairings = append(rd.Pairings, NewPair(a, b))
			}
		}
		// fixed slot 0 plays the last rotating slot; the rest pair up
		// symmetrically across the circle
		record(circle[0], circle[m-1])
		for k := 1; k < m/2; k++ {
			record(circle[k], circle[m-1-k])
		}
		rotate(circle)
		rounds = append(rounds, rd)
	}

	return &Schedule{NumPlayers: n, Rounds: rounds}, nil
}

// rotate advances the rotating block (slots 1..m-1) by one position,
// wrapping the last participant around to slot 1.
func rotate(circle []int) {
	m := len(circle)
	last := circle[m-1]
	copy(circle[2:], circle[1:m-1])
	circle[1] = last
}

// roundAlias is the wire form of a Round; Bye is null when every
// participant plays and dates are emitted only when assigned.
type roundAlias struct {
	Number   int      `json:"round"`
	Pairings [][2]int `json:"pairings"`
	Bye      *int     `json:"bye"`
	Date     string   `json:"date,omitempty"`
}

func (rd Round) MarshalJSON() ([]byte, error) {
	aux := roundAlias{
		Number:   rd.Number,
		Pairings: make([][2]int, 0, len(rd.Pairings)),
	}
	for _, p := range rd.Pairings {
		aux.Pairings = append(aux.Pairings, [2]int(p))
	}
	if rd.Bye != NoBye {
		bye := rd.Bye
		aux.Bye = &bye
	}
	if !rd.Date.IsZero() {
		aux.Date = rd.Date.Format("2006-01-02")
	}
	return json.Marshal(aux)
}

func (rd *Round) UnmarshalJSON(data []byte) error {
	var aux roundAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("Round unmarshal: %w", err)
	}
	rd.Number = aux.Number
	rd.Pairings = nil
	for _, p := range aux.Pairings {
		rd.Pairings = append(rd.Pairings, Pair(p))
	}
	rd.Bye = NoBye
	if aux.Bye != nil {
		rd.Bye = *aux.Bye
	}
	var err error
	rd.Date, err = internal.ParseDateOrZero(aux.Date)
	if err != nil {
		return fmt.Errorf("parsing Round.Date: %w", err)
	}
	return nil
}

func (s *Schedule) MarshalJSON() ([]byte, error) {
	aux := struct {
		NumPlayers int     `json:"numPlayers"`
		Rounds     []Round `json:"rounds"`
	}{
		NumPlayers: s.NumPlayers,
		Rounds:     s.Rounds,
	}
	return json.Marshal(aux)
}
