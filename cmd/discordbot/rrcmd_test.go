/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

// scheduleInteraction builds an /rr schedule interaction; option values
// carry JSON types (float64 for integers) as they would off the wire.
func scheduleInteraction(opts []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: string(RrCmd),
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{
					Name:    string(RrScheduleCmd),
					Type:    discordgo.ApplicationCommandOptionSubCommand,
					Options: opts,
				},
			},
		},
	}
}

func TestRrScheduleCmd(t *testing.T) {
	ctx := context.Background()

	inter := scheduleInteraction([]*discordgo.ApplicationCommandInteractionDataOption{
		{
			Name:  "players",
			Type:  discordgo.ApplicationCommandOptionInteger,
			Value: float64(4),
		},
	})
	resp := rrCmdHandler(ctx, inter)
	if resp.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Errorf("expected ephemeral response by default")
	}
	for _, want := range []string{"```", "Round 1", "Round 3", "vs."} {
		if !strings.Contains(resp.Data.Content, want) {
			t.Errorf("response missing %q:\n%s", want, resp.Data.Content)
		}
	}
}

func TestRrScheduleCmdBroadcast(t *testing.T) {
	ctx := context.Background()

	inter := scheduleInteraction([]*discordgo.ApplicationCommandInteractionDataOption{
		{
			Name:  "players",
			Type:  discordgo.ApplicationCommandOptionInteger,
			Value: float64(3),
		},
		{
			Name:  "broadcast",
			Type:  discordgo.ApplicationCommandOptionBoolean,
			Value: true,
		},
	})
	resp := rrCmdHandler(ctx, inter)
	if resp.Data.Flags != 0 {
		t.Errorf("expected broadcast response to clear ephemeral flag")
	}
	if !strings.Contains(resp.Data.Content, "BYE") {
		t.Errorf("response missing bye line:\n%s", resp.Data.Content)
	}
}

func TestRrScheduleCmdErrors(t *testing.T) {
	ctx := context.Background()

	// missing players option
	resp := rrCmdHandler(ctx, scheduleInteraction(nil))
	if !strings.Contains(resp.Data.Content, "player count") {
		t.Errorf("expected player count prompt, got:\n%s", resp.Data.Content)
	}

	// too few players
	inter := scheduleInteraction([]*discordgo.ApplicationCommandInteractionDataOption{
		{
			Name:  "players",
			Type:  discordgo.ApplicationCommandOptionInteger,
			Value: float64(1),
		},
	})
	resp = rrCmdHandler(ctx, inter)
	if !strings.Contains(resp.Data.Content, "Error generating schedule") {
		t.Errorf("expected generation error, got:\n%s", resp.Data.Content)
	}
}

// TestRrScheduleCmdCapsPlayers verifies that an oversized player count
// from the wire is rejected outright; the handler must not pay the
// quadratic generation cost for output that would be truncated anyway.
func TestRrScheduleCmdCapsPlayers(t *testing.T) {
	ctx := context.Background()

	for _, players := range []int{maxSchedulePlayers + 1, 4000} {
		inter := scheduleInteraction([]*discordgo.ApplicationCommandInteractionDataOption{
			{
				Name:  "players",
				Type:  discordgo.ApplicationCommandOptionInteger,
				Value: float64(players),
			},
		})
		start := time.Now()
		resp := rrCmdHandler(ctx, inter)
		elapsed := time.Since(start)

		if !strings.Contains(resp.Data.Content, "at most") {
			t.Errorf("players=%d: expected cap error, got:\n%s", players,
				resp.Data.Content)
		}
		if strings.Contains(resp.Data.Content, "Round 1") {
			t.Errorf("players=%d: schedule was generated despite cap", players)
		}
		if elapsed > time.Second {
			t.Errorf("players=%d: rejection took %v", players, elapsed)
		}
	}

	// the cap itself must still produce a full schedule
	inter := scheduleInteraction([]*discordgo.ApplicationCommandInteractionDataOption{
		{
			Name:  "players",
			Type:  discordgo.ApplicationCommandOptionInteger,
			Value: float64(maxSchedulePlayers),
		},
	})
	resp := rrCmdHandler(ctx, inter)
	if !strings.Contains(resp.Data.Content, "Round 1") {
		t.Errorf("players=%d: expected a schedule, got:\n%s",
			maxSchedulePlayers, resp.Data.Content)
	}
}

func TestCmdRegistrationHash(t *testing.T) {
	cmdA := &discordgo.ApplicationCommand{Name: "rr", Description: "one"}
	cmdB := &discordgo.ApplicationCommand{Name: "rr", Description: "two"}

	hashA1, err := cmdRegistrationHash(cmdA)
	if err != nil {
		t.Fatalf("cmdRegistrationHash returned error: %v", err)
	}
	hashA2, err := cmdRegistrationHash(cmdA)
	if err != nil {
		t.Fatalf("cmdRegistrationHash returned error: %v", err)
	}
	if hashA1 != hashA2 {
		t.Errorf("hash is not stable: %v vs %v", hashA1, hashA2)
	}

	hashB, err := cmdRegistrationHash(cmdB)
	if err != nil {
		t.Fatalf("cmdRegistrationHash returned error: %v", err)
	}
	if hashA1 == hashB {
		t.Errorf("distinct commands share hash %v", hashA1)
	}

	// no registration has been recorded for this definition, so an
	// update is due
	if !shouldUpdateCmdRegistration(cmdA) {
		t.Errorf("expected update for unrecorded command hash %v", hashA1)
	}
}

func TestTruncateContent(t *testing.T) {
	short := "short message"
	if got := truncateContent(short); got != short {
		t.Errorf("short content should be unchanged, got %q", got)
	}

	long := strings.Repeat("x", 4000)
	got := truncateContent(long)
	if len([]rune(got)) > 2000 {
		t.Errorf("truncated content still too long: %d runes",
			len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated content missing ellipsis")
	}
}
