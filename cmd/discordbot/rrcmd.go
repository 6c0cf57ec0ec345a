/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/roundrobin-tdbot/schedule"
)

type RrSubCommand string

const (
	RrAboutCmd    RrSubCommand = "about"
	RrHelpCmd     RrSubCommand = "help"
	RrScheduleCmd RrSubCommand = "schedule"
)

var rrSubCmdHdlrs = map[RrSubCommand]CmdHandler{
	RrAboutCmd:    rrAboutCmdHandler,
	RrHelpCmd:     rrHelpCmdHandler,
	RrScheduleCmd: rrScheduleCmdHandler,
}

func rrCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := rrHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := rrSubCmdHdlrs[RrSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

//go:embed about.txt
var aboutText string

func rrAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func rrHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(helpText)

	return resp
}

// Schedules beyond this size blow well past the 2k message limit, and
// generation cost grows quadratically with an attacker-supplied count.
const maxSchedulePlayers = 40

// rrScheduleCmdHandler handles the /rr schedule command to generate a
// round robin schedule for a given number of players
func rrScheduleCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
	data := inter.ApplicationCommandData()
	broadcast := false // default
	var players int64
	var seed *int64
	var startDate string
	found := false
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			switch opt.Name {
			case "players":
				players = opt.IntValue()
				found = true
			case "seed":
				s := opt.IntValue()
				seed = &s
			case "startdate":
				startDate = opt.StringValue()
			case "broadcast":
				broadcast = opt.BoolValue()
			}
		}
	}
	if !found {
		resp.Data.Content = "Please provide a player count."
		log.Printf("discordbot.schedule: %v", resp.Data.Content)
		return resp
	}
	if players > maxSchedulePlayers {
		resp.Data.Content = fmt.Sprintf("Error generating schedule for %d players: at most %d players are supported here",
			players, maxSchedulePlayers)
		log.Printf("discordbot.schedule: %v", resp.Data.Content)
		return resp
	}

	var sched *schedule.Schedule
	var err error
	if seed != nil {
		sched, err = schedule.GenerateSeeded(int(players), *seed)
	} else {
		sched, err = schedule.Generate(int(players))
	}
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error generating schedule for %d players: %v",
			players, err)
		log.Printf("discordbot.schedule: %v", resp.Data.Content)
		return resp
	}

	if startDate != "" {
		if err := schedule.AssignDatesFromString(sched, startDate,
			7 /* weekly */); err != nil {
			resp.Data.Content = fmt.Sprintf("Error assigning round dates: %v",
				err)
			log.Printf("discordbot.schedule: %v", resp.Data.Content)
			return resp
		}
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content =
		fmt.Sprintf("```\n%s```",
			truncateContent(schedule.BuildScheduleOutput(sched, nil)))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
