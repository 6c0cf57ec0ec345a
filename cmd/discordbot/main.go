/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"
)

// Bot credentials come from the environment; none of them belong in the
// repository.
const (
	EnvBotToken  = "DISCORD_BOT_TOKEN"
	EnvPublicKey = "DISCORD_PUBLIC_KEY"
	EnvAppId     = "DISCORD_APP_ID"
)

// Set to the registered command id after first registration so
// subsequent deploys edit rather than re-create.
const RrCmdId = ""

var botPubKey ed25519.PublicKey
var botAppId string

var client *discordgo.Session

type TopLevelCommand string

const (
	RrCmd TopLevelCommand = "rr"
)

type CmdHandler func(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse

var topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
	RrCmd: rrCmdHandler,
}

func interactionHandler(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, botPubKey) {
		log.Printf("discordbot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("discordbot.int: failed to read request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		log.Printf("discordbot.int: failed to unmarshal interaction: err:%v body:%v",
			err, body)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	if inter.Type == discordgo.InteractionPing {
		resp.Type = discordgo.InteractionResponsePong
	} else if inter.Type == discordgo.InteractionApplicationCommand {
		hdlr, ok :=
			topLevelCmdHdlrs[TopLevelCommand(inter.ApplicationCommandData().Name)]
		if !ok {
			resp.Type = discordgo.InteractionResponseChannelMessageWithSource
			resp.Data = &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("unknown command '%v'",
					inter.ApplicationCommandData().Name),
				Flags: discordgo.MessageFlagsEphemeral,
			}
		} else {
			resp = hdlr(r.Context(), &inter)
		}
	} else {
		log.Printf("discordbot.int: unimplemented interaction type %v: inter:%v",
			inter.Type, inter)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		log.Printf("discordbot.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(rawResp)
	if err != nil {
		log.Printf("discordbot.int: failed to write resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func init() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
}

// initCreds loads bot credentials from the environment; deliberately
// not done in init() so the test binary can run without them.
func initCreds() {
	pubKeyText := os.Getenv(EnvPublicKey)
	if pubKeyText == "" {
		log.Fatalf("discordbot.init: %v is not set", EnvPublicKey)
	}
	pubKeyBytes, err := hex.DecodeString(pubKeyText)
	if err != nil {
		log.Fatalf("discordbot.init: Failed to parse public key: %v", err)
	}
	botPubKey = ed25519.PublicKey(pubKeyBytes)

	botAppId = os.Getenv(EnvAppId)
	if botAppId == "" {
		log.Fatalf("discordbot.init: %v is not set", EnvAppId)
	}

	token := os.Getenv(EnvBotToken)
	if token == "" {
		log.Fatalf("discordbot.init: %v is not set", EnvBotToken)
	}
	client, err = discordgo.New("Bot " + token)
	if err != nil {
		log.Fatalf("discordbot.init: Failed to initialize discord client: %v",
			err)
	}
}

// Hash of the command definition as of the last registration update;
// refresh from the discordbot.reg log line whenever the definition
// changes.
const lastCmdUpdateHash = ""

// cmdRegistrationHash returns a stable hash of the marshaled command
// definition.
func cmdRegistrationHash(cmd *discordgo.ApplicationCommand) (string, error) {
	cmdJson, err := json.Marshal(cmd)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(cmdJson)

	return hex.EncodeToString(sum[:]), nil
}

func shouldUpdateCmdRegistration(cmd *discordgo.ApplicationCommand) bool {
	hash, err := cmdRegistrationHash(cmd)
	if err != nil {
		log.Fatalf("discordbot.reg: failed to marshal cmd: %v", err)
		return false
	}

	shouldUpdate := (hash != lastCmdUpdateHash)

	if shouldUpdate {
		log.Printf("discordbot.reg: updating cmd reg; please update lastCmdUpdateHash to %v",
			hash)
	}

	return shouldUpdate
}

func registerSlashCommands() {
	rrCmd := &discordgo.ApplicationCommand{
		Name:        string(RrCmd),
		Description: "Round robin scheduling commands; try /rr help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(RrHelpCmd),
				Description: "Show usage for rr",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(RrAboutCmd),
				Description: "Show information about roundrobin-tdbot",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(RrScheduleCmd),
				Description: "Generate a round robin schedule",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "players",
						Description: "Number of players (at least 2)",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "seed",
						Description: "Seed for the initial arrangement (default is natural order)",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "startdate",
						Description: "Date of round 1; later rounds follow weekly",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "broadcast",
						Description: "Share with the rest of the channel instead of only to you (default is false)",
						Required:    false,
					},
				},
			},
		},
	}

	if RrCmdId == "" {
		cmd, err := client.ApplicationCommandCreate(botAppId, "", rrCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to register %v: %v", rrCmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: registered %v(cmdID:%v); please set RrCmdId",
			cmd.Name, cmd.ID)
	} else if shouldUpdateCmdRegistration(rrCmd) {
		cmd, err := client.ApplicationCommandEdit(botAppId, "", RrCmdId, rrCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to update %v: %v", rrCmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: updated %v(cmdID:%v)", cmd.Name, cmd.ID)
	}
}

func main() {
	initCreds()
	go registerSlashCommands()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	log.Printf("discordbot.main: starting server on %v:8080", hostname)

	http.HandleFunc("/DiscordBot/Interaction", interactionHandler)
	if err := http.ListenAndServe(":8080", nil); err != nil {
		log.Fatalf("discordbot.main: Serve failed: %v", err)
	}

	log.Printf("discordbot.main: exiting")
}
