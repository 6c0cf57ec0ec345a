/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/roundrobin-tdbot/schedule"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":     handleHelp,
	"schedule": handleSchedule,
	"verify":   handleVerify,
	"roster":   handleRoster,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

func handleSchedule(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	players := fs.Int("players", 0, "Number of players (anonymous schedule)")
	namesPath := fs.String("names", "",
		"Path to a newline-separated names file")
	rosterURL := fs.String("url", "",
		"URL of a registration page to scrape names from")
	seedStr := fs.String("seed", "",
		"Seed for the initial arrangement (omit for natural order)")
	jsonOut := fs.Bool("json", false, "Emit the schedule as JSON")
	startDate := fs.String("start-date", "",
		"Date of the first round (e.g. 2026-09-01)")
	intervalDays := fs.Int("interval-days", 7, "Days between rounds")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	ros := resolveRoster(ctx, *namesPath, *rosterURL)
	n := *players
	if ros != nil {
		if n != 0 && n != ros.Len() {
			fmt.Fprintf(os.Stderr,
				"--players %d conflicts with roster of %d names\n", n,
				ros.Len())
			os.Exit(1)
		}
		n = ros.Len()
	}
	if n == 0 {
		fmt.Fprintln(os.Stderr,
			"Please provide one of --players, --names, or --url.")
		fs.Usage()
		os.Exit(1)
	}

	var sched *schedule.Schedule
	var err error
	if *seedStr != "" {
		seed, perr := strconv.ParseInt(*seedStr, 10, 64)
		if perr != nil {
			log.Fatalf("Invalid --seed %q: %v", *seedStr, perr)
		}
		sched, err = schedule.GenerateSeeded(n, seed)
	} else {
		sched, err = schedule.Generate(n)
	}
	if err != nil {
		log.Fatalf("Error generating schedule for %d players: %v", n, err)
	}

	if *startDate != "" {
		if err := schedule.AssignDatesFromString(sched, *startDate,
			*intervalDays); err != nil {
			log.Fatalf("Error assigning round dates: %v", err)
		}
	}

	if *jsonOut {
		out, err := json.MarshalIndent(sched, "", "  ")
		if err != nil {
			log.Fatalf("Error marshaling schedule: %v", err)
		}
		fmt.Printf("%s\n", out)
	} else {
		fmt.Print(schedule.BuildScheduleOutput(sched, ros))
	}
}

func handleVerify(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	min := fs.Int("min", 2, "Smallest player count to check")
	max := fs.Int("max", 100, "Largest player count to check")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *min < 2 || *max < *min {
		fmt.Fprintln(os.Stderr, "Please provide 2 <= --min <= --max.")
		fs.Usage()
		os.Exit(1)
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for n := *min; n <= *max; n++ {
		n := n
		g.Go(func() error {
			sched, err := schedule.Generate(n)
			if err != nil {
				return fmt.Errorf("generate failed for %d players: %w", n, err)
			}
			if err := schedule.Verify(sched); err != nil {
				return fmt.Errorf("%d players: %w", n, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Verification failed: %v", err)
	}

	fmt.Printf("Verification complete: player counts from %d to %d checked.\n",
		*min, *max)
}

func handleRoster(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("roster", flag.ExitOnError)
	namesPath := fs.String("names", "",
		"Path to a newline-separated names file")
	rosterURL := fs.String("url", "",
		"URL of a registration page to scrape names from")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	ros := resolveRoster(ctx, *namesPath, *rosterURL)
	if ros == nil {
		fmt.Fprintln(os.Stderr, "Please provide one of --names or --url.")
		fs.Usage()
		os.Exit(1)
	}

	fmt.Print(schedule.BuildRosterOutput(ros))
}

// resolveRoster loads a roster from whichever source was specified, or
// returns nil when neither was.
func resolveRoster(ctx context.Context, namesPath, rosterURL string) *schedule.Roster {
	if namesPath != "" && rosterURL != "" {
		fmt.Fprintln(os.Stderr, "--names and --url are mutually exclusive.")
		os.Exit(1)
	}
	if namesPath != "" {
		ros, err := schedule.LoadRoster(namesPath)
		if err != nil {
			log.Fatalf("Error loading roster: %v", err)
		}
		return ros
	}
	if rosterURL != "" {
		ros, err := schedule.FetchRoster(ctx, rosterURL)
		if err != nil {
			log.Fatalf("Error fetching roster: %v", err)
		}
		return ros
	}
	return nil
}
