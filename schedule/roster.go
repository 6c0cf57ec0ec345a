/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package schedule

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mikeb26/roundrobin-tdbot/internal"
)

// Roster is an ordered list of participant display names; a
// participant's roster position is its index in the generated schedule.
type Roster struct {
	Names []string
}

const rosterCacheTTL = 15 * time.Minute

// LoadRoster reads a newline-separated names file; blank lines are
// ignored.
func LoadRoster(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open roster %v: %w", path, err)
	}
	defer f.Close()

	ros := &Roster{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		ros.Names = append(ros.Names, internal.NormalizeName(name))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read roster %v: %w", path, err)
	}
	if len(ros.Names) == 0 {
		return nil, fmt.Errorf("roster %v contains no names", path)
	}

	return ros, nil
}

// FetchRoster scrapes participant names from the members table of a
// registration page. Responses are served through the cached HTTP
// client so repeated invocations against the same page don't hammer
// the origin.
func FetchRoster(ctx context.Context, url string) (*Roster, error) {
	client := internal.NewCachedHttpClient(ctx, rosterCacheTTL)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch roster (new): %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch roster (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch %v: http status: %v", url,
			resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to parse roster page: %w", err)
	}

	return parseRoster(doc, url)
}

// parseRoster extracts names from the registration members table.
func parseRoster(doc *goquery.Document, url string) (*Roster, error) {
	table := doc.Find("table#members")
	if table.Length() == 0 {
		return nil, fmt.Errorf("no members table found at %v", url)
	}

	// locate the name column from the header; registration pages
	// typically order columns number, name, rating
	nameIdx := 1
	table.Find("thead th").Each(func(i int, s *goquery.Selection) {
		if strings.EqualFold(strings.TrimSpace(s.Text()), "name") {
			nameIdx = i
		}
	})

	ros := &Roster{}
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() <= nameIdx {
			return
		}
		name := strings.TrimSpace(cells.Eq(nameIdx).Text())
		if name == "" {
			return
		}
		ros.Names = append(ros.Names, internal.NormalizeName(name))
	})
	if len(ros.Names) == 0 {
		return nil, fmt.Errorf("members table at %v contains no names", url)
	}

	return ros, nil
}

func (r *Roster) Len() int {
	return len(r.Names)
}

// Name returns the display name for a participant index, falling back
// to a numbered placeholder when no roster entry exists.
func (r *Roster) Name(i int) string {
	if r != nil && i >= 0 && i < len(r.Names) {
		return r.Names[i]
	}
	return fmt.Sprintf("Player %d", i+1)
}
