package scraper

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

const (
	UserAgent = "matdraft/1.0 (github.com/kdfrederick/matdraft)"
	Timeout   = 30 * time.Second
)

var (
	// Lines worth keeping from a results page
	matchLinePattern  = regexp.MustCompile(`(Champ|Cons)\. Round \d+ - |(1st|2nd|3rd|4th|5th|6th|7th|8th) Place Match - `)
	weightLinePattern = regexp.MustCompile(`^(\d{2,3}|DH)(?:\s*lbs\.?)?$`)
)

// Scraper fetches and filters tournament results pages
type Scraper struct {
	client *http.Client
}

// New creates a new Scraper instance
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// FetchTranscript downloads a results page and returns the transcript lines
// found in it, newline-joined in page order.
func (s *Scraper) FetchTranscript(url string) (string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.extractTranscript(resp.Body)
}

// extractTranscript pulls transcript lines out of page HTML
func (s *Scraper) extractTranscript(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	var lines []string
	seen := make(map[string]bool)

	keep := func(text string) {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || seen[line] {
				continue
			}
			if matchLinePattern.MatchString(line) || weightLinePattern.MatchString(line) {
				seen[line] = true
				lines = append(lines, line)
			}
		}
	}

	// Results pages usually carry the transcript in <pre> or table cells;
	// fall back to the whole body text when neither yields anything.
	doc.Find("pre, td, li, p").Each(func(i int, sel *goquery.Selection) {
		keep(sel.Text())
	})
	if len(lines) == 0 {
		keep(doc.Find("body").Text())
	}

	logrus.WithField("lines", len(lines)).Debug("extracted transcript from page")

	if len(lines) == 0 {
		return "", fmt.Errorf("no transcript lines found in page")
	}
	return strings.Join(lines, "\n"), nil
}
