package menu

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/hammamikhairi/drivethru/internal/domain"
	"github.com/hammamikhairi/drivethru/internal/logger"
)

// DefaultMenuURL is the public full-menu page the HTTP source reads.
const DefaultMenuURL = "https://www.mcdonalds.com/us/en-us/full-menu.html"

// Compile-time interface check.
var _ domain.MenuSource = (*HTTPSource)(nil)

// HTTPSource fetches the menu page and extracts raw item names per
// category. The page layout it understands is an h2 heading carrying a
// category name followed by a list of item names. Anything that goes
// wrong -- network, status, markup -- comes back as an error; the engine
// degrades to an empty catalog.
type HTTPSource struct {
	url  string
	http *http.Client
	log  *logger.Logger
}

// HTTPOption configures the HTTPSource.
type HTTPOption func(*HTTPSource)

// WithURL overrides the menu page URL.
func WithURL(url string) HTTPOption {
	return func(s *HTTPSource) { s.url = url }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSource) { s.http.Timeout = d }
}

// NewHTTPSource creates a menu source reading from the live menu page.
func NewHTTPSource(log *logger.Logger, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		url:  DefaultMenuURL,
		http: &http.Client{Timeout: 15 * time.Second},
		log:  log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch downloads and parses the menu page.
func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.RawCategory, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("menu: create request: %w", err)
	}

	s.log.Debug("menu: GET %s", s.url)
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("menu: fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("menu: unexpected status %s", resp.Status)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("menu: parse page: %w", err)
	}

	raw := extract(doc)
	total := 0
	for _, rc := range raw {
		total += len(rc.Items)
	}
	s.log.Info("menu: extracted %d items across %d categories", total, len(raw))
	return raw, nil
}

// extract walks the document once, tracking which known category the
// last h2 heading named, and collects li text under it. Categories come
// out in the order their headings appear on the page.
func extract(doc *html.Node) []domain.RawCategory {
	known := make(map[string]bool, len(Categories))
	for _, name := range Categories {
		known[name] = true
	}

	items := make(map[string][]string)
	var order []string
	current := ""

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h2":
				heading := strings.TrimSpace(text(n))
				if known[heading] {
					if _, seen := items[heading]; !seen {
						order = append(order, heading)
						items[heading] = nil
					}
					current = heading
				} else {
					current = ""
				}
			case "li":
				if current != "" {
					if name := strings.TrimSpace(text(n)); name != "" {
						items[current] = append(items[current], name)
					}
					return // don't descend into nested lists
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	out := make([]domain.RawCategory, 0, len(order))
	for _, name := range order {
		out = append(out, domain.RawCategory{Name: name, Items: items[name]})
	}
	return out
}

// text concatenates all text nodes under n.
func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(text(c))
	}
	return b.String()
}
