// Package corpus loads statement corpora from INDRA-style JSON files.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/verdipratama/indra/internal/cache"
	"github.com/verdipratama/indra/internal/model"
)

// Loader reads statement corpora from disk, normalizes evidence text and
// memoizes parsed results
type Loader struct {
	cache cache.Cache // nil disables caching
	ttl   time.Duration
}

// NewLoader creates a new corpus loader. Pass a nil cache to always parse
// from disk.
func NewLoader(c cache.Cache, ttl time.Duration) *Loader {
	return &Loader{
		cache: c,
		ttl:   ttl,
	}
}

// Load reads a corpus file: a JSON array of statement objects, each with a
// "type" and an "evidence" list of {"source_api": ...} items
func (l *Loader) Load(path string) ([]model.Statement, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat corpus: %w", err)
	}

	key := cache.Key(path, info.ModTime())
	if l.cache != nil {
		if stmts, found := l.cache.Get(key); found {
			return stmts, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var stmts []model.Statement
	if err := json.Unmarshal(data, &stmts); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}

	for i := range stmts {
		if stmts[i].Type == "" {
			return nil, fmt.Errorf("corpus %s: statement %d: missing type", path, i)
		}
		for j := range stmts[i].Evidence {
			if stmts[i].Evidence[j].SourceAPI == "" {
				return nil, fmt.Errorf("corpus %s: statement %d: evidence %d: missing source_api", path, i, j)
			}
			stmts[i].Evidence[j].Text = CleanText(stmts[i].Evidence[j].Text)
		}
	}

	if l.cache != nil {
		l.cache.Set(key, stmts, l.ttl)
	}

	return stmts, nil
}

// CleanText strips embedded markup from evidence text. Reader output often
// carries XML/HTML fragments around entity mentions; only the visible text
// is kept.
func CleanText(text string) string {
	if !strings.Contains(text, "<") {
		return strings.TrimSpace(text)
	}

	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return strings.TrimSpace(text)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			t := strings.TrimSpace(n.Data)
			if t != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return buf.String()
}
