// Package content serves the informational pages (about, board, donation)
// from a YAML file maintained alongside the deployment.
package content

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrPageNotFound = errors.New("page not found")

type Page struct {
	Slug     string           `yaml:"slug" json:"slug"`
	Title    string           `yaml:"title" json:"title"`
	Body     string           `yaml:"body" json:"body"`
	Members  []BoardMember    `yaml:"members,omitempty" json:"members,omitempty"`
	Methods  []DonationMethod `yaml:"methods,omitempty" json:"methods,omitempty"`
	Sections []Section        `yaml:"sections,omitempty" json:"sections,omitempty"`
}

type Section struct {
	Heading string `yaml:"heading" json:"heading"`
	Body    string `yaml:"body" json:"body"`
}

type BoardMember struct {
	Name     string `yaml:"name" json:"name"`
	Role     string `yaml:"role" json:"role"`
	Bio      string `yaml:"bio" json:"bio,omitempty"`
	PhotoURL string `yaml:"photo_url" json:"photo_url,omitempty"`
}

// DonationMethod is informational only: payments happen elsewhere.
type DonationMethod struct {
	Kind    string `yaml:"kind" json:"kind"` // bank, paypal, in-person
	Label   string `yaml:"label" json:"label"`
	Details string `yaml:"details" json:"details"`
	URL     string `yaml:"url" json:"url,omitempty"`
}

type file struct {
	Pages []Page `yaml:"pages"`
}

// Pages is an immutable slug index.
type Pages struct {
	bySlug map[string]Page
	order  []string
}

// Load reads and indexes the pages file at path.
func Load(path string) (*Pages, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pages: %w", err)
	}
	return Parse(raw)
}

// Parse indexes a YAML document of the form `pages: [...]`. Slugs are
// required and must be unique.
func Parse(raw []byte) (*Pages, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse pages: %w", err)
	}

	p := &Pages{bySlug: make(map[string]Page, len(f.Pages))}
	for i, page := range f.Pages {
		page.Slug = strings.ToLower(strings.TrimSpace(page.Slug))
		if page.Slug == "" {
			return nil, fmt.Errorf("page %d: missing slug", i)
		}
		if _, dup := p.bySlug[page.Slug]; dup {
			return nil, fmt.Errorf("page %q: duplicate slug", page.Slug)
		}
		p.bySlug[page.Slug] = page
		p.order = append(p.order, page.Slug)
	}
	return p, nil
}

func (p *Pages) Get(slug string) (Page, error) {
	page, ok := p.bySlug[strings.ToLower(slug)]
	if !ok {
		return Page{}, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
	}
	return page, nil
}

// Slugs lists page slugs in file order.
func (p *Pages) Slugs() []string {
	return append([]string(nil), p.order...)
}
