// Package content holds the copy of the site: profile, greetings, page text and
// the lists shown behind the beyond deck. A default document is embedded in the
// binary; a YAML file can replace it at runtime.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"folio/internal/deck"
	"folio/internal/route"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid content")

//go:embed default.yaml
var defaultYAML []byte

// Content is the whole site copy.
type Content struct {
	Profile    Profile       `yaml:"profile"`
	Greetings  []string      `yaml:"greetings"`
	Highlights []string      `yaml:"highlights"`
	About      string        `yaml:"about"`
	Resume     []ResumeEntry `yaml:"resume"`
	Skills     []SkillGroup  `yaml:"skills"`
	Contact    Contact       `yaml:"contact"`
	Cards      []Card        `yaml:"cards"`
	Books      []Book        `yaml:"books"`
	Playlists  []Playlist    `yaml:"playlists"`
	Sports     []string      `yaml:"sports"`
	Facts      []string      `yaml:"facts"`
	Movies     []Movie       `yaml:"movies"`
}

type Profile struct {
	Name    string   `yaml:"name"`
	Tagline string   `yaml:"tagline"`
	Socials []Social `yaml:"socials"`
}

type Social struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type ResumeEntry struct {
	Title   string `yaml:"title"`
	Place   string `yaml:"place"`
	Period  string `yaml:"period"`
	Summary string `yaml:"summary"`
}

type SkillGroup struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

type Contact struct {
	Intro string   `yaml:"intro"`
	Links []Social `yaml:"links"`
}

// Card is one card of the beyond deck as written in the document.
type Card struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Image    string `yaml:"image"`
	Route    string `yaml:"route"`
}

type Book struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Note   string `yaml:"note"`
}

type Playlist struct {
	Title string `yaml:"title"`
	Emoji string `yaml:"emoji"`
	Mood  string `yaml:"mood"`
}

type Movie struct {
	Title string `yaml:"title"`
	Year  int    `yaml:"year"`
	Note  string `yaml:"note"`
}

// Default returns the embedded document. It panics if the embedded document is
// broken, which the tests guard against.
func Default() *Content {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded default: %v", err))
	}
	return c
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the invariants the UI relies on.
func (c *Content) Validate() error {
	if len(c.Cards) < 2 {
		return fmt.Errorf("%w: need at least 2 cards, got %d", ErrInvalid, len(c.Cards))
	}
	for i, card := range c.Cards {
		if strings.TrimSpace(card.Title) == "" {
			return fmt.Errorf("%w: card %d has no title", ErrInvalid, i)
		}
		if card.Route == "" || route.Resolve(card.Route).Path != card.Route {
			return fmt.Errorf("%w: card %q routes to unknown path %q", ErrInvalid, card.Title, card.Route)
		}
	}
	return nil
}

// DeckCards converts the cards for a navigator. Indices follow document order.
func (c *Content) DeckCards() []deck.Card {
	out := make([]deck.Card, len(c.Cards))
	for i, card := range c.Cards {
		out[i] = deck.Card{
			Index:       i,
			Title:       card.Title,
			Subtitle:    card.Subtitle,
			ImageRef:    card.Image,
			TargetRoute: card.Route,
		}
	}
	return out
}
