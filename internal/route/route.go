// Package route maps URL-like paths to pages, applies the wildcard redirects
// of the site and keeps a back-history for the UI.
package route

import (
	"path"
	"strings"
)

// Page is a type-safe identifier for a screen of the site.
type Page int

const (
	Home Page = iota
	About
	BeyondEntry
	BeyondDeck
	Books
	Music
	Movies
	Sports
	Random
	Resume
	ResumeDetails
	Contact
	ContactForm
	Skills
	SkillsDetails
)

// Entry is one row of the route table.
type Entry struct {
	Path  string
	Page  Page
	Title string
}

var table = []Entry{
	{"/", Home, "Home"},
	{"/about", About, "About"},
	{"/beyond", BeyondEntry, "Special"},
	{"/beyond/overview", BeyondDeck, "Beyond the code"},
	{"/beyond/books", Books, "Books"},
	{"/beyond/music", Music, "Music"},
	{"/beyond/movies", Movies, "Movies"},
	{"/beyond/sports", Sports, "Sports & Adrenaline"},
	{"/beyond/random", Random, "Random Facts"},
	{"/resume", Resume, "Resume"},
	{"/resume/details", ResumeDetails, "Resume details"},
	{"/contact", Contact, "Contact"},
	{"/contact/form", ContactForm, "Contact form"},
	{"/skills", Skills, "Skills"},
	{"/skills/details", SkillsDetails, "Skills details"},
}

// redirects maps a section prefix to where unknown paths below it land.
var redirects = []struct {
	prefix string
	target string
}{
	{"/about/", "/about"},
	{"/beyond/", "/beyond/overview"},
	{"/resume/", "/resume/details"},
	{"/contact/", "/contact/form"},
	{"/skills/", "/skills/details"},
}

var byPath = func() map[string]Entry {
	m := make(map[string]Entry, len(table))
	for _, e := range table {
		m[e.Path] = e
	}
	return m
}()

// Table returns a copy of the route table in declaration order.
func Table() []Entry {
	return append([]Entry(nil), table...)
}

func (p Page) String() string {
	for _, e := range table {
		if e.Page == p {
			return e.Title
		}
	}
	return "unknown"
}

// Path returns the canonical path of p.
func (p Page) Path() string {
	for _, e := range table {
		if e.Page == p {
			return e.Path
		}
	}
	return "/"
}

// Clean normalizes p: leading slash, no trailing slash, no dot segments,
// no query or fragment.
func Clean(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// Resolve returns the entry p lands on after normalization and redirects.
// Every path resolves; unknown top-level paths go home.
func Resolve(p string) Entry {
	p = Clean(p)
	if e, ok := byPath[p]; ok {
		return e
	}
	for _, r := range redirects {
		if strings.HasPrefix(p, r.prefix) {
			return byPath[r.target]
		}
	}
	return byPath["/"]
}

// Known reports whether p names a route directly, without a redirect.
func Known(p string) bool {
	_, ok := byPath[Clean(p)]
	return ok
}

// Link is a navbar entry.
type Link struct {
	Label string
	Path  string
	Key   string // leader key binding
}

// Navbar is the top navigation, in display order.
var Navbar = []Link{
	{"Home", "/", "h"},
	{"About", "/about", "a"},
	{"Special", "/beyond", "b"},
	{"Resume", "/resume", "r"},
	{"Contact", "/contact", "c"},
	{"Skills", "/skills", "s"},
}

// Section returns the navbar link whose section contains p, so the navbar can
// mark it active. ok is false only when no link matches.
func Section(p string) (Link, bool) {
	p = Resolve(p).Path
	var best Link
	found := false
	for _, l := range Navbar {
		if p == l.Path || (l.Path != "/" && strings.HasPrefix(p, l.Path+"/")) {
			if !found || len(l.Path) > len(best.Path) {
				best, found = l, true
			}
		}
	}
	return best, found
}
