package ui

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/route"
)

// Leader is the first part of every menu sequence.
const Leader = "SPC"

// binding is one registered key sequence.
type binding struct {
	cmd   tea.Cmd
	desc  string
	pages []route.Page // empty = every page
}

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs notation: "SPC p b" is space, then p, then b.
// Single keys look like "q", "backspace", "ctrl+c".
type KeybindRegistry struct {
	bindings map[string]binding
	groups   map[string]string // sequence prefix -> submenu label
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]binding),
		groups:   make(map[string]string),
	}
}

// Bind registers seq without a description. Rebinding replaces.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDescForPages(seq, cmd, "", nil)
}

// BindWithDesc registers seq on every page.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForPages(seq, cmd, desc, nil)
}

// BindWithDescForPages registers seq whose hint only shows on pages.
// The binding itself fires wherever it is typed.
func (r *KeybindRegistry) BindWithDescForPages(seq string, cmd tea.Cmd, desc string, pages []route.Page) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, pages: pages}
}

// Group labels the submenu opened by prefix, e.g. "SPC p" -> "Beyond pages".
func (r *KeybindRegistry) Group(prefix, label string) {
	r.groups[normalizeSeq(prefix)] = label
}

// Lookup returns the command bound to seq, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// HasPrefix reports whether a longer sequence continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for s := range r.bindings {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns the next key of every sequence below currentSeq that
// applies to page, mapped to its description. An empty currentSeq means the
// leader itself. Keys that open a submenu are shown with the group label.
func (r *KeybindRegistry) LeaderHints(currentSeq string, page route.Page) map[string]string {
	base := Leader
	if currentSeq != "" {
		base = normalizeSeq(currentSeq)
	}
	out := make(map[string]string)
	for seq, b := range r.bindings {
		rest, ok := strings.CutPrefix(seq, base+" ")
		if !ok || b.cmd == nil || !b.appliesTo(page) {
			continue
		}
		next, deeper, _ := strings.Cut(rest, " ")
		switch {
		case deeper != "":
			label, ok := r.groups[base+" "+next]
			if !ok {
				label = next + "…"
			}
			out[next] = label
		case b.desc != "":
			out[next] = b.desc
		default:
			out[next] = seq
		}
	}
	return out
}

func (b binding) appliesTo(page route.Page) bool {
	return len(b.pages) == 0 || slices.Contains(b.pages, page)
}

// normalizeSeq maps the ways of writing space onto the leader notation.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts a tea.KeyMsg string to a sequence part.
// Bubble Tea reports space as " ".
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return Leader
	}
	return s
}

// KeyHandler tracks leader mode and dispatches keys to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool     // a leader sequence is in progress
	Buffer        []string // parts typed so far, starting with the leader
}

// NewKeyHandler creates a handler for reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Sequence returns the leader sequence typed so far, or "".
func (h *KeyHandler) Sequence() string {
	return strings.Join(h.Buffer, " ")
}

// Handle processes a key. consumed means the key belongs to the keybind
// system and must not reach the page; cmd is what it resolved to, if anything.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	part := keyToSeqPart(msg.String())

	if !h.LeaderWaiting {
		switch {
		case part == Leader:
			h.LeaderWaiting = true
			h.Buffer = []string{Leader}
			return true, nil
		case part == "esc":
			return false, nil
		}
		if c := h.Registry.Lookup(part); c != nil {
			return true, c
		}
		return false, nil
	}

	if part == "esc" {
		h.reset()
		return true, nil
	}
	h.Buffer = append(h.Buffer, part)
	seq := h.Sequence()
	if c := h.Registry.Lookup(seq); c != nil {
		h.reset()
		return true, c
	}
	if !h.Registry.HasPrefix(seq) {
		h.reset()
	}
	return true, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// hintBindings turns hints into key bindings for bubbles/help, sorted by key,
// with esc last.
func hintBindings(hints map[string]string) []key.Binding {
	if len(hints) == 0 {
		return nil
	}
	bindings := make([]key.Binding, 0, len(hints)+1)
	for _, k := range slices.Sorted(maps.Keys(hints)) {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}
