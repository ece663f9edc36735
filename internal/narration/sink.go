// Package narration turns combat events into the human-readable log of an
// encounter. It is a side channel: nothing written here feeds back into the
// engine.
package narration

import "sync"

// Kind classifies a narrated line.
type Kind int

const (
	KindRound Kind = iota
	KindTurn
	KindAttack
	KindDamage
	KindHeal
	KindDeath
	KindScript
)

// String returns the lower-case kind label.
func (k Kind) String() string {
	switch k {
	case KindRound:
		return "round"
	case KindTurn:
		return "turn"
	case KindAttack:
		return "attack"
	case KindDamage:
		return "damage"
	case KindHeal:
		return "heal"
	case KindDeath:
		return "death"
	case KindScript:
		return "script"
	default:
		return "unknown"
	}
}

// Sink receives pre-formatted combat lines.
type Sink interface {
	Round(text string)
	Turn(text string)
	Attack(text string)
	Damage(text string)
	Heal(text string)
	Death(text string)
	Script(text string)
}

// Discard is a Sink that drops every line.
type Discard struct{}

func (Discard) Round(string) {}
func (Discard) Turn(string) {}
func (Discard) Attack(string) {}
func (Discard) Damage(string) {}
func (Discard) Heal(string) {}
func (Discard) Death(string) {}
func (Discard) Script(string) {}

// Line is one recorded narration entry.
type Line struct {
	Kind Kind
	Text string
}

// Memory is a Sink that keeps every line in order. It is safe for concurrent use.
type Memory struct {
	mu    sync.Mutex
	lines []Line
}

// NewMemory returns an empty Memory sink.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) add(k Kind, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, Line{Kind: k, Text: text})
}

func (m *Memory) Round(text string) { m.add(KindRound, text) }
func (m *Memory) Turn(text string) { m.add(KindTurn, text) }
func (m *Memory) Attack(text string) { m.add(KindAttack, text) }
func (m *Memory) Damage(text string) { m.add(KindDamage, text) }
func (m *Memory) Heal(text string) { m.add(KindHeal, text) }
func (m *Memory) Death(text string) { m.add(KindDeath, text) }
func (m *Memory) Script(text string) { m.add(KindScript, text) }

// Lines returns a copy of everything recorded so far.
func (m *Memory) Lines() []Line {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Line(nil), m.lines...)
}

// Of returns the texts recorded with kind k.
func (m *Memory) Of(k Kind) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, l := range m.lines {
		if l.Kind == k {
			out = append(out, l.Text)
		}
	}
	return out
}
