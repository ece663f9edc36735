package narration

import (
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
)

type style struct {
	indent string
	color  string
}

var styles = map[Kind]style{
	KindRound:  {indent: "", color: Magenta},
	KindTurn:   {indent: "\n", color: Blue},
	KindAttack: {indent: "\t", color: Green},
	KindDamage: {indent: "\t\t", color: Yellow},
	KindHeal:   {indent: "\t\t", color: Green},
	KindDeath:  {indent: "\t\t", color: Red},
	KindScript: {indent: "\t", color: Cyan},
}

// Console writes narration lines to an io.Writer, optionally coloured and
// paced, and mirrors each line to the logger at debug level.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	color  bool
	delay  time.Duration
	sleep  func(time.Duration)
	logger *zap.Logger
}

// NewConsole returns a Console writing to w.
//
// Precondition: w and logger must be non-nil.
func NewConsole(w io.Writer, cfg config.NarrationConfig, logger *zap.Logger) *Console {
	return &Console{w: w, color: cfg.Color, delay: cfg.Delay, sleep: time.Sleep, logger: logger}
}

func (c *Console) write(k Kind, text string) {
	st := styles[k]
	body := text
	if c.color {
		body = Colorize(st.color, text)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintf(c.w, "%s%s\n", st.indent, body); err != nil {
		c.logger.Warn("narration write failed", zap.Error(err))
	}
	c.logger.Debug("narration", zap.Stringer("kind", k), zap.String("text", text))
	if c.delay > 0 {
		c.sleep(c.delay)
	}
}

func (c *Console) Round(text string) { c.write(KindRound, text) }
func (c *Console) Turn(text string) { c.write(KindTurn, text) }
func (c *Console) Attack(text string) { c.write(KindAttack, text) }
func (c *Console) Damage(text string) { c.write(KindDamage, text) }
func (c *Console) Heal(text string) { c.write(KindHeal, text) }
func (c *Console) Death(text string) { c.write(KindDeath, text) }
func (c *Console) Script(text string) { c.write(KindScript, text) }
