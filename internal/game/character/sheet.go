package character

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/skirmish/internal/game/gear"
	"github.com/cory-johannsen/skirmish/internal/game/stats"
)

// Sheet renders the character as a banner, a stats table with one row per
// axis, and an equipment table.
func (c *Character) Sheet() string {
	var b strings.Builder
	upper := cases.Upper(language.English)

	width := len(c.name) * 2
	bar := strings.Repeat("*", width)
	pad := strings.Repeat(" ", (width-len(c.name))/2)
	fmt.Fprintf(&b, "%s\n%s%s\n%s\n", bar, pad, upper.String(c.name), bar)

	tw := tabwriter.NewWriter(&b, 0, 0, 1, ' ', 0)
	all := c.stats.All()
	for i := 0; i+2 < len(all); i += 3 {
		fmt.Fprintf(tw, "%s\t|\t%s\t|\t%s\n", statCells(all[i]), statCells(all[i+1]), statCells(all[i+2]))
	}
	tw.Flush()

	b.WriteString("EQUIPMENT\n")
	tw = tabwriter.NewWriter(&b, 0, 0, 1, ' ', 0)
	for _, w := range c.equipment.Weapons() {
		writeItemRow(tw, upper, w, "Damage", w.Damage())
	}
	for _, a := range c.equipment.ArmorPieces() {
		writeItemRow(tw, upper, a, "Protection", a.Protection())
	}
	tw.Flush()
	return b.String()
}

func statCells(s *stats.Stat) string {
	return fmt.Sprintf("%s\t%d\t%+d", s.Name(), s.ModifiedValue(), s.TotalModifier())
}

func writeItemRow(tw *tabwriter.Writer, upper cases.Caser, it *gear.Item, label string, effect int) {
	fmt.Fprintf(tw, "[%s]\t|\t%s\t|\t%s\t+%d\t|\t%s\t+%d\n",
		upper.String(it.Type), it.Detail(), label, effect, it, it.Bonus.Value)
}
