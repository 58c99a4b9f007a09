package machines

import (
	"github.com/gcamargo0/turingo/pkg/domain"
	"github.com/gcamargo0/turingo/pkg/dsl"
)

var (
	zero = domain.Sym(0)
	one  = domain.Sym(1)
)

func init() {
	register(Definition{
		Name:         "bit-flip",
		Summary:      "Flip every bit on the tape, halt at the trailing blank.",
		DefaultInput: "0110",
		Doc: `# bit-flip

Scans the tape left to right, flipping each bit (0 → 1, 1 → 0). When the
head reaches the blank past the defined input, the machine moves into its
halting state and stops.

| state | read | write | move | next |
|-------|------|-------|------|------|
| q0    | 0    | 1     | R    | q0   |
| q0    | 1    | 0     | R    | q0   |
| q0    | _    | _     | R    | halt |
`,
		build: func() (*domain.State, error) {
			b := dsl.New()
			b.State("q0").
				Loop(zero, one, domain.Right).
				Loop(one, zero, domain.Right).
				On(domain.Blank, "halt", domain.Blank, domain.Right)
			b.State("halt")
			return b.Build("q0")
		},
	})

	register(Definition{
		Name:         "binary-increment",
		Summary:      "Add one to a binary number (most-significant bit first).",
		DefaultInput: "1011",
		Doc: `# binary-increment

Adds 1 to the binary number on the tape, most-significant bit first:
1011 becomes 1100.

Three working states: scan right to the trailing blank, then walk back left
adding. A 0 absorbs the carry and becomes 1; each 1 under a carry flips to 0
and the carry keeps moving left; carrying past the leading bit writes a new
leading 1 (overflow).
`,
		build: func() (*domain.State, error) {
			b := dsl.New()
			b.State("scan").
				Loop(zero, zero, domain.Right).
				Loop(one, one, domain.Right).
				On(domain.Blank, "add", domain.Blank, domain.Left)
			b.State("add").
				On(zero, "halt", one, domain.Neutral).
				On(one, "carry", zero, domain.Left).
				On(domain.Blank, "halt", one, domain.Neutral)
			b.State("carry").
				Loop(one, zero, domain.Left).
				On(zero, "halt", one, domain.Neutral).
				On(domain.Blank, "halt", one, domain.Neutral)
			b.State("halt")
			return b.Build("scan")
		},
	})

	register(Definition{
		Name:         "stride",
		Summary:      "Custom-action demo: write 1s while jumping two cells at a time.",
		DefaultInput: "00000",
		Doc: `# stride

Demonstrates a custom head action. The single working state writes a 1 over
every 0 it lands on, then jumps two cells right (the R2 action) instead of
one, so it only touches every other cell. Landing on a 1 or a blank halts.

Custom actions are ordinary values: R2 is built with Move(2) and flows
through the engine exactly like R, L and N.
`,
		build: func() (*domain.State, error) {
			r2 := domain.Move(2)
			b := dsl.New()
			b.State("q0").
				Loop(zero, one, r2).
				On(one, "halt", one, r2).
				On(domain.Blank, "halt", domain.Blank, r2)
			b.State("halt")
			return b.Build("q0")
		},
	})
}
