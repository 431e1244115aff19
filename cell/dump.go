// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"strings"
)

// LinkInfo describes one present relation of a cell.
type LinkInfo struct {
	Direction string `yaml:"direction" json:"direction"`
	Owned     bool   `yaml:"owned" json:"owned"`
}

// Snapshot is the debug view of a cell: every coefficient, the sign field in
// binary, metadata and the relations that are present. Carry holds the next
// cell of the owned chain. The text format is not a stable surface.
type Snapshot struct {
	Coefficients [NumTerms]string `yaml:"coefficients" json:"coefficients"`
	Signs        string           `yaml:"signs" json:"signs"`
	Metadata     uint64           `yaml:"metadata" json:"metadata"`
	Radix        int64            `yaml:"radix" json:"radix"`
	Depth        int              `yaml:"depth" json:"depth"`
	Expression   string           `yaml:"expression" json:"expression"`
	Links        []LinkInfo       `yaml:"links,omitempty" json:"links,omitempty"`
	Carry        *Snapshot        `yaml:"carry,omitempty" json:"carry,omitempty"`
}

// Dump captures a Snapshot of c and its carry chain.
func (c *Cell) Dump() Snapshot {
	s := Snapshot{
		Signs:      c.SignBits(),
		Metadata:   c.metadata,
		Radix:      c.radix,
		Depth:      c.Depth(),
		Expression: c.Expression(),
	}
	for i := range c.coef {
		s.Coefficients[i] = c.coef[i].String()
	}
	for d := Left; d <= Out; d++ {
		if c.links[d] != nil {
			s.Links = append(s.Links, LinkInfo{Direction: d.String(), Owned: c.Owns(d)})
		}
	}
	if carry := c.Carry(); carry != nil {
		cs := carry.Dump()
		s.Carry = &cs
	}
	return s
}

// String renders a one-line-per-cell view of c and its carry chain.
func (c *Cell) String() string {
	var sb strings.Builder
	for lvl, cur := 0, c; cur != nil; lvl, cur = lvl+1, cur.Carry() {
		if lvl > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "[%d] signs=%s meta=%d a=%s b=%s c=%s d=%s e=%s f=%s links=%s",
			lvl, cur.SignBits(), cur.metadata,
			&cur.coef[A], &cur.coef[B], &cur.coef[C], &cur.coef[D], &cur.coef[E], &cur.coef[F],
			cur.linkString())
	}
	return sb.String()
}

func (c *Cell) linkString() string {
	var names []string
	for d := Left; d <= Out; d++ {
		if c.links[d] == nil {
			continue
		}
		n := d.String()
		if c.Owns(d) {
			n += "*"
		}
		names = append(names, n)
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}
