package field

import (
	"cmp"
	"math"
	"slices"
)

// Link is a connection line between particles I and J, I < J.
type Link struct {
	I, J  int
	D     float64
	Alpha float64
}

// LinkAlpha fades a connection linearly from opacity at d == 0 to zero at
// the link distance.
func LinkAlpha(d, dist, opacity float64) float64 {
	return (1 - d/dist) * opacity
}

// Connections appends every unordered pair closer than dist to dst, checking
// all n(n-1)/2 pairs. Alpha is left at zero; see Field.Links.
func Connections(dst []Link, ps []Particle, dist float64) []Link {
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			dx := ps[i].X - ps[j].X
			dy := ps[i].Y - ps[j].Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d < dist {
				dst = append(dst, Link{I: i, J: j, D: d})
			}
		}
	}
	return dst
}

type cell struct{ x, y int }

// Grid bins particles into square cells one link distance wide so that a
// pair within range is always in the same or an adjacent cell.
type Grid struct {
	size  float64
	cells map[cell][]int
}

// NewGrid returns an empty grid with cells size units wide.
func NewGrid(size float64) *Grid {
	return &Grid{size: size, cells: make(map[cell][]int)}
}

func (g *Grid) cellOf(p *Particle) cell {
	return cell{int(math.Floor(p.X / g.size)), int(math.Floor(p.Y / g.size))}
}

// Build assigns every particle index to its cell, reusing bin storage.
func (g *Grid) Build(ps []Particle) {
	for k, bin := range g.cells {
		g.cells[k] = bin[:0]
	}
	for i := range ps {
		c := g.cellOf(&ps[i])
		g.cells[c] = append(g.cells[c], i)
	}
}

// Connections appends the same pair set as the package-level Connections,
// in the same (I, J) order, after a Build over ps.
func (g *Grid) Connections(dst []Link, ps []Particle) []Link {
	start := len(dst)
	for i := range ps {
		c := g.cellOf(&ps[i])
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for _, j := range g.cells[cell{c.x + dx, c.y + dy}] {
					if j <= i {
						continue
					}
					ddx := ps[i].X - ps[j].X
					ddy := ps[i].Y - ps[j].Y
					d := math.Sqrt(ddx*ddx + ddy*ddy)
					if d < g.size {
						dst = append(dst, Link{I: i, J: j, D: d})
					}
				}
			}
		}
	}
	slices.SortFunc(dst[start:], func(a, b Link) int {
		if c := cmp.Compare(a.I, b.I); c != 0 {
			return c
		}
		return cmp.Compare(a.J, b.J)
	})
	return dst
}

// GridConnections is Connections through a throwaway Grid.
func GridConnections(dst []Link, ps []Particle, dist float64) []Link {
	g := NewGrid(dist)
	g.Build(ps)
	return g.Connections(dst, ps)
}
