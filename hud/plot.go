package hud

import (
	"math"
)

// PlotSamples is how many readings a Plot keeps by default.
const PlotSamples = 400

// Plot records the most recent readings of a Source.
type Plot struct {
	Name   string
	Source Source

	buf   []float64
	start int
	n     int
}

func NewPlot(name string, src Source, capacity int) Plot {
	if capacity <= 0 {
		capacity = PlotSamples
	}
	return Plot{Name: name, Source: src, buf: make([]float64, capacity)}
}

// Push appends v, dropping the oldest reading once full.
func (p *Plot) Push(v float64) {
	if len(p.buf) == 0 {
		p.buf = make([]float64, PlotSamples)
	}
	if p.n < len(p.buf) {
		p.buf[(p.start+p.n)%len(p.buf)] = v
		p.n++
		return
	}
	p.buf[p.start] = v
	p.start = (p.start + 1) % len(p.buf)
}

func (p *Plot) Len() int { return p.n }

func (p *Plot) Cap() int { return len(p.buf) }

// Samples returns the readings oldest first.
func (p *Plot) Samples() []float64 {
	out := make([]float64, p.n)
	for i := range out {
		out[i] = p.buf[(p.start+i)%len(p.buf)]
	}
	return out
}

// Last returns the newest reading.
func (p *Plot) Last() (float64, bool) {
	if p.n == 0 {
		return 0, false
	}
	return p.buf[(p.start+p.n-1)%len(p.buf)], true
}

// Range returns the smallest and largest reading. An empty or flat plot
// yields a range one unit wide so callers can divide by it.
func (p *Plot) Range() (lo, hi float64) {
	if p.n == 0 {
		return 0, 1
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 0; i < p.n; i++ {
		v := p.buf[(p.start+i)%len(p.buf)]
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi-lo < 1e-9 {
		hi = lo + 1
	}
	return lo, hi
}
