package property

import (
	"sort"

	"github.com/sasha-s/go-deadlock"
	"github.com/zyedidia/generic/mapset"
)

// pendingSet collects names that were looked up before their entity exists.
// Readers insert from anywhere; the maintenance pass takes the whole set in
// one swap so an insert racing with the drain lands in the next batch.
type pendingSet struct {
	mu    deadlock.Mutex
	names mapset.Set[string]
}

func newPendingSet() *pendingSet {
	return &pendingSet{names: mapset.New[string]()}
}

func (p *pendingSet) add(name string) {
	p.mu.Lock()
	p.names.Put(name)
	p.mu.Unlock()
}

func (p *pendingSet) has(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.names.Has(name)
}

// take swaps in an empty set and returns the old contents, sorted.
func (p *pendingSet) take() []string {
	p.mu.Lock()
	taken := p.names
	p.names = mapset.New[string]()
	p.mu.Unlock()

	if taken.Size() == 0 {
		return nil
	}
	out := make([]string, 0, taken.Size())
	taken.Each(func(name string) {
		out = append(out, name)
	})
	sort.Strings(out)
	return out
}

func (p *pendingSet) snapshot() []string {
	p.mu.Lock()
	out := make([]string, 0, p.names.Size())
	p.names.Each(func(name string) {
		out = append(out, name)
	})
	p.mu.Unlock()
	sort.Strings(out)
	return out
}
