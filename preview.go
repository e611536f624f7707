package graph

import (
	"sync"
)

// Preview keeps the rendered chart in sync with the page.
//
// Its inputs are the chart type and title, compared by value, and the
// dataset, compared by pointer. Update redraws only when one of them
// changed; a nil dataset clears the preview.
type Preview struct {
	mu   sync.RWMutex
	opts RenderOptions

	typ       ChartType
	title     string
	data      *Data
	container *Container
	err       error
	renders   int

	onRender func(*Container, error)
}

// NewPreview returns an empty preview using opts for every render.
func NewPreview(opts RenderOptions) *Preview {
	return &Preview{opts: opts}
}

// OnRender registers fn to run after every redraw, including clears.
func (p *Preview) OnRender(fn func(*Container, error)) {
	p.mu.Lock()
	p.onRender = fn
	p.mu.Unlock()
}

// Update is the page observer. It reports whether a redraw happened.
func (p *Preview) Update(s Snapshot) bool {
	p.mu.Lock()
	if s.Data == p.data && s.Type == p.typ && s.Title == p.title && p.renders > 0 {
		p.mu.Unlock()
		return false
	}
	p.typ, p.title, p.data = s.Type, s.Title, s.Data

	if s.Data == nil {
		p.container, p.err = nil, nil
	} else {
		p.container, p.err = Render(s.Data, s.Title, p.opts)
	}
	p.renders++
	c, err, fn := p.container, p.err, p.onRender
	p.mu.Unlock()

	if fn != nil {
		fn(c, err)
	}
	return true
}

// Container returns the current chart, nil when nothing is drawn.
func (p *Preview) Container() *Container {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.container
}

// Err returns the error of the last render.
func (p *Preview) Err() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.err
}

// Renders counts redraws since creation.
func (p *Preview) Renders() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.renders
}
