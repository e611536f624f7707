package graph

import (
	"sync"

	"github.com/felixgeelhaar/statekit"

	"github.com/tinywasm/graph/errs"
)

// Snapshot is the page state handed to observers.
type Snapshot struct {
	Type  ChartType
	Title string
	Data  *Data
}

// selection is the statechart context; transitions clear the dataset.
type selection struct {
	data *Data
}

const (
	evSelectBar     = "SELECT_BAR"
	evSelectLine    = "SELECT_LINE"
	evSelectPie     = "SELECT_PIE"
	evSelectScatter = "SELECT_SCATTER"
)

var selectEvents = map[ChartType]statekit.EventType{
	Bar:     evSelectBar,
	Line:    evSelectLine,
	Pie:     evSelectPie,
	Scatter: evSelectScatter,
}

func clearData(ctx **selection, _ statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	(*ctx).data = nil
}

// newSelectionMachine builds the chart type statechart. Every state accepts
// every selection event; bar is the initial state.
func newSelectionMachine() (*statekit.MachineConfig[*selection], error) {
	b := statekit.NewMachine[*selection]("chart-type").
		WithInitial(statekit.StateID(Bar)).
		WithContext(&selection{}).
		WithAction("clearData", clearData)

	for _, t := range ChartTypes {
		b = b.State(statekit.StateID(t)).
			On(evSelectBar).Target(statekit.StateID(Bar)).Do("clearData").
			On(evSelectLine).Target(statekit.StateID(Line)).Do("clearData").
			On(evSelectPie).Target(statekit.StateID(Pie)).Do("clearData").
			On(evSelectScatter).Target(statekit.StateID(Scatter)).Do("clearData").
			Done()
	}
	return b.Build()
}

// Page owns the chart type, the title and the current dataset.
type Page struct {
	mu        sync.RWMutex
	interp    *statekit.Interpreter[*selection]
	sel       *selection
	title     string
	observers map[int]func(Snapshot)
	nextID    int
}

// NewPage starts on an empty bar chart.
func NewPage() (*Page, error) {
	machine, err := newSelectionMachine()
	if err != nil {
		return nil, err
	}
	sel := &selection{}
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **selection) {
		*c = sel
	})
	interp.Start()

	return &Page{
		interp:    interp,
		sel:       sel,
		observers: make(map[int]func(Snapshot)),
	}, nil
}

// Type returns the selected chart type.
func (p *Page) Type() ChartType {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.typeLocked()
}

func (p *Page) typeLocked() ChartType {
	return ChartType(p.interp.State().Value)
}

// SelectType switches the chart type and always drops the dataset, since
// category and point data are not interchangeable.
func (p *Page) SelectType(t ChartType) error {
	ev, ok := selectEvents[t]
	if !ok {
		return errs.New(errs.ErrUnknownChartType, ':', string(t))
	}

	p.mu.Lock()
	if p.typeLocked() == t {
		p.sel.data = nil
	} else {
		p.interp.Send(statekit.Event{Type: ev})
	}
	s := p.snapshotLocked()
	p.mu.Unlock()

	p.notify(s)
	return nil
}

// SetTitle changes the display title; the dataset is kept.
func (p *Page) SetTitle(title string) {
	p.mu.Lock()
	p.title = title
	s := p.snapshotLocked()
	p.mu.Unlock()

	p.notify(s)
}

// Submit reads the form for the selected chart type and stores the result.
func (p *Page) Submit(f *Form) *Data {
	d := f.Submit(p.Type())
	p.SetData(d)
	return d
}

// SetData replaces the dataset.
func (p *Page) SetData(d *Data) {
	p.mu.Lock()
	p.sel.data = d
	s := p.snapshotLocked()
	p.mu.Unlock()

	p.notify(s)
}

// Snapshot returns the current state.
func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshotLocked()
}

func (p *Page) snapshotLocked() Snapshot {
	return Snapshot{Type: p.typeLocked(), Title: p.title, Data: p.sel.data}
}

// ExportTitle names exported files: the title, or "<type>_grafik".
func (p *Page) ExportTitle() string {
	s := p.Snapshot()
	if s.Title != "" {
		return s.Title
	}
	return string(s.Type) + "_grafik"
}

// Subscribe registers fn for every state change and calls it once with the
// current state. The returned func removes it.
func (p *Page) Subscribe(fn func(Snapshot)) (cancel func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.observers[id] = fn
	s := p.snapshotLocked()
	p.mu.Unlock()

	fn(s)
	return func() {
		p.mu.Lock()
		delete(p.observers, id)
		p.mu.Unlock()
	}
}

func (p *Page) notify(s Snapshot) {
	p.mu.RLock()
	fns := make([]func(Snapshot), 0, len(p.observers))
	for id := 0; id < p.nextID; id++ {
		if fn, ok := p.observers[id]; ok {
			fns = append(fns, fn)
		}
	}
	p.mu.RUnlock()

	for _, fn := range fns {
		fn(s)
	}
}
