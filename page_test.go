package graph

import (
	"errors"
	"testing"

	"github.com/tinywasm/graph/errs"
)

func newTestPage(t *testing.T) *Page {
	t.Helper()
	p, err := NewPage()
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}
	return p
}

func TestPageStartsOnBar(t *testing.T) {
	p := newTestPage(t)
	s := p.Snapshot()
	if s.Type != Bar || s.Title != "" || s.Data != nil {
		t.Fatalf("initial snapshot = %+v", s)
	}
}

func TestSelectTypeClearsData(t *testing.T) {
	p := newTestPage(t)
	f := NewForm()
	f.SetValues(0, "1,2,3")

	for _, typ := range []ChartType{Line, Line, Pie, Scatter, Bar} {
		p.Submit(f)
		if p.Snapshot().Data == nil {
			t.Fatal("Submit left no data")
		}
		if err := p.SelectType(typ); err != nil {
			t.Fatalf("SelectType(%s): %v", typ, err)
		}
		s := p.Snapshot()
		if s.Type != typ {
			t.Errorf("type = %s, want %s", s.Type, typ)
		}
		if s.Data != nil {
			t.Errorf("selecting %s kept the data", typ)
		}
	}
}

func TestSelectUnknownType(t *testing.T) {
	p := newTestPage(t)
	err := p.SelectType("radar")
	if !errors.Is(err, errs.ErrUnknownChartType) {
		t.Fatalf("err = %v, want ErrUnknownChartType", err)
	}
	if p.Type() != Bar {
		t.Errorf("type changed to %s", p.Type())
	}
}

func TestSetTitleKeepsData(t *testing.T) {
	p := newTestPage(t)
	d := p.Submit(NewForm())
	p.SetTitle("Q1 Sales")

	s := p.Snapshot()
	if s.Title != "Q1 Sales" {
		t.Errorf("title = %q", s.Title)
	}
	if s.Data != d {
		t.Error("SetTitle replaced the data")
	}
}

func TestSubmitUsesSelectedType(t *testing.T) {
	p := newTestPage(t)
	p.SelectType(Scatter)
	f := NewForm()
	f.SetValues(0, "1,2,3,4")

	d := p.Submit(f)
	if d.Type != Scatter || len(d.Datasets[0].Points) != 2 {
		t.Fatalf("data = %+v", d)
	}
}

func TestExportTitle(t *testing.T) {
	p := newTestPage(t)
	p.SelectType(Pie)
	if got := p.ExportTitle(); got != "pie_grafik" {
		t.Errorf("ExportTitle() = %q", got)
	}
	p.SetTitle("Market Share")
	if got := p.ExportTitle(); got != "Market Share" {
		t.Errorf("ExportTitle() = %q", got)
	}
}

func TestSubscribe(t *testing.T) {
	p := newTestPage(t)

	var got []Snapshot
	cancel := p.Subscribe(func(s Snapshot) { got = append(got, s) })
	if len(got) != 1 {
		t.Fatalf("Subscribe should deliver the current state, got %d calls", len(got))
	}

	p.SetTitle("A")
	p.SelectType(Line)
	if len(got) != 3 {
		t.Fatalf("calls = %d, want 3", len(got))
	}
	if got[2].Type != Line || got[2].Title != "A" {
		t.Errorf("last snapshot = %+v", got[2])
	}

	cancel()
	p.SetTitle("B")
	if len(got) != 3 {
		t.Error("observer called after cancel")
	}
}

func TestObserversRunInOrder(t *testing.T) {
	p := newTestPage(t)
	var order []int
	p.Subscribe(func(Snapshot) { order = append(order, 1) })
	p.Subscribe(func(Snapshot) { order = append(order, 2) })
	order = nil

	p.SetTitle("x")
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("order = %v", order)
	}
}
