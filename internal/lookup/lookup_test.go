package lookup

import (
	"context"
	"errors"
	"testing"
)

// fakeStrategy records invocations and returns a fixed result.
type fakeStrategy struct {
	name   string
	text   string
	err    error
	called int
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Lookup(ctx context.Context, query string) (string, error) {
	f.called++
	return f.text, f.err
}

func TestChainStopsAtFirstNonEmpty(t *testing.T) {
	first := &fakeStrategy{name: "first", text: ""}
	second := &fakeStrategy{name: "second", text: "found"}
	third := &fakeStrategy{name: "third", text: "unused"}

	chain := NewChain(first, second, third)
	report := chain.Lookup(context.Background(), "query")

	if report.Text != "found" {
		t.Errorf("expected found, got %q", report.Text)
	}
	if report.Source != "second" {
		t.Errorf("expected source second, got %q", report.Source)
	}
	if third.called != 0 {
		t.Error("third strategy should never be invoked")
	}
}

func TestChainSkipsErrors(t *testing.T) {
	failing := &fakeStrategy{name: "failing", err: errors.New("boom")}
	working := &fakeStrategy{name: "working", text: "result"}

	chain := NewChain(failing, working)
	report := chain.Lookup(context.Background(), "query")

	if report.Text != "result" {
		t.Errorf("a failing strategy is not fatal, got %q", report.Text)
	}
}

func TestChainAllEmpty(t *testing.T) {
	chain := NewChain(
		&fakeStrategy{name: "a"},
		&fakeStrategy{name: "b", err: errors.New("down")},
	)

	report := chain.Lookup(context.Background(), "query")

	if !report.IsEmpty() {
		t.Errorf("expected empty report, got %+v", report)
	}
	if report.Source != "" {
		t.Errorf("empty report should have no source, got %q", report.Source)
	}
}

func TestChainNoStrategies(t *testing.T) {
	report := NewChain().Lookup(context.Background(), "query")

	if !report.IsEmpty() {
		t.Errorf("expected empty report, got %+v", report)
	}
}

func TestChainCancelledContext(t *testing.T) {
	strategy := &fakeStrategy{name: "never", text: "result"}
	chain := NewChain(strategy)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := chain.Lookup(ctx, "query")

	if !report.IsEmpty() {
		t.Errorf("expected empty report after cancel, got %+v", report)
	}
	if strategy.called != 0 {
		t.Error("strategies should not run after cancellation")
	}
}
