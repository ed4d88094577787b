// Package screen implements the interactive screening view.
package screen

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/papersift-io/papersift/internal/keyword"
	"github.com/papersift-io/papersift/internal/models"
	"github.com/papersift-io/papersift/internal/store"
)

// Session outcome values.
const (
	StatusCompleted   = "completed"
	StatusInterrupted = "interrupted"
)

// Outcome reports how a screening session ended.
type Outcome struct {
	Status string
	Stats  *models.Stats
}

// Config wires a screening session together.
type Config struct {
	Set            *models.RecordSet
	Ledger         *store.Ledger
	Matcher        *keyword.Matcher
	DisplayColumns []string
	Reasons        []string
	Theme          Theme
	WidthCap       int
	RedoCompleted  bool
	WatchInput     bool
	Logger         *zap.Logger
}

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run drives one screening session to completion and returns its
// outcome. Decisions are already durable by the time it returns.
func Run(cfg Config) (*Outcome, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	ref := &programRef{}
	model := NewModel(cfg, ref)

	var watcher *InputWatcher
	if cfg.WatchInput {
		w, err := NewInputWatcher(cfg.Set.Path, ref, cfg.Logger)
		if err != nil {
			// Watching is advisory; screening works without it.
			cfg.Logger.Debug("input watcher unavailable", zap.Error(err))
		} else {
			watcher = w
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	ref.Set(p)

	final, err := p.Run()
	ref.Clear()
	if watcher != nil {
		watcher.Stop()
	}
	if err != nil {
		return nil, fmt.Errorf("screening view failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model type %T", final)
	}
	if m.fatalErr != nil {
		return nil, m.fatalErr
	}

	// Both exits leave a complete output file behind, even when the
	// session recorded nothing.
	if err := cfg.Ledger.Flush(); err != nil {
		return nil, err
	}
	return m.outcome, nil
}
