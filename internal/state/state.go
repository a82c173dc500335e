package state

import (
	"sync"
	"time"
)

type Phase int

const (
	Idle Phase = iota
	WindowCreated
	Closed
)

var phaseNames = [...]string{"idle", "window_created", "closed"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Stats are the scheduler counters exposed to the preview server.
type Stats struct {
	Ticks         uint64
	LastDt        time.Duration
	PresentErrors uint64
	DroppedEvents uint64
}

type State struct {
	Phase Phase
	Title string

	LogicalWidth  int
	LogicalHeight int
	WindowWidth   int
	WindowHeight  int

	Stats Stats
}

// Store is written by the scheduler goroutine and read by anyone.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: Idle}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) Phase() Phase {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state.Phase
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

// SetWindow records the window title and sizes once the window exists.
func (store *Store) SetWindow(title string, logicalW, logicalH, windowW, windowH int) {
	store.mu.Lock()
	store.state.Title = title
	store.state.LogicalWidth, store.state.LogicalHeight = logicalW, logicalH
	store.state.WindowWidth, store.state.WindowHeight = windowW, windowH
	store.mu.Unlock()
}

func (store *Store) SetWindowSize(width, height int) {
	store.mu.Lock()
	store.state.WindowWidth, store.state.WindowHeight = width, height
	store.mu.Unlock()
}

func (store *Store) UpdateStats(stats Stats) {
	store.mu.Lock()
	store.state.Stats = stats
	store.mu.Unlock()
}
