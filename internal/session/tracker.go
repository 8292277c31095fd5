// Package session tracks the per-client workspace: the chosen language and the
// state of each study operation.
package session

import (
	"context"
	"sync"
	"time"

	"studymate-backend/internal/logging"
	"studymate-backend/internal/models"
)

// MessageOperationState is the WebSocket message type carrying an OperationState.
const MessageOperationState = "operation_state"

// Notifier delivers workspace changes to a client's live channel.
type Notifier interface {
	Publish(ctx context.Context, clientID string, msg models.WSMessage)
}

// Tracker owns every client's workspace. Without stale discarding the last
// response to arrive wins, even if it belongs to a superseded invocation.
// Workspaces exist only for clients that changed state; reads never create one.
type Tracker struct {
	mu           sync.Mutex
	workspaces   map[string]*entry
	notifier     Notifier
	discardStale bool
	now          func() time.Time
	stopChan     chan struct{}
	stopOnce     sync.Once
}

type entry struct {
	ws       *models.Workspace
	lastSeen time.Time
}

func NewTracker(notifier Notifier, discardStale bool) *Tracker {
	return &Tracker{
		workspaces:   make(map[string]*entry),
		notifier:     notifier,
		discardStale: discardStale,
		now:          time.Now,
		stopChan:     make(chan struct{}),
	}
}

func newWorkspace(clientID string) *models.Workspace {
	return &models.Workspace{
		ClientID:   clientID,
		Language:   models.LanguageEnglish,
		Operations: make(map[models.Operation]models.OperationState),
	}
}

// workspace returns the client's workspace, creating it, and marks it as
// used. Must be called with t.mu held.
func (t *Tracker) workspace(clientID string) *models.Workspace {
	e, ok := t.workspaces[clientID]
	if !ok {
		e = &entry{ws: newWorkspace(clientID)}
		t.workspaces[clientID] = e
	}
	e.lastSeen = t.now()
	return e.ws
}

// SetLanguage records the client's language. It takes effect on the next
// request; results already on screen are not re-rendered.
func (t *Tracker) SetLanguage(clientID string, lang models.Language) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.workspace(clientID).Language = lang
}

// Begin moves op to Loading and returns the generation of this invocation.
func (t *Tracker) Begin(ctx context.Context, clientID string, op models.Operation) uint64 {
	t.mu.Lock()
	ws := t.workspace(clientID)
	prev := ws.Operations[op]
	state := models.OperationState{
		Operation:  op,
		Status:     models.StatusLoading,
		Generation: prev.Generation + 1,
		UpdatedAt:  t.now(),
	}
	ws.Operations[op] = state
	t.mu.Unlock()

	t.publish(ctx, clientID, state)
	return state.Generation
}

// Succeed stores result for op. It reports false when the response was
// dropped because a newer invocation has started.
func (t *Tracker) Succeed(ctx context.Context, clientID string, op models.Operation, generation uint64, result interface{}) bool {
	return t.finish(ctx, clientID, op, generation, models.OperationState{
		Status: models.StatusSuccess,
		Result: result,
	})
}

// Fail stores the display message for op. Same stale rule as Succeed.
func (t *Tracker) Fail(ctx context.Context, clientID string, op models.Operation, generation uint64, message string) bool {
	return t.finish(ctx, clientID, op, generation, models.OperationState{
		Status:  models.StatusFailed,
		Message: message,
	})
}

func (t *Tracker) finish(ctx context.Context, clientID string, op models.Operation, generation uint64, state models.OperationState) bool {
	t.mu.Lock()
	ws := t.workspace(clientID)
	current := ws.Operations[op]
	if t.discardStale && current.Generation != generation {
		t.mu.Unlock()
		logging.WithContext(ctx).Infof("Discarding stale %s response (generation %d, current %d)", op, generation, current.Generation)
		return false
	}

	state.Operation = op
	state.Generation = current.Generation
	state.UpdatedAt = t.now()
	ws.Operations[op] = state
	t.mu.Unlock()

	t.publish(ctx, clientID, state)
	return true
}

// Snapshot returns a copy of the client's workspace with every operation
// present; untouched operations are Idle.
func (t *Tracker) Snapshot(clientID string) models.Workspace {
	t.mu.Lock()
	defer t.mu.Unlock()

	ws := newWorkspace(clientID)
	if e, ok := t.workspaces[clientID]; ok {
		ws = e.ws
	}
	out := models.Workspace{
		ClientID:   ws.ClientID,
		Language:   ws.Language,
		Operations: make(map[models.Operation]models.OperationState, len(models.Operations)),
	}
	for _, op := range models.Operations {
		state, ok := ws.Operations[op]
		if !ok {
			state = models.OperationState{Operation: op, Status: models.StatusIdle}
		}
		out.Operations[op] = state
	}
	return out
}

// Prune forgets workspaces untouched for longer than idle and reports how
// many were removed.
func (t *Tracker) Prune(idle time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-idle)
	removed := 0
	for id, e := range t.workspaces {
		if e.lastSeen.Before(cutoff) {
			delete(t.workspaces, id)
			removed++
		}
	}
	return removed
}

// Start prunes idle workspaces every interval until Stop. A non-positive idle
// keeps workspaces forever.
func (t *Tracker) Start(interval, idle time.Duration) {
	if idle <= 0 || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-t.stopChan:
				return
			case <-ticker.C:
				if n := t.Prune(idle); n > 0 {
					logging.Logger().Debugf("Pruned %d idle workspaces", n)
				}
			}
		}
	}()
}

func (t *Tracker) Stop() {
	t.stopOnce.Do(func() { close(t.stopChan) })
}

// Len reports the number of retained workspaces.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.workspaces)
}

func (t *Tracker) publish(ctx context.Context, clientID string, state models.OperationState) {
	if t.notifier == nil {
		return
	}
	t.notifier.Publish(ctx, clientID, models.WSMessage{Type: MessageOperationState, Payload: state})
}
