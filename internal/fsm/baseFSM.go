// Copyright 2025 UMH Systems GmbH
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fsm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/united-manufacturing-hub/marina/pkg/constants"
)

// BaseNavigationFSM implements the state machine shared by all vessels.
// Concrete vessels wrap it and register enter_<state> callbacks to apply
// their side effects.
type BaseNavigationFSM struct {
	cfg BaseNavigationFSMConfig

	// mu protects the callbacks map
	mu sync.RWMutex

	// fsm is the finite state machine that manages the navigation state
	fsm *fsm.FSM

	// Registered "enter_<state>" callbacks
	callbacks map[string]fsm.Callback

	logger *zap.SugaredLogger
}

// BaseNavigationFSMConfig holds parameters for setting up the base FSM.
type BaseNavigationFSMConfig struct {
	ID string

	// InitialState is usually NavigationStateIdle
	InitialState string

	// Transitions are the transitions that are allowed between navigation states
	Transitions []fsm.EventDesc
}

// NewBaseNavigationFSM sets up a new FSM with the given transitions.
// An empty or unknown initial state starts the FSM idle.
func NewBaseNavigationFSM(cfg BaseNavigationFSMConfig, logger *zap.SugaredLogger) *BaseNavigationFSM {
	if !IsNavigationState(cfg.InitialState) {
		if cfg.InitialState != "" {
			logger.Warnf("FSM %s: unknown initial state %q, starting %s", cfg.ID, cfg.InitialState, NavigationStateIdle)
		}
		cfg.InitialState = NavigationStateIdle
	}

	base := &BaseNavigationFSM{
		cfg:       cfg,
		callbacks: make(map[string]fsm.Callback),
		logger:    logger,
	}

	base.fsm = fsm.NewFSM(
		cfg.InitialState,
		fsm.Events(cfg.Transitions),
		fsm.Callbacks{
			"enter_state": func(ctx context.Context, e *fsm.Event) {
				base.logger.Debugf("FSM %s: %s -> %s (%s)", base.cfg.ID, e.Src, e.Dst, e.Event)

				if cb, ok := base.callback("enter_" + e.Dst); ok {
					cb(ctx, e)
				}
			},
		},
	)

	return base
}

// AddCallback adds a callback for a given event name, e.g. "enter_navigating"
func (b *BaseNavigationFSM) AddCallback(eventName string, callback fsm.Callback) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.callbacks[eventName] = callback
}

func (b *BaseNavigationFSM) callback(eventName string) (fsm.Callback, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	cb, ok := b.callbacks[eventName]

	return cb, ok
}

// GetCurrentFSMState returns the current state of the FSM
func (b *BaseNavigationFSM) GetCurrentFSMState() string {
	return b.fsm.Current()
}

// SetCurrentFSMState sets the current state of the FSM without running callbacks.
// This should only be called in tests
func (b *BaseNavigationFSM) SetCurrentFSMState(state string) {
	b.fsm.SetState(state)
}

// Can returns true if eventName may be sent in the current state
func (b *BaseNavigationFSM) Can(eventName string) bool {
	return b.fsm.Can(eventName)
}

// SendEvent sends an event to the FSM and returns the transition error, if any.
//
// A context that expires while looplab/fsm is mid-transition leaves the FSM
// with a pending transition that rejects every later event, so the event is
// refused up front when the context is already done or has less than
// constants.ExpectedMaxP95ExecutionTimePerEvent left.
func (b *BaseNavigationFSM) SendEvent(ctx context.Context, eventName string, args ...interface{}) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if deadline, ok := ctx.Deadline(); ok {
		if time.Until(deadline) < constants.ExpectedMaxP95ExecutionTimePerEvent {
			return fmt.Errorf("%w: not enough time left to send %s", context.DeadlineExceeded, eventName)
		}
	}

	return b.fsm.Event(ctx, eventName, args...)
}

func (b *BaseNavigationFSM) GetID() string {
	return b.cfg.ID
}

func (b *BaseNavigationFSM) GetLogger() *zap.SugaredLogger {
	return b.logger
}
