// Copyright 2026 The CodeCircle Authors, Inc.
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

package loop

import (
	"context"
	"errors"
	"sync"
	"time"
)

type Task func(ctx context.Context) error

// TaskLoop runs queued tasks one at a time, in submission order.
// Task errors are discarded: the loop is an at-most-once, best-effort
// executor, it never retries and never reports back to the submitter.
type TaskLoop struct {
	tasks chan Task
	mu    sync.Mutex

	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewTaskLoop creates and starts a TaskLoop with the given queue size.
func NewTaskLoop(queueSize int) *TaskLoop {
	if queueSize <= 0 {
		queueSize = 100
	}
	l := &TaskLoop{
		tasks:  make(chan Task, queueSize),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	l.Start(context.Background())
	return l
}

func (l *TaskLoop) AddTask(ctx context.Context, task Task) error {
	// A closed stopCh must win over a free queue slot.
	select {
	case <-l.stopCh:
		return context.Canceled
	default:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopCh:
		return context.Canceled
	case l.tasks <- task:
		return nil
	}
}

func (l *TaskLoop) Start(ctx context.Context) {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return
	}
	l.running = true
	l.stopCh = make(chan struct{})
	l.doneCh = make(chan struct{})
	l.mu.Unlock()
	go func() {
		defer close(l.doneCh)
		for {
			select {
			case <-l.stopCh:
				l.drainTasksOnStop(ctx)
				return
			case <-ctx.Done():
				l.drainTasksOnStop(ctx)
				return
			case task, ok := <-l.tasks:
				if !ok {
					return
				}
				_ = task(ctx)
			}
		}
	}()
}

// drainTasksOnStop gives already-queued tasks one second to run before the
// loop goroutine exits.
func (l *TaskLoop) drainTasksOnStop(ctx context.Context) {
	drainCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for {
		select {
		case <-drainCtx.Done():
			return
		case task, ok := <-l.tasks:
			if !ok {
				return
			}
			_ = task(ctx)
		default:
			return
		}
	}
}

// Stop stops the loop and waits for the in-flight task to finish.
func (l *TaskLoop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	close(l.stopCh)
	l.mu.Unlock()

	<-l.doneCh
}

// TryAddTask enqueues without blocking; it fails when the queue is full.
func (l *TaskLoop) TryAddTask(task Task) error {
	select {
	case <-l.stopCh:
		return context.Canceled
	default:
	}
	select {
	case l.tasks <- task:
		return nil
	default:
		return errors.New("task queue is full")
	}
}

// IsRunning reports whether the loop goroutine is active.
func (l *TaskLoop) IsRunning() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// QueuedTasksCount returns the number of tasks waiting in the queue.
func (l *TaskLoop) QueuedTasksCount() int {
	return len(l.tasks)
}
