package tui

import "sync"

// Level classifies a toast.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Toast is a short-lived notification shown in the status line.
type Toast struct {
	Level   Level
	Message string
}

// Toasts collects notifications from the service. Operations run off the UI
// goroutine, so the model drains the queue when their results arrive.
type Toasts struct {
	mu    sync.Mutex
	queue []Toast
}

func (t *Toasts) push(level Level, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queue = append(t.queue, Toast{Level: level, Message: msg})
}

func (t *Toasts) NotifySuccess(msg string) { t.push(LevelSuccess, msg) }
func (t *Toasts) NotifyError(msg string)   { t.push(LevelError, msg) }
func (t *Toasts) NotifyInfo(msg string)    { t.push(LevelInfo, msg) }

// Drain returns and clears the queued toasts, oldest first.
func (t *Toasts) Drain() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.queue
	t.queue = nil
	return out
}
