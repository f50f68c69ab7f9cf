package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type State uint8

const (
	Closed State = iota + 1
	Open
	HalfOpen
)

var ErrOpen = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(fn func() error) error
	Reset()
}

type circuitBreaker struct {
	mu    sync.Mutex
	state State

	// sliding window of the last windowSize call outcomes
	window     []bool
	pos        int
	windowSize int

	// share of failed calls in the window that trips the breaker
	failRate float64
	// how long an open breaker waits before probing
	timeout  time.Duration
	openedAt time.Time

	// consecutive successes required to close from half-open
	recoveryCalls int
	successCount  int
}

func New(windowSize int, timeout time.Duration, failRate float64, recoveryCalls int) CircuitBreaker {
	return &circuitBreaker{
		state:         Closed,
		window:        make([]bool, windowSize),
		windowSize:    windowSize,
		failRate:      failRate,
		timeout:       timeout,
		recoveryCalls: recoveryCalls,
	}
}

func (cb *circuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if time.Since(cb.openedAt) <= cb.timeout {
			cb.mu.Unlock()
			return ErrOpen
		}
		cb.state = HalfOpen
		cb.successCount = 0
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.window[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % cb.windowSize

	if cb.state == HalfOpen {
		if err != nil {
			cb.state = Open
			cb.successCount = 0
			cb.openedAt = time.Now()
			return err
		}
		cb.successCount++
		if cb.successCount > cb.recoveryCalls {
			cb.reset()
		}
		return err
	}

	fails := 0
	for _, failed := range cb.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(cb.windowSize) >= cb.failRate {
		cb.state = Open
		cb.successCount = 0
		cb.openedAt = time.Now()
	}

	return err
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.pos = 0
	cb.successCount = 0
	cb.state = Closed
}
