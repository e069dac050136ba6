// Helpers for atomic counters shared between queue producers and workers
package atomics

import (
	"sync/atomic"
	"time"
)

// Tries to subtract value from the atomic source without wrapping below zero.
// Success if the counter is already 0. Retries up to maxRetries times if the
// CAS fails due to contention, with exponential backoff (unbounded, use wisely).
func Subtract(source *atomic.Uint64, value uint64, maxRetries int) (success bool) {
	retryInterval := time.Microsecond * 10

	for i := 0; i < maxRetries; i++ {
		current := source.Load()

		if current == 0 {
			success = true
			return
		}

		var newValue uint64
		if value >= current {
			newValue = 0
		} else {
			newValue = current - value
		}

		// CAS will only succeed if the value has not changed since we last read it.
		if source.CompareAndSwap(current, newValue) {
			success = true
			return
		}

		// CAS failed due to contention, retry
		time.Sleep(retryInterval)
		retryInterval = retryInterval * 2
	}

	success = false // gave up after max attempts
	return
}

// Raises the atomic source to candidate if candidate is larger.
// Loops until the swap lands or another writer has already stored a larger value.
func RaiseMax(source *atomic.Uint64, candidate uint64) {
	for {
		current := source.Load()
		if candidate <= current {
			return
		}
		if source.CompareAndSwap(current, candidate) {
			return
		}
	}
}

// Waits until atomic value is 0 three consecutive times in a row, with retries and timeout
func WaitUntilZero(value *atomic.Uint64, timeout time.Duration) (reachedZero bool, lastValue uint64) {
	const successfulStreakCount = 3

	// Initial backoff duration
	backoff := 50 * time.Millisecond

	// Max backoff duration
	maxBackoff := 1 * time.Second

	deadline := time.Now().Add(timeout)
	zeroStreak := 0

	for {
		lastValue = value.Load()

		if lastValue == 0 {
			zeroStreak++
			if zeroStreak >= successfulStreakCount {
				reachedZero = true
				return
			}
		} else {
			// Reset streak if value is non-zero
			zeroStreak = 0
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			// Timed out
			reachedZero = false
			return
		}

		sleep := backoff
		if sleep > remaining {
			sleep = remaining
		}
		time.Sleep(sleep)

		// Exponential backoff with cap
		if backoff < maxBackoff {
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}
	}
}
