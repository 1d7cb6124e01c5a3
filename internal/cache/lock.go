package cache

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/conn-castle/linux-msvc/internal/messages"
)

type fileLock struct {
	file *os.File
}

var (
	flockFn   = unix.Flock
	lockSleep = time.Sleep
)

var (
	lockWaitTimeout = 5 * time.Minute
	lockPollEvery   = 100 * time.Millisecond
)

// withFileLock holds an exclusive advisory lock on path while fn runs.
func withFileLock(path string, fn func() error) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf(messages.CacheOpenLockFmt, path, err)
	}
	lock := &fileLock{file: file}
	if err := lock.acquire(); err != nil {
		_ = file.Close()
		return fmt.Errorf(messages.CacheLockFmt, path, err)
	}
	defer func() {
		_ = lock.release()
	}()
	return fn()
}

// acquire polls a non-blocking flock until it succeeds or the wait times out.
func (l *fileLock) acquire() error {
	deadline := time.Now().Add(lockWaitTimeout)
	for {
		err := flockFn(int(l.file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EAGAIN) {
			return err
		}
		if time.Now().After(deadline) {
			return fmt.Errorf(messages.CacheLockTimeoutFmt, lockWaitTimeout)
		}
		lockSleep(lockPollEvery)
	}
}

func (l *fileLock) release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := flockFn(int(l.file.Fd()), unix.LOCK_UN)
	closeErr := l.file.Close()
	if unlockErr != nil {
		return unlockErr
	}
	return closeErr
}
