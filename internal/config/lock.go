package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/footprint-tools/scopes/internal/paths"
)

const (
	lockTimeout      = 5 * time.Second
	staleLockTimeout = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

// ErrLockTimeout is returned when another writer keeps the rc file locked
// past lockTimeout.
var ErrLockTimeout = errors.New("config: lock timeout")

// fileLock is an O_EXCL lock file holding the owner's pid.
type fileLock struct {
	path string
	f    *os.File
}

// tryAcquire takes the lock if it is free or stale.
func (l *fileLock) tryAcquire() (bool, error) {
	if info, err := os.Stat(l.path); err == nil && time.Since(info.ModTime()) > staleLockTimeout {
		_ = os.Remove(l.path)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	switch {
	case err == nil:
		_, _ = fmt.Fprint(f, os.Getpid())
		l.f = f
		return true, nil
	case errors.Is(err, os.ErrExist):
		return false, nil
	default:
		return false, err
	}
}

func (l *fileLock) release() {
	_ = l.f.Close()
	_ = os.Remove(l.path)
}

// WithLock runs fn while holding <rc file>.lock.
func WithLock(fn func() error) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return err
	}

	l := &fileLock{path: configPath + ".lock"}
	deadline := time.Now().Add(lockTimeout)
	for {
		ok, err := l.tryAcquire()
		if err != nil {
			return err
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: %s", ErrLockTimeout, l.path)
		}
		time.Sleep(lockPollInterval)
	}
	defer l.release()

	return fn()
}
