// Package eventloop multiplexes the compositor event queue with the close
// timeout, the minute clock and termination signals on one goroutine.
package eventloop

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Conn is the part of the display connection the loop drives. Events
// yields queued handlers in the order the compositor sent them and is
// closed once the connection stops.
type Conn interface {
	Events() <-chan func() error
}

// Reason says why Run returned without error.
type Reason int

const (
	// ReasonStopped means the run flag was cleared by an event handler.
	ReasonStopped Reason = iota
	ReasonTimeout
	ReasonSignal
)

func (r Reason) String() string {
	switch r {
	case ReasonTimeout:
		return "timeout"
	case ReasonSignal:
		return "signal"
	default:
		return "stopped"
	}
}

// ErrHangup is returned when the compositor closes the connection.
var ErrHangup = errors.New("eventloop: compositor connection closed")

type Config struct {
	// CloseTimeout exits the loop after this long; zero disables it.
	CloseTimeout time.Duration
	// Clock arms a wall-clock timer firing on every minute boundary.
	Clock  bool
	OnTick func()
	// Running is consulted before every wait.
	Running func() bool
	Now     func() time.Time
	Logger  logrus.FieldLogger
}

// Loop owns the timers and the signal subscription.
type Loop struct {
	conn Conn
	cfg  Config
	log  logrus.FieldLogger

	sigCh   chan os.Signal
	timeout *time.Timer
	clock   *time.Timer
}

// New subscribes to SIGINT and SIGTERM and arms the timers the config asks
// for. Signals are observed by Run rather than a handler.
func New(conn Conn, cfg Config) (*Loop, error) {
	if conn == nil {
		return nil, errors.New("eventloop: nil connection")
	}
	if cfg.Running == nil {
		cfg.Running = func() bool { return true }
	}
	if cfg.OnTick == nil {
		cfg.OnTick = func() {}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	l := &Loop{
		conn:  conn,
		cfg:   cfg,
		log:   cfg.Logger.WithField("component", "eventloop"),
		sigCh: make(chan os.Signal, 1),
	}
	signal.Notify(l.sigCh, unix.SIGINT, unix.SIGTERM)

	if cfg.CloseTimeout > 0 {
		l.timeout = time.NewTimer(cfg.CloseTimeout)
	}
	if cfg.Clock {
		l.clock = time.NewTimer(l.untilNextMinute())
	}
	return l, nil
}

// NextMinute returns the first whole minute strictly after now.
func NextMinute(now time.Time) time.Time {
	return now.Truncate(time.Minute).Add(time.Minute)
}

func (l *Loop) untilNextMinute() time.Duration {
	now := l.cfg.Now()
	return NextMinute(now).Sub(now)
}

// timerC returns t's channel, or nil so a disabled timer never fires.
func timerC(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

// Run dispatches until the run flag is cleared, the timeout expires or a
// termination signal arrives. Events already queued are handled before the
// timers are looked at.
func (l *Loop) Run() (Reason, error) {
	events := l.conn.Events()
	for l.cfg.Running() {
		select {
		case ev, ok := <-events:
			if !ok {
				return ReasonStopped, ErrHangup
			}
			if err := ev(); err != nil {
				return ReasonStopped, fmt.Errorf("dispatch: %w", err)
			}
			continue
		default:
		}

		select {
		case ev, ok := <-events:
			if !ok {
				return ReasonStopped, ErrHangup
			}
			if err := ev(); err != nil {
				return ReasonStopped, fmt.Errorf("dispatch: %w", err)
			}
		case <-timerC(l.timeout):
			l.log.Debug("close timeout expired")
			return ReasonTimeout, nil
		case sig := <-l.sigCh:
			l.log.WithField("signal", sig).Debug("termination signal received")
			return ReasonSignal, nil
		case <-timerC(l.clock):
			l.clock.Reset(l.untilNextMinute())
			l.cfg.OnTick()
		}
	}
	return ReasonStopped, nil
}

// Close stops the timers and the signal subscription. The connection itself
// is left alone.
func (l *Loop) Close() error {
	if l.sigCh != nil {
		signal.Stop(l.sigCh)
		l.sigCh = nil
	}
	for _, t := range []*time.Timer{l.timeout, l.clock} {
		if t != nil {
			t.Stop()
		}
	}
	return nil
}
