package eventloop

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/sys/unix"
)

// fakeConn stands in for the display: every function sent on events is one
// queued compositor event.
type fakeConn struct {
	events chan func() error
}

func newFakeConn() *fakeConn {
	return &fakeConn{events: make(chan func() error, 16)}
}

func (c *fakeConn) Events() <-chan func() error { return c.events }

func newTestLoop(t *testing.T, conn Conn, cfg Config) *Loop {
	t.Helper()
	logger, _ := test.NewNullLogger()
	cfg.Logger = logger
	l, err := New(conn, cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestRun_CloseTimeout(t *testing.T) {
	conn := newFakeConn()
	l := newTestLoop(t, conn, Config{CloseTimeout: 50 * time.Millisecond})

	start := time.Now()
	reason, err := l.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if reason != ReasonTimeout {
		t.Fatalf("Run() reason = %v, want timeout", reason)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Fatalf("Run() returned after %v, before the timeout", elapsed)
	}
}

func TestRun_DispatchesQueuedEventsInOrder(t *testing.T) {
	conn := newFakeConn()
	running := true
	var got []int
	for i := 1; i <= 3; i++ {
		conn.events <- func() error {
			got = append(got, i)
			if i == 3 {
				running = false
			}
			return nil
		}
	}
	// An expired timeout must not win over events already queued.
	l := newTestLoop(t, conn, Config{
		CloseTimeout: time.Nanosecond,
		Running:      func() bool { return running },
	})
	time.Sleep(5 * time.Millisecond)

	reason, err := l.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if reason != ReasonStopped {
		t.Fatalf("Run() reason = %v, want stopped", reason)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("dispatched %v, want [1 2 3]", got)
	}
}

func TestRun_DispatchesIncomingEvents(t *testing.T) {
	conn := newFakeConn()
	running := true
	l := newTestLoop(t, conn, Config{
		CloseTimeout: 5 * time.Second,
		Running:      func() bool { return running },
	})

	go func() {
		time.Sleep(10 * time.Millisecond)
		conn.events <- func() error {
			running = false
			return nil
		}
	}()
	reason, err := l.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if reason != ReasonStopped {
		t.Fatalf("Run() reason = %v, want stopped", reason)
	}
}

func TestRun_Hangup(t *testing.T) {
	conn := newFakeConn()
	l := newTestLoop(t, conn, Config{CloseTimeout: 5 * time.Second})

	close(conn.events)

	if _, err := l.Run(); !errors.Is(err, ErrHangup) {
		t.Fatalf("Run() error = %v, want ErrHangup", err)
	}
}

func TestRun_EventErrorIsFatal(t *testing.T) {
	conn := newFakeConn()
	boom := errors.New("boom")
	conn.events <- func() error { return boom }
	l := newTestLoop(t, conn, Config{CloseTimeout: 5 * time.Second})

	if _, err := l.Run(); !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want it to wrap %v", err, boom)
	}
}

func TestRun_Signal(t *testing.T) {
	conn := newFakeConn()
	l := newTestLoop(t, conn, Config{CloseTimeout: 5 * time.Second})

	go func() {
		time.Sleep(20 * time.Millisecond)
		unix.Kill(os.Getpid(), unix.SIGTERM)
	}()

	reason, err := l.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if reason != ReasonSignal {
		t.Fatalf("Run() reason = %v, want signal", reason)
	}
}

func TestRun_ClockTick(t *testing.T) {
	conn := newFakeConn()
	running := true
	ticks := 0
	// Just short of a boundary, so the first tick is due almost at once.
	almost := time.Date(2026, 3, 1, 12, 34, 59, 990_000_000, time.UTC)
	l := newTestLoop(t, conn, Config{
		CloseTimeout: 5 * time.Second,
		Clock:        true,
		Now:          func() time.Time { return almost },
		OnTick: func() {
			ticks++
			running = false
		},
		Running: func() bool { return running },
	})

	reason, err := l.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if reason != ReasonStopped || ticks != 1 {
		t.Fatalf("Run() = %v with %d ticks, want stopped after 1 tick", reason, ticks)
	}
}

func TestRun_NotRunningReturnsAtOnce(t *testing.T) {
	conn := newFakeConn()
	l := newTestLoop(t, conn, Config{Running: func() bool { return false }})

	reason, err := l.Run()
	if err != nil || reason != ReasonStopped {
		t.Fatalf("Run() = %v, %v, want stopped, nil", reason, err)
	}
}

func TestNextMinute(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 34, 0, 0, time.UTC)
	tests := []struct {
		now  time.Time
		want time.Time
	}{
		{now: base, want: base.Add(time.Minute)},
		{now: base.Add(59 * time.Second), want: base.Add(time.Minute)},
		{now: base.Add(30*time.Second + 5*time.Millisecond), want: base.Add(time.Minute)},
	}
	for _, tt := range tests {
		if got := NextMinute(tt.now); !got.Equal(tt.want) {
			t.Fatalf("NextMinute(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}
