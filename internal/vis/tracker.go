package vis

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

// trackerPacket is one detector frame from the webcam sidecar: 21 [x,y]
// pairs in normalized image coordinates, or null when no hand is visible.
type trackerPacket struct {
	Landmarks [][2]float64 `json:"landmarks"`
}

// Tracker receives hand-landmark frames over a local UDP socket and
// publishes interpreted gesture state to the shared cell. The detector
// itself (camera capture, hand model) lives in an external process; only
// its output crosses this boundary.
type Tracker struct {
	addr      string
	interp    *Interpreter
	lastNanos atomic.Int64

	lms []Landmark // reused per datagram
}

func NewTracker(addr string) *Tracker {
	return &Tracker{
		addr:   addr,
		interp: NewInterpreter(),
		lms:    make([]Landmark, 0, LandmarkCount),
	}
}

// Active reports whether a detector frame arrived within the given window.
// The main loop falls back to simulated input while the tracker is silent.
func (t *Tracker) Active(now time.Time, window time.Duration) bool {
	last := t.lastNanos.Load()
	return last != 0 && now.UnixNano()-last < int64(window)
}

// Run listens for detector frames until the context is cancelled. A bind
// failure is returned to the caller; once listening, malformed datagrams
// count as "no hand" for that frame and never stop the loop.
func (t *Tracker) Run(ctx context.Context, cell *GestureCell) error {
	conn, err := net.ListenPacket("udp", t.addr)
	if err != nil {
		return fmt.Errorf("tracker listen %s: %w", t.addr, err)
	}

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	buf := make([]byte, 4096)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			continue
		}
		cell.Store(t.interp.Interpret(t.decode(buf[:n])))
		t.lastNanos.Store(time.Now().UnixNano())
	}
}

// decode parses one datagram into the reused landmark slice. Anything that
// is not a full 21-point frame yields nil, which Interpret treats as the
// steady-state "no hand" branch.
func (t *Tracker) decode(data []byte) []Landmark {
	var pkt trackerPacket
	if err := json.Unmarshal(data, &pkt); err != nil {
		return nil
	}
	if len(pkt.Landmarks) < LandmarkCount {
		return nil
	}
	t.lms = t.lms[:0]
	for _, p := range pkt.Landmarks[:LandmarkCount] {
		t.lms = append(t.lms, Landmark{X: p[0], Y: p[1]})
	}
	return t.lms
}
