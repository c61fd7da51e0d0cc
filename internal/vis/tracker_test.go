package vis

import (
	"encoding/json"
	"testing"
)

func packetJSON(t *testing.T, n int) []byte {
	t.Helper()
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{float64(i) / 100, 0.5}
	}
	data, err := json.Marshal(trackerPacket{Landmarks: pts})
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestDecodeFullFrame(t *testing.T) {
	tr := NewTracker("127.0.0.1:0")
	lms := tr.decode(packetJSON(t, LandmarkCount))
	if len(lms) != LandmarkCount {
		t.Fatalf("got %d landmarks, want %d", len(lms), LandmarkCount)
	}
	assertNear(t, "landmark 9 x", lms[9].X, 0.09)
	assertNear(t, "landmark 9 y", lms[9].Y, 0.5)
}

func TestDecodeNoHand(t *testing.T) {
	tr := NewTracker("127.0.0.1:0")
	if lms := tr.decode([]byte(`{"landmarks":null}`)); lms != nil {
		t.Errorf("null landmarks should decode to nil, got %d points", len(lms))
	}
}

func TestDecodeMalformed(t *testing.T) {
	tr := NewTracker("127.0.0.1:0")
	cases := [][]byte{
		[]byte(`not json`),
		[]byte(`{}`),
		packetJSON(t, 10), // short frame
	}
	for _, data := range cases {
		if lms := tr.decode(data); lms != nil {
			t.Errorf("malformed datagram %q should decode to nil", data)
		}
	}
}

func TestDecodeFeedsInterpreter(t *testing.T) {
	tr := NewTracker("127.0.0.1:0")
	g := tr.interp.Interpret(tr.decode(packetJSON(t, LandmarkCount)))
	if !g.HandDetected {
		t.Error("full frame should detect a hand")
	}
	g = tr.interp.Interpret(tr.decode([]byte(`garbage`)))
	if g.HandDetected {
		t.Error("malformed frame must behave as no hand")
	}
}
