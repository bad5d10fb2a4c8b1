package capture

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testResult() *Result {
	return &Result{
		Captured: map[int]bool{3: true, 0: true},
		Curve: []Point{
			{Day: 0, Count: 0},
			{Day: 30, Count: 1},
			{Day: 60, Count: 2},
		},
	}
}

func TestWriteCurveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.csv")
	if err := testResult().WriteCurveCSV(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "day,count" {
		t.Errorf("expected header day,count, got %q", lines[0])
	}
	if lines[2] != "30,1" {
		t.Errorf("expected row 30,1, got %q", lines[2])
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.json")
	if err := testResult().WriteJSON(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var decoded struct {
		Captured []int   `json:"captured"`
		Count    int     `json:"count"`
		Curve    []Point `json:"curve"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Count != 2 {
		t.Errorf("expected count 2, got %d", decoded.Count)
	}
	if len(decoded.Captured) != 2 || decoded.Captured[0] != 0 || decoded.Captured[1] != 3 {
		t.Errorf("expected captured [0 3], got %v", decoded.Captured)
	}
	if len(decoded.Curve) != 3 {
		t.Errorf("expected 3 curve points, got %d", len(decoded.Curve))
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(testResult(), 10)

	if s.Captured != 2 || s.Particles != 10 {
		t.Errorf("expected 2/10 captured, got %d/%d", s.Captured, s.Particles)
	}
	if math.Abs(s.Rate-0.2) > 1e-12 {
		t.Errorf("expected rate 0.2, got %v", s.Rate)
	}
	// one capture at day 30 and one at day 60
	if math.Abs(s.MeanDay-45) > 1e-12 {
		t.Errorf("expected mean capture day 45, got %v", s.MeanDay)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(&Result{Captured: map[int]bool{}}, 0)
	if s.Rate != 0 || s.MeanDay != 0 || s.MedianDay != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}
