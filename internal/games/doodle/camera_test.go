package doodle

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		height float64
		want   int
	}{
		{0, 0},
		{-50, 0},
		{9.99, 0},
		{10, 1},
		{19.5, 1},
		{12345.6, 1234},
	}

	for _, tt := range tests {
		if got := Score(tt.height, 10); got != tt.want {
			t.Errorf("Score(%v) = %d, expected %d", tt.height, got, tt.want)
		}
	}
}

func TestTrackCameraFollowsUpwardOnly(t *testing.T) {
	p := DefaultParams()

	s := bareState(800, 600)
	s.CameraY = 50
	s.Player.Y = 400
	s, _ = Track(s, p)
	if s.CameraY != 50 {
		t.Errorf("CameraY = %v, expected unchanged 50", s.CameraY)
	}

	s.Player.Y = 200
	s, _ = Track(s, p)
	if s.CameraY != 100 {
		t.Errorf("CameraY = %v, expected 100", s.CameraY)
	}

	s.Player.Y = 299
	s, _ = Track(s, p)
	if s.CameraY != 1 {
		t.Errorf("CameraY = %v, expected 1", s.CameraY)
	}

	s.Player.Y = 500
	s, _ = Track(s, p)
	if s.CameraY != 1 {
		t.Errorf("CameraY = %v, expected 1 while below the midpoint", s.CameraY)
	}
}

func TestTrackMaxHeightMonotonic(t *testing.T) {
	p := DefaultParams()
	s := bareState(800, 600)

	ys := []float64{530, 500, 560, 700, 300, 450, -100, 200, 650}
	prev := 0.0
	best := 0.0
	for _, y := range ys {
		s.Player.Y = y
		var changed bool
		s, changed = Track(s, p)
		if s.MaxHeight < prev {
			t.Fatalf("MaxHeight decreased: %v -> %v", prev, s.MaxHeight)
		}
		if h := 600 - y; h > best {
			best = h
		}
		if s.MaxHeight != best {
			t.Errorf("Y=%v: MaxHeight = %v, expected %v", y, s.MaxHeight, best)
		}
		if want := Score(s.MaxHeight, 10) > Score(prev, 10); changed != want {
			t.Errorf("Y=%v: scoreChanged = %v, expected %v", y, changed, want)
		}
		prev = s.MaxHeight
	}
}

func TestTrackWin(t *testing.T) {
	tests := []struct {
		name    string
		winning int
		status  Status
		y       float64
		want    Status
	}{
		{"reaches goal", 10, StatusRunning, 500, StatusWon},
		{"past goal", 10, StatusRunning, 100, StatusWon},
		{"below goal", 10, StatusRunning, 501, StatusRunning},
		{"endless", 0, StatusRunning, -100000, StatusRunning},
		{"already lost", 10, StatusLost, 100, StatusLost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			p.WinningScore = tt.winning
			s := bareState(800, 600)
			s.Status = tt.status
			s.Player.Y = tt.y

			next, _ := Track(s, p)
			if next.Status != tt.want {
				t.Errorf("Status = %v, expected %v", next.Status, tt.want)
			}
		})
	}
}
