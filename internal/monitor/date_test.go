package monitor

import (
	"testing"
	"time"
)

func TestPrevDay(t *testing.T) {
	tests := []struct {
		name                string
		year, month, day    int
		wantY, wantM, wantD int
		wantOK              bool
	}{
		{"mid month", 2024, 3, 15, 2024, 3, 14, true},
		{"month rollover", 2024, 3, 1, 2024, 2, 29, true},
		{"non leap year february", 2023, 3, 1, 2023, 2, 28, true},
		{"year rollover", 2024, 1, 1, 2023, 12, 31, true},
		{"invalid month 13", 2024, 13, 1, 0, 0, 0, false},
		{"invalid day 0", 2024, 3, 0, 0, 0, 0, false},
		{"day 31 of a 30 day month", 2024, 4, 31, 0, 0, 0, false},
		{"feb 29 of non leap year", 2023, 2, 29, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m, d, ok := PrevDay(tt.year, tt.month, tt.day)
			if ok != tt.wantOK {
				t.Fatalf("PrevDay(%d, %d, %d) ok = %v, want %v", tt.year, tt.month, tt.day, ok, tt.wantOK)
			}
			if ok && (y != tt.wantY || m != tt.wantM || d != tt.wantD) {
				t.Errorf("PrevDay(%d, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.year, tt.month, tt.day, y, m, d, tt.wantY, tt.wantM, tt.wantD)
			}
		})
	}
}

func TestNextDay(t *testing.T) {
	tests := []struct {
		name                string
		year, month, day    int
		wantY, wantM, wantD int
		wantOK              bool
	}{
		{"mid month", 2024, 3, 15, 2024, 3, 16, true},
		{"leap day", 2024, 2, 28, 2024, 2, 29, true},
		{"month rollover", 2024, 2, 29, 2024, 3, 1, true},
		{"year rollover", 2023, 12, 31, 2024, 1, 1, true},
		{"invalid month 0", 2024, 0, 10, 0, 0, 0, false},
		{"invalid day 32", 2024, 1, 32, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m, d, ok := NextDay(tt.year, tt.month, tt.day)
			if ok != tt.wantOK {
				t.Fatalf("NextDay(%d, %d, %d) ok = %v, want %v", tt.year, tt.month, tt.day, ok, tt.wantOK)
			}
			if ok && (y != tt.wantY || m != tt.wantM || d != tt.wantD) {
				t.Errorf("NextDay(%d, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.year, tt.month, tt.day, y, m, d, tt.wantY, tt.wantM, tt.wantD)
			}
		})
	}
}

func TestPrevNextDayRoundTrip(t *testing.T) {
	dates := [][3]int{
		{2024, 1, 1},
		{2024, 2, 29},
		{2024, 3, 1},
		{2024, 12, 31},
		{2025, 6, 15},
		{2000, 2, 29}, // century leap year
	}

	for _, date := range dates {
		y, m, d := date[0], date[1], date[2]

		ny, nm, nd, ok := NextDay(y, m, d)
		if !ok {
			t.Fatalf("NextDay(%d, %d, %d) unexpectedly invalid", y, m, d)
		}
		py, pm, pd, ok := PrevDay(ny, nm, nd)
		if !ok {
			t.Fatalf("PrevDay(%d, %d, %d) unexpectedly invalid", ny, nm, nd)
		}
		if py != y || pm != m || pd != d {
			t.Errorf("PrevDay(NextDay(%d, %d, %d)) = (%d, %d, %d), want the original date", y, m, d, py, pm, pd)
		}

		py, pm, pd, ok = PrevDay(y, m, d)
		if !ok {
			t.Fatalf("PrevDay(%d, %d, %d) unexpectedly invalid", y, m, d)
		}
		ny, nm, nd, ok = NextDay(py, pm, pd)
		if !ok {
			t.Fatalf("NextDay(%d, %d, %d) unexpectedly invalid", py, pm, pd)
		}
		if ny != y || nm != m || nd != d {
			t.Errorf("NextDay(PrevDay(%d, %d, %d)) = (%d, %d, %d), want the original date", y, m, d, ny, nm, nd)
		}
	}
}

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		withDate bool
		want     string
	}{
		{
			name:     "morning with date",
			at:       time.Date(2024, 3, 5, 9, 5, 30, 0, time.UTC),
			withDate: true,
			want:     "2024-03-05 09:05AM",
		},
		{
			name:     "afternoon with date",
			at:       time.Date(2024, 12, 25, 16, 30, 0, 0, time.UTC),
			withDate: true,
			want:     "2024-12-25 04:30PM",
		},
		{
			name:     "time only",
			at:       time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC),
			withDate: false,
			want:     "11:59PM",
		},
		{
			name:     "midnight",
			at:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			withDate: false,
			want:     "12:00AM",
		},
		{
			name:     "noon",
			at:       time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
			withDate: false,
			want:     "12:00PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Timestamp(tt.at, tt.withDate)
			if got != tt.want {
				t.Errorf("Timestamp() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateKeyNotZeroPadded(t *testing.T) {
	if got := DateKey(2024, 3, 5); got != "2024-3-5" {
		t.Errorf("DateKey(2024, 3, 5) = %q, want %q", got, "2024-3-5")
	}
	if got := DateKey(2024, 12, 25); got != "2024-12-25" {
		t.Errorf("DateKey(2024, 12, 25) = %q, want %q", got, "2024-12-25")
	}
}
