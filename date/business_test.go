package date

import "testing"

func TestPrevBusinessDay(t *testing.T) {
	tests := []struct {
		day  Date // 2024-03-04 is a Monday
		want Date
	}{
		{New(2024, 3, 4), New(2024, 3, 1)},  // Monday -> Friday
		{New(2024, 3, 5), New(2024, 3, 4)},  // Tuesday -> Monday
		{New(2024, 3, 8), New(2024, 3, 7)},  // Friday -> Thursday
		{New(2024, 3, 9), New(2024, 3, 8)},  // Saturday -> Friday
		{New(2024, 3, 10), New(2024, 3, 8)}, // Sunday -> Friday
		{New(2024, 1, 1), New(2023, 12, 29)},
	}
	for _, tt := range tests {
		if got := tt.day.PrevBusinessDay(); got != tt.want {
			t.Errorf("%v.PrevBusinessDay() = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestAddBusinessDays(t *testing.T) {
	friday := New(2024, 3, 8)
	tests := []struct {
		n    int
		want Date
	}{
		{0, friday},
		{1, New(2024, 3, 11)},
		{5, New(2024, 3, 15)},
		{-5, New(2024, 3, 1)},
		{-6, New(2024, 2, 29)},
	}
	for _, tt := range tests {
		if got := friday.AddBusinessDays(tt.n); got != tt.want {
			t.Errorf("AddBusinessDays(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
