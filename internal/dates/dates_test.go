package dates

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

func TestResolve(t *testing.T) {
	today := civil.Date{Year: 2024, Month: time.March, Day: 10}

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "yesterday",
			text: "Gasté 35 soles en comida ayer",
			want: "2024-03-09",
		},
		{
			name: "day before yesterday wins over yesterday",
			text: "compré zapatos antes de ayer",
			want: "2024-03-08",
		},
		{
			name: "today",
			text: "pagué la luz hoy",
			want: "2024-03-10",
		},
		{
			name: "uppercase phrase",
			text: "AYER almorcé fuera",
			want: "2024-03-09",
		},
		{
			name: "day slash month",
			text: "pagué 20/3",
			want: "2024-03-20",
		},
		{
			name: "day dash month",
			text: "taxi el 7-11",
			want: "2024-11-07",
		},
		{
			name: "invalid day month combination falls back to today",
			text: "pagué el 31/2",
			want: "2024-03-10",
		},
		{
			name: "out of range month falls back to today",
			text: "cena el 12/25",
			want: "2024-03-10",
		},
		{
			name: "day de month name",
			text: "matrícula el 5 de enero",
			want: "2024-01-05",
		},
		{
			name: "month name case insensitive",
			text: "viaje el 15 de Diciembre",
			want: "2024-12-15",
		},
		{
			name: "invalid day for named month falls back to today",
			text: "algo el 31 de febrero",
			want: "2024-03-10",
		},
		{
			name: "no date reference",
			text: "almuerzo 25 soles",
			want: "2024-03-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.text, today); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTodayIn(t *testing.T) {
	loc, err := Location()
	if err != nil {
		t.Fatalf("Location() failed: %v", err)
	}

	// 2024-03-11 02:00 UTC is still 2024-03-10 in Lima (UTC-5).
	instant := time.Date(2024, time.March, 11, 2, 0, 0, 0, time.UTC)
	got := TodayIn(instant, loc)
	want := civil.Date{Year: 2024, Month: time.March, Day: 10}
	if got != want {
		t.Errorf("TodayIn = %v, want %v", got, want)
	}
}
