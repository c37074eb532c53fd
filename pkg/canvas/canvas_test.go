package canvas

import (
	"testing"
)

func TestSectorValidate(t *testing.T) {
	tests := []struct {
		name    string
		sector  Sector
		wantErr bool
	}{
		{"full canvas", NewSector(0, 0, 700, 700), false},
		{"interior sector", NewSector(217, 231, 259, 273), false},
		{"empty sector", NewSector(10, 10, 10, 10), false},
		{"single pixel", NewSector(699, 699, 700, 700), false},
		{"x2 beyond canvas", NewSector(0, 0, 701, 700), true},
		{"y2 beyond canvas", NewSector(0, 0, 700, 701), true},
		{"x1 greater than x2", NewSector(500, 0, 400, 700), true},
		{"y1 greater than y2", NewSector(0, 500, 700, 400), true},
		{"negative origin", NewSector(-1, 0, 10, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sector.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("Validate(%s) = nil, want error", tt.sector)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate(%s) = %v, want nil", tt.sector, err)
			}
		})
	}
}

func TestSectorDimensions(t *testing.T) {
	s := NewSector(10, 20, 15, 28)

	if s.Height() != 5 {
		t.Errorf("Height() = %d, want 5", s.Height())
	}
	if s.Width() != 8 {
		t.Errorf("Width() = %d, want 8", s.Width())
	}
	if s.Size() != 40 {
		t.Errorf("Size() = %d, want 40", s.Size())
	}
}

func TestSectorContains(t *testing.T) {
	s := NewSector(10, 20, 15, 25)

	tests := []struct {
		coord Coordinate
		want  bool
	}{
		{Coordinate{10, 20}, true},  // origin corner included
		{Coordinate{14, 24}, true},  // last cell included
		{Coordinate{15, 24}, false}, // half-open on x
		{Coordinate{14, 25}, false}, // half-open on y
		{Coordinate{9, 22}, false},
		{Coordinate{12, 19}, false},
	}

	for _, tt := range tests {
		if got := s.Contains(tt.coord); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.coord, got, tt.want)
		}
	}
}

func TestSectorCoordinates(t *testing.T) {
	s := NewSector(1, 2, 3, 4)

	coords := s.Coordinates()
	want := []Coordinate{
		{1, 2}, {1, 3},
		{2, 2}, {2, 3},
	}

	if len(coords) != len(want) {
		t.Fatalf("Coordinates() returned %d coords, want %d", len(coords), len(want))
	}
	for i, c := range coords {
		if c != want[i] {
			t.Errorf("Coordinates()[%d] = %s, want %s", i, c, want[i])
		}
	}
}

func TestSectorCoordinatesEmpty(t *testing.T) {
	if got := NewSector(5, 5, 5, 9).Coordinates(); len(got) != 0 {
		t.Errorf("empty sector returned %d coordinates, want 0", len(got))
	}
}

func TestSectorColumnSlice(t *testing.T) {
	s := NewSector(0, 10, 5, 20) // 10 columns

	tests := []struct {
		name   string
		offset int
		cols   int
		want   Sector
	}{
		{"first slice", 0, 4, NewSector(0, 10, 5, 14)},
		{"middle slice", 4, 4, NewSector(0, 14, 5, 18)},
		{"clipped remainder", 8, 4, NewSector(0, 18, 5, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ColumnSlice(tt.offset, tt.cols); got != tt.want {
				t.Errorf("ColumnSlice(%d, %d) = %s, want %s", tt.offset, tt.cols, got, tt.want)
			}
		})
	}
}

func TestCoordinateString(t *testing.T) {
	if got := (Coordinate{3, 7}).String(); got != "(3,7)" {
		t.Errorf("String() = %q, want %q", got, "(3,7)")
	}
}
