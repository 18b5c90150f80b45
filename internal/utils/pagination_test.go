package utils

import "testing"

func TestNewPaginationDefaults(t *testing.T) {
	pg, err := NewPagination("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pg.Page != 1 || pg.Size != 20 || pg.Offset != 0 {
		t.Errorf("unexpected defaults: %+v", pg)
	}
}

func TestNewPaginationOffset(t *testing.T) {
	cases := []struct {
		page, size string
		wantOffset int
	}{
		{"1", "10", 0},
		{"2", "10", 10},
		{"3", "25", 50},
		{"10", "100", 900},
	}

	for _, tc := range cases {
		pg, err := NewPagination(tc.page, tc.size)
		if err != nil {
			t.Errorf("NewPagination(%q, %q): unexpected error %v", tc.page, tc.size, err)
			continue
		}
		if pg.Offset != tc.wantOffset {
			t.Errorf("NewPagination(%q, %q): offset %d, want %d", tc.page, tc.size, pg.Offset, tc.wantOffset)
		}
	}
}

func TestNewPaginationRejectsInvalid(t *testing.T) {
	cases := []struct {
		page, size string
		wantErr    error
	}{
		{"0", "", ErrInvalidPage},
		{"-1", "", ErrInvalidPage},
		{"abc", "", ErrInvalidPage},
		{"", "0", ErrInvalidPageSize},
		{"", "101", ErrInvalidPageSize},
		{"", "-5", ErrInvalidPageSize},
		{"", "lots", ErrInvalidPageSize},
	}

	for _, tc := range cases {
		if _, err := NewPagination(tc.page, tc.size); err != tc.wantErr {
			t.Errorf("NewPagination(%q, %q): got %v, want %v", tc.page, tc.size, err, tc.wantErr)
		}
	}
}

func TestNewPaginationBounds(t *testing.T) {
	if _, err := NewPagination("1", "100"); err != nil {
		t.Errorf("page_size 100 should be accepted, got %v", err)
	}
	if _, err := NewPagination("1", "1"); err != nil {
		t.Errorf("page_size 1 should be accepted, got %v", err)
	}
}
