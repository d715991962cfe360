package pagination

import "testing"

func TestPaginate(t *testing.T) {
	for _, tc := range []struct {
		name       string
		total      int
		size       int
		requested  int
		wantPage   int
		wantPages  int
		wantOffset int
		wantNext   bool
		wantPrev   bool
	}{
		{"first of two", 15, 10, 1, 1, 2, 0, true, false},
		{"last of two", 15, 10, 2, 2, 2, 10, false, true},
		{"page zero clamps to first", 15, 10, 0, 1, 2, 0, true, false},
		{"negative clamps to first", 15, 10, -3, 1, 2, 0, true, false},
		{"overflow clamps to last", 15, 10, 99, 2, 2, 10, false, true},
		{"exact fit", 20, 10, 2, 2, 2, 10, false, true},
		{"single page", 5, 10, 1, 1, 1, 0, false, false},
		{"empty listing", 0, 10, 1, 1, 1, 0, false, false},
		{"empty listing overflow", 0, 10, 7, 1, 1, 0, false, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(tc.total, tc.size, tc.requested)
			if got.CurrentPage != tc.wantPage {
				t.Errorf("CurrentPage = %d, want %d", got.CurrentPage, tc.wantPage)
			}
			if got.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tc.wantPages)
			}
			if got.Offset != tc.wantOffset {
				t.Errorf("Offset = %d, want %d", got.Offset, tc.wantOffset)
			}
			if got.HasNext != tc.wantNext {
				t.Errorf("HasNext = %v, want %v", got.HasNext, tc.wantNext)
			}
			if got.HasPrev != tc.wantPrev {
				t.Errorf("HasPrev = %v, want %v", got.HasPrev, tc.wantPrev)
			}
		})
	}
}

// Pages must partition the listing exactly: every item appears on exactly one
// page and the window sizes add up to the total.
func TestPaginatePartitions(t *testing.T) {
	const total, size = 53, 10
	seen := make(map[int]int)
	p := Paginate(total, size, 1)
	for page := 1; page <= p.TotalPages; page++ {
		w := Paginate(total, size, page)
		end := w.Offset + w.Limit
		if end > total {
			end = total
		}
		for i := w.Offset; i < end; i++ {
			seen[i]++
		}
	}
	if len(seen) != total {
		t.Fatalf("pages cover %d items, want %d", len(seen), total)
	}
	for i, n := range seen {
		if n != 1 {
			t.Fatalf("item %d covered %d times", i, n)
		}
	}
}
