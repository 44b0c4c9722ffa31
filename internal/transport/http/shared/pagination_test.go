package shared

import (
	"net/http/httptest"
	"testing"
)

func TestParsePaginationDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/items", nil)

	page := ParsePagination(r, 50, 200)
	if page.Limit != 50 || page.Offset != 0 {
		t.Fatalf("unexpected defaults: %+v", page)
	}
}

func TestParsePaginationClampsLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/items?limit=9999&offset=20", nil)

	page := ParsePagination(r, 50, 200)
	if page.Limit != 200 {
		t.Fatalf("expected limit clamped to 200, got %d", page.Limit)
	}
	if page.Offset != 20 {
		t.Fatalf("expected offset 20, got %d", page.Offset)
	}
}

func TestParsePaginationIgnoresGarbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/items?limit=abc&offset=-5", nil)

	page := ParsePagination(r, 50, 200)
	if page.Limit != 50 || page.Offset != 0 {
		t.Fatalf("invalid values should fall back: %+v", page)
	}
}
