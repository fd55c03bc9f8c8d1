package cache

import "testing"

func TestHasAddRoundTrip(t *testing.T) {
	c := New(10)
	if c.Has("a") {
		t.Fatal("fresh cache should not contain anything")
	}
	c.Add("a")
	if !c.Has("a") {
		t.Fatal("cache should contain a key right after Add")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2)
	c.Add("a")
	c.Add("b")
	// Touch "a" so "b" becomes the least-recently-used entry.
	c.Has("a")
	c.Add("c")

	if !c.Has("a") {
		t.Error("recently-touched key should survive eviction")
	}
	if c.Has("b") {
		t.Error("least-recently-used key should have been evicted")
	}
	if !c.Has("c") {
		t.Error("newly added key should be present")
	}
}

func TestLenTracksDistinctKeys(t *testing.T) {
	c := New(10)
	c.Add("a")
	c.Add("b")
	c.Add("a")
	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestNewFallsBackToDefaultSize(t *testing.T) {
	c := New(0)
	if c == nil {
		t.Fatal("New(0) should not return nil")
	}
	c.Add("x")
	if !c.Has("x") {
		t.Fatal("cache created with default size should still work")
	}
}
