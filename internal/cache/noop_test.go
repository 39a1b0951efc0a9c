package cache

import "testing"

func TestNoopCache(t *testing.T) {
	c, err := New("none", ProviderConfig{})
	if err != nil {
		t.Fatalf("New none: %v", err)
	}
	defer c.Close()

	c.Set("search:batman", []byte("[]"))
	if _, ok := c.Get("search:batman"); ok {
		t.Fatal("Expected noop cache to always miss")
	}
	if c.Contains("search:batman") {
		t.Fatal("Expected noop cache to contain nothing")
	}
	if c.Len() != 0 {
		t.Fatalf("Expected Len 0, got %d", c.Len())
	}
}
