package cache

import (
	"testing"
	"time"

	"github.com/verdipratama/indra/internal/model"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	stmts := []model.Statement{
		{Type: model.TypeActivation, Evidence: []model.Evidence{{SourceAPI: "reach"}}},
	}

	c.Set("k1", stmts, time.Minute)

	got, found := c.Get("k1")
	if !found {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].Type != model.TypeActivation {
		t.Errorf("unexpected cached corpus: %v", got)
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("nope"); found {
		t.Error("expected cache miss for unknown key")
	}
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	c.Set("k1", nil, time.Minute)
	c.Set("k2", nil, time.Minute)

	c.Delete("k1")
	if _, found := c.Get("k1"); found {
		t.Error("expected k1 to be deleted")
	}

	c.Clear()
	if _, found := c.Get("k2"); found {
		t.Error("expected cache to be cleared")
	}
}

func TestKey_DependsOnPathAndModTime(t *testing.T) {
	now := time.Now()

	k1 := Key("/data/a.json", now)
	k2 := Key("/data/b.json", now)
	k3 := Key("/data/a.json", now.Add(time.Second))

	if k1 == k2 {
		t.Error("expected different paths to produce different keys")
	}
	if k1 == k3 {
		t.Error("expected different mod times to produce different keys")
	}
	if k1 != Key("/data/a.json", now) {
		t.Error("expected key derivation to be deterministic")
	}
}
