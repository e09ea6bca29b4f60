package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/shashmeister/sleeper-dashboard/containers"
)

// A test global store instance to use for all of the tests instead of
// setting up a new container each time.
var testStore Store

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	container := containers.NewDBContainer()

	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if container != nil {
				container.Shutdown()
			}
			fmt.Println("panic")
		}
	}()

	var err error
	testStore, err = New(context.Background(), container.ConnectionString(), clock.New())
	if err != nil {
		fmt.Printf("error connecting to db: %v", err)
		os.Exit(-1)
	}

	code := m.Run()
	container.Shutdown()
	os.Exit(code)
}

func TestStore_putAndGet(t *testing.T) {
	ctx := context.Background()

	written := json.RawMessage(`{"players": ["6904", "4034"], "count": 2}`)
	if err := testStore.Put(ctx, "test:putAndGet", written); err != nil {
		t.Fatalf("error writing cache entry: %v", err)
	}

	value, updated, found, err := testStore.Get(ctx, "test:putAndGet")
	if err != nil {
		t.Fatalf("error reading cache entry: %v", err)
	}
	if !found {
		t.Fatalf("entry should have been found")
	}
	if updated.IsZero() {
		t.Errorf("updated timestamp should be set")
	}
	if time.Since(updated) > time.Minute {
		t.Errorf("updated timestamp is too old: %v", updated)
	}

	// jsonb round-trips values as equivalent JSON, not identical bytes,
	// so compare the decoded forms.
	var wantDecoded, gotDecoded map[string]any
	if err := json.Unmarshal(written, &wantDecoded); err != nil {
		t.Fatalf("error decoding written value: %v", err)
	}
	if err := json.Unmarshal(value, &gotDecoded); err != nil {
		t.Fatalf("error decoding read value: %v", err)
	}
	if !reflect.DeepEqual(wantDecoded, gotDecoded) {
		t.Errorf("value read back does not match: %s vs %s", written, value)
	}
}

func TestStore_getMissing(t *testing.T) {
	ctx := context.Background()

	_, _, found, err := testStore.Get(ctx, "test:never-written")
	if err != nil {
		t.Fatalf("a missing key is not an error, got: %v", err)
	}
	if found {
		t.Errorf("entry should not have been found")
	}
}

func TestStore_overwrite(t *testing.T) {
	ctx := context.Background()

	if err := testStore.Put(ctx, "test:overwrite", json.RawMessage(`{"v": 1}`)); err != nil {
		t.Fatalf("error on first write: %v", err)
	}
	if err := testStore.Put(ctx, "test:overwrite", json.RawMessage(`{"v": 2}`)); err != nil {
		t.Fatalf("error on second write: %v", err)
	}

	value, _, found, err := testStore.Get(ctx, "test:overwrite")
	if err != nil || !found {
		t.Fatalf("error reading back entry: found=%v err=%v", found, err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(value, &decoded); err != nil {
		t.Fatalf("error decoding value: %v", err)
	}
	if decoded["v"] != 2 {
		t.Errorf("expected last write to win, got v=%d", decoded["v"])
	}
}
