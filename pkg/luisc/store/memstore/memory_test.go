package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/conversekit/luisc/pkg/luisc/store"
)

func testBuild(id, app string) store.Build {
	return store.Build{
		ID:             id,
		AppName:        app,
		Culture:        "en-us",
		SchemaVersion:  "1.3.0",
		CreatedAt:      time.Now().UTC(),
		IntentCount:    2,
		UtteranceCount: 5,
		ModelJSON:      `{"name":"` + app + `"}`,
	}
}

func TestSaveAndGetBuild(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	b := testBuild("01BUILD", "travelbot")
	if err := s.SaveBuild(ctx, b); err != nil {
		t.Fatalf("SaveBuild failed: %v", err)
	}

	got, ok, err := s.GetBuild(ctx, "01BUILD")
	if err != nil {
		t.Fatalf("GetBuild failed: %v", err)
	}
	if !ok {
		t.Fatal("Build should be found")
	}
	if got.AppName != "travelbot" || got.ModelJSON != b.ModelJSON {
		t.Errorf("Stored build wrong: %+v", got)
	}

	_, ok, err = s.GetBuild(ctx, "missing")
	if err != nil {
		t.Fatalf("GetBuild failed: %v", err)
	}
	if ok {
		t.Error("Missing build should not be found")
	}
}

func TestListBuildsNewestFirst(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	// ULIDs sort lexicographically by creation time.
	for _, id := range []string{"01A", "01C", "01B"} {
		if err := s.SaveBuild(ctx, testBuild(id, "app")); err != nil {
			t.Fatalf("SaveBuild failed: %v", err)
		}
	}

	builds, err := s.ListBuilds(ctx, 2)
	if err != nil {
		t.Fatalf("ListBuilds failed: %v", err)
	}
	if len(builds) != 2 {
		t.Fatalf("Limit not applied, got %d builds", len(builds))
	}
	if builds[0].ID != "01C" || builds[1].ID != "01B" {
		t.Errorf("Expected newest first, got %s, %s", builds[0].ID, builds[1].ID)
	}
}

func TestSaveBuildOverwritesSameID(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	s.SaveBuild(ctx, testBuild("01A", "first"))
	s.SaveBuild(ctx, testBuild("01A", "second"))

	got, ok, _ := s.GetBuild(ctx, "01A")
	if !ok || got.AppName != "second" {
		t.Errorf("Same ID should overwrite, got %+v", got)
	}
}
