package mongo

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inventory-management-api/internal/item"
	repo "inventory-management-api/internal/item/repository"
)

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()
	got, err := parseID(oid.Hex())
	if err != nil || got != oid {
		t.Fatalf("expected %v, got %v (%v)", oid, got, err)
	}

	for _, bad := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if _, err := parseID(bad); !errors.Is(err, repo.ErrNotFound) {
			t.Errorf("%q: expected ErrNotFound, got %v", bad, err)
		}
	}
}

func TestItemDocToDomain(t *testing.T) {
	oid := primitive.NewObjectID()
	ts := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	doc := itemDoc{ID: oid, Name: "HDMI Cable", Quantity: 150, Price: 350.5, Category: "Electronics", CreatedAt: ts, UpdatedAt: ts}

	got := doc.toDomain()
	want := item.Item{ID: oid.Hex(), Name: "HDMI Cable", Quantity: 150, Price: 350.5, Category: "Electronics", CreatedAt: ts, UpdatedAt: ts}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if list := toDomainList(nil); list == nil || len(list) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", list)
	}
}

func TestBuildSearchFilter(t *testing.T) {
	filter := buildSearchFilter("  a.b ")
	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("unexpected filter %v", filter)
	}
	for i, field := range []string{fieldName, fieldCategory} {
		rx, ok := or[i].(bson.M)[field].(primitive.Regex)
		if !ok {
			t.Fatalf("expected regex on %s, got %v", field, or[i])
		}
		if rx.Pattern != `a\.b` || rx.Options != "i" {
			t.Errorf("unexpected regex %+v", rx)
		}
	}
}

func TestBuildReplaceUpdate(t *testing.T) {
	now := time.Now().UTC()
	set := buildReplaceUpdate(repo.ReplaceItemOptions{ID: "x", Name: "n", Quantity: 1, Price: 2}, now)["$set"].(bson.M)

	if set[fieldCategory] != item.DefaultCategory {
		t.Errorf("expected default category, got %v", set[fieldCategory])
	}
	if set[fieldUpdatedAt] != now {
		t.Errorf("expected updatedAt to be set")
	}
	for _, immutable := range []string{fieldID, fieldCreatedAt} {
		if _, ok := set[immutable]; ok {
			t.Errorf("%s must never be overwritten", immutable)
		}
	}
}

func TestBuildPatchUpdate(t *testing.T) {
	now := time.Now().UTC()
	tools := "Tools"
	set := buildPatchUpdate(repo.PatchItemOptions{ID: "x", Category: &tools}, now)["$set"].(bson.M)

	if len(set) != 2 || set[fieldCategory] != "Tools" || set[fieldUpdatedAt] != now {
		t.Errorf("expected only category and updatedAt, got %v", set)
	}
}

func TestCheckPatch(t *testing.T) {
	neg := -1.0
	blank := ""
	ok := 5.0

	if err := checkPatch(repo.PatchItemOptions{Quantity: &ok}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := checkPatch(repo.PatchItemOptions{Price: &neg}); !errors.Is(err, item.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if err := checkPatch(repo.PatchItemOptions{Name: &blank}); !errors.Is(err, item.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
