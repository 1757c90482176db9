package settings

import (
	"context"
	"testing"

	"github.com/partdeck/partdeck/internal/db"
	"github.com/partdeck/partdeck/internal/field"
	"github.com/partdeck/partdeck/internal/kv"
)

func TestDefaultsOnFreshInstall(t *testing.T) {
	database := db.NewTestDB(t)
	store, err := kv.Open(context.Background(), database)
	if err != nil {
		t.Fatal(err)
	}

	vis := New(store).Visibility()
	if !vis.Supplier || !vis.QualityStatus {
		t.Error("expected core fields visible by default")
	}
	if vis.PurchaseOrder || vis.NonConformance {
		t.Error("expected additional fields hidden by default")
	}
}

func TestTogglePersistsImmediately(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	store, err := kv.Open(ctx, database)
	if err != nil {
		t.Fatal(err)
	}

	s := New(store)
	if !s.Toggle(ctx, field.Supplier, false) {
		t.Fatal("expected supplier to be toggleable")
	}
	if s.Toggle(ctx, field.ID("bogus"), true) {
		t.Error("expected unknown field to be rejected")
	}

	// Reload over the same database: the change survived.
	store2, err := kv.Open(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	vis := New(store2).Visibility()
	if vis.Supplier {
		t.Error("expected supplier hidden after reload")
	}
	if !vis.Notes {
		t.Error("expected untouched switches to keep defaults")
	}
}

func TestMissingSwitchKeepsDefault(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// Old blob knowing nothing about the additional fields.
	if _, err := database.Exec(
		`INSERT INTO storage (key, value) VALUES ('field-visibility', '{"supplier":false}')`,
	); err != nil {
		t.Fatal(err)
	}

	store, err := kv.Open(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	vis := New(store).Visibility()
	if vis.Supplier {
		t.Error("expected stored false to win")
	}
	if !vis.Comments {
		t.Error("expected switch absent from blob to fall back to default")
	}
}
