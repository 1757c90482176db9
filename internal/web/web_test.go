package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/partdeck/partdeck/internal/db"
	"github.com/partdeck/partdeck/internal/field"
	"github.com/partdeck/partdeck/internal/kv"
	"github.com/partdeck/partdeck/internal/model"
	"github.com/partdeck/partdeck/internal/parts"
	"github.com/partdeck/partdeck/internal/settings"
)

type testEnv struct {
	server   *httptest.Server
	manager  *parts.Manager
	settings *settings.Settings
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := db.NewTestDB(t)
	store, err := kv.Open(context.Background(), database)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	manager := parts.NewManager(store)
	cfg := settings.New(store)
	router, err := NewRouter(manager, cfg)
	if err != nil {
		t.Fatalf("setting up router: %v", err)
	}

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &testEnv{server: server, manager: manager, settings: cfg}
}

// postForm submits form values without following the redirect, so the
// test can inspect the handler's own response.
func postForm(t *testing.T, url string, form url.Values) *http.Response {
	t.Helper()
	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.PostForm(url, form)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func getBody(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	return string(body)
}

func TestPartsPageShowsRecords(t *testing.T) {
	env := setupTestEnv(t)
	env.manager.Add(context.Background(), model.Draft{PartNumber: "PN-100", Supplier: "Acme"})

	body := getBody(t, env.server.URL+"/parts")
	if !strings.Contains(body, "PN-100") {
		t.Error("part number missing from table")
	}
	if !strings.Contains(body, "Acme") {
		t.Error("supplier missing from table")
	}
}

func TestPartCreateSubmit(t *testing.T) {
	env := setupTestEnv(t)

	resp := postForm(t, env.server.URL+"/parts", url.Values{
		"partNumber": {"PN-200"},
		"supplier":   {"Initech"},
		"count":      {"4"},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}

	list := env.manager.List()
	if len(list) != 1 {
		t.Fatalf("got %d parts, want 1", len(list))
	}
	if list[0].PartNumber != "PN-200" || list[0].Supplier != "Initech" || list[0].Count != 4 {
		t.Errorf("unexpected record: %+v", list[0])
	}
}

func TestPartCreateRequiresPartNumber(t *testing.T) {
	env := setupTestEnv(t)

	resp := postForm(t, env.server.URL+"/parts", url.Values{
		"partNumber": {"   "},
		"supplier":   {"Acme"},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Part Number is required") {
		t.Error("error banner missing")
	}
	if len(env.manager.List()) != 0 {
		t.Error("blank part number was saved")
	}
}

func TestInlineUpdatePreservesHiddenFields(t *testing.T) {
	env := setupTestEnv(t)
	id := env.manager.Add(context.Background(), model.Draft{
		PartNumber: "PN-300",
		Supplier:   "Acme",
		StorageLocation: "Rack 7", // not a table column, must survive the save
	}).ID

	resp := postForm(t, env.server.URL+"/parts/"+id, url.Values{
		"partNumber":    {"PN-300"},
		"supplier":      {"Globex"},
		"deliveryDate":  {"2026-03-01"},
		"count":         {"9"},
		"batchDateCode": {"B42"},
		"sapPlaced":     {"true"},
		"sapReleased":   {"false"},
		"qualityStatus": {"pass"},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}

	p, _ := env.manager.Get(id)
	if p.Supplier != "Globex" || p.Count != 9 || !p.SAPPlaced || p.QualityStatus != "pass" {
		t.Errorf("edit not applied: %+v", p)
	}
	if p.StorageLocation != "Rack 7" {
		t.Errorf("hidden field overwritten: storageLocation = %q", p.StorageLocation)
	}
}

func TestToggleSubmit(t *testing.T) {
	env := setupTestEnv(t)
	id := env.manager.Add(context.Background(), model.Draft{PartNumber: "PN-400"}).ID

	resp := postForm(t, env.server.URL+"/parts/"+id+"/toggle", url.Values{
		"flag": {string(field.SAPReleased)},
	})
	resp.Body.Close()

	p, _ := env.manager.Get(id)
	if !p.SAPReleased {
		t.Error("sapReleased not toggled on")
	}
	if p.SAPPlaced {
		t.Error("sapPlaced flipped too")
	}
}

func TestDeleteSubmit(t *testing.T) {
	env := setupTestEnv(t)
	id := env.manager.Add(context.Background(), model.Draft{PartNumber: "PN-500"}).ID

	resp := postForm(t, env.server.URL+"/parts/"+id+"/delete", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if _, ok := env.manager.Get(id); ok {
		t.Error("part still present after delete")
	}
}

func TestBulkSubmitSkipsBlankRows(t *testing.T) {
	env := setupTestEnv(t)

	// Three rows opened, only the middle one filled in.
	resp := postForm(t, env.server.URL+"/bulk", url.Values{
		"rowCount":        {"3"},
		"row0.partNumber": {""},
		"row1.partNumber": {"X-1"},
		"row1.supplier":   {"Acme"},
		"row1.count":      {"2"},
		"row2.partNumber": {"   "},
		"row2.supplier":   {"ghost"},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}

	list := env.manager.List()
	if len(list) != 1 {
		t.Fatalf("got %d parts, want 1", len(list))
	}
	if list[0].PartNumber != "X-1" || list[0].Count != 2 {
		t.Errorf("unexpected record: %+v", list[0])
	}
}

func TestBulkSubmitAllBlank(t *testing.T) {
	env := setupTestEnv(t)

	resp := postForm(t, env.server.URL+"/bulk", url.Values{
		"rowCount":        {"2"},
		"row0.partNumber": {""},
		"row1.partNumber": {""},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "at least one part") {
		t.Error("error banner missing")
	}
	if len(env.manager.List()) != 0 {
		t.Error("blank rows were saved")
	}
}

func TestBulkEditExistingUpdatesInPlace(t *testing.T) {
	env := setupTestEnv(t)
	id := env.manager.Add(context.Background(), model.Draft{
		PartNumber: "PN-600",
		Supplier:   "Acme",
		StorageLocation: "Rack 7",
	}).ID

	resp := postForm(t, env.server.URL+"/bulk", url.Values{
		"rowCount":        {"1"},
		"row0.id":         {id},
		"row0.partNumber": {"PN-600"},
		"row0.supplier":   {"Globex"},
		"row0.count":      {"7"},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}

	list := env.manager.List()
	if len(list) != 1 {
		t.Fatalf("got %d parts, want 1 (update must not duplicate)", len(list))
	}
	p := list[0]
	if p.ID != id {
		t.Errorf("record id changed: %s", p.ID)
	}
	if p.Supplier != "Globex" || p.Count != 7 {
		t.Errorf("update not applied: %+v", p)
	}
	if p.StorageLocation != "Rack 7" {
		t.Errorf("field outside the grid overwritten: storageLocation = %q", p.StorageLocation)
	}
}

func TestBulkEditDeletedSourceAddsNew(t *testing.T) {
	env := setupTestEnv(t)
	id := env.manager.Add(context.Background(), model.Draft{PartNumber: "PN-700"}).ID
	env.manager.Delete(context.Background(), id)

	resp := postForm(t, env.server.URL+"/bulk", url.Values{
		"rowCount":        {"1"},
		"row0.id":         {id},
		"row0.partNumber": {"PN-700"},
	})
	resp.Body.Close()

	list := env.manager.List()
	if len(list) != 1 {
		t.Fatalf("got %d parts, want 1", len(list))
	}
	if list[0].ID == id {
		t.Error("deleted id was resurrected instead of a fresh record")
	}
}

func TestSettingsToggleHidesColumn(t *testing.T) {
	env := setupTestEnv(t)
	env.manager.Add(context.Background(), model.Draft{PartNumber: "PN-800", Supplier: "Acme"})

	resp := postForm(t, env.server.URL+"/settings/supplier", url.Values{
		"visible": {"false"},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if env.settings.Visibility().Supplier {
		t.Fatal("supplier still visible after toggle")
	}

	body := getBody(t, env.server.URL+"/parts")
	if strings.Contains(body, ">Supplier<") {
		t.Error("supplier column still rendered")
	}
	if !strings.Contains(body, "PN-800") {
		t.Error("part row missing")
	}
}

func TestSettingsToggleUnknownField(t *testing.T) {
	env := setupTestEnv(t)

	resp := postForm(t, env.server.URL+"/settings/noSuchField", url.Values{
		"visible": {"true"},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestBulkPageLoadExisting(t *testing.T) {
	env := setupTestEnv(t)
	env.manager.Add(context.Background(), model.Draft{PartNumber: "PN-900", Supplier: "Acme"})

	body := getBody(t, env.server.URL+"/bulk?load=existing")
	if !strings.Contains(body, `value="PN-900"`) {
		t.Error("existing part not prefilled")
	}
	if !strings.Contains(body, `name="row0.id"`) {
		t.Error("source id input missing")
	}
}
