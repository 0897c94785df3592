package storage

import "testing"

func TestPreferencesRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.GetPreference("getaway.best_score"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := store.SetPreference("getaway.best_score", "120"); err != nil {
		t.Fatalf("SetPreference() failed: %v", err)
	}
	if err := store.SetPreference("getaway.best_score", "180"); err != nil {
		t.Fatalf("SetPreference() overwrite failed: %v", err)
	}

	v, ok, err := store.GetPreference("getaway.best_score")
	if err != nil || !ok || v != "180" {
		t.Errorf("GetPreference() = %q, %v, %v; want 180, true, nil", v, ok, err)
	}
}

func TestPreferencesDeleteAndList(t *testing.T) {
	store := openTestStore(t)

	store.SetPreference("themeColor", "cyber")
	store.SetPreference("cyber_progressStyle", "style-neon")

	all, err := store.AllPreferences()
	if err != nil {
		t.Fatalf("AllPreferences() failed: %v", err)
	}
	if len(all) != 2 || all["themeColor"] != "cyber" {
		t.Errorf("AllPreferences() = %v", all)
	}

	if err := store.DeletePreference("themeColor"); err != nil {
		t.Fatalf("DeletePreference() failed: %v", err)
	}
	if err := store.DeletePreference("themeColor"); err != nil {
		t.Errorf("deleting a missing key should succeed, got %v", err)
	}
	if _, ok, _ := store.GetPreference("themeColor"); ok {
		t.Error("deleted key still present")
	}
}

func TestPreferencesAdapter(t *testing.T) {
	store := openTestStore(t)
	prefs := store.Preferences()

	if err := prefs.Set("themeColor", "forest"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	v, ok, err := prefs.Get("themeColor")
	if err != nil || !ok || v != "forest" {
		t.Errorf("Get() = %q, %v, %v", v, ok, err)
	}
}
