package localstore

import (
	"path/filepath"
	"testing"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "store.bolt"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestListRoundTripAndMissingKey(t *testing.T) {
	t.Parallel()
	s := openTemp(t)
	items, found, err := LoadList[item](s, KeyDocuments)
	if err != nil || found || items != nil {
		t.Fatalf("expected missing key, got %v %v %v", items, found, err)
	}
	if err := SaveList(s, KeyDocuments, []item{{ID: "a", Name: "first"}, {ID: "b", Name: "second"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	items, found, err = LoadList[item](s, KeyDocuments)
	if err != nil || !found {
		t.Fatalf("load: %v found=%v", err, found)
	}
	if len(items) != 2 || items[1].Name != "second" {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestNilSliceStoredAsEmptyArray(t *testing.T) {
	t.Parallel()
	s := openTemp(t)
	if err := SaveList[item](s, KeyCases, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, found, err := s.Get(KeyCases)
	if err != nil || !found || string(raw) != "[]" {
		t.Fatalf("expected [], got %q found=%v err=%v", raw, found, err)
	}
}

func TestCorruptValueFailsDecode(t *testing.T) {
	t.Parallel()
	s := openTemp(t)
	if err := s.Set(KeyTranscriptions, []byte("{not json")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, found, err := LoadList[item](s, KeyTranscriptions); err == nil || !found {
		t.Fatalf("expected decode error with found=true, got found=%v err=%v", found, err)
	}
}

func TestKeysAndRemove(t *testing.T) {
	t.Parallel()
	s := openTemp(t)
	_ = s.Set(KeyTranscriptions, []byte("[]"))
	_ = s.Set(KeyCases, []byte("[]"))
	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != KeyCases {
		t.Fatalf("unexpected keys %v", keys)
	}
	if err := s.Remove(KeyCases); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, found, _ := s.Get(KeyCases); found {
		t.Fatalf("key should be gone")
	}
}
