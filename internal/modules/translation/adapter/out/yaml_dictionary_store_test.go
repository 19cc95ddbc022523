package out

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"courtdesk/internal/modules/translation/domain"
)

func TestBuiltinDictionaryCoversEveryLanguage(t *testing.T) {
	t.Parallel()
	dict, err := NewYAMLDictionaryStore("", nil).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, lang := range domain.Supported() {
		if lang == domain.Source {
			continue
		}
		if dict.Size(lang) == 0 {
			t.Fatalf("no phrases for %s", lang)
		}
	}
	if got := dict.Translate("Objection sustained.", domain.Arabic); got != "الاعتراض مقبول." {
		t.Fatalf("unexpected arabic: %q", got)
	}
}

func TestOverrideMergesAndBrokenOverrideFallsBack(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("fr:\n  \"Objection sustained.\": \"Objection accueillie.\"\n  \"Bailiff, approach.\": \"Huissier, approchez.\"\n"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	dict, err := NewYAMLDictionaryStore(good, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("load with override: %v", err)
	}
	if got := dict.Translate("Objection sustained.", domain.French); got != "Objection accueillie." {
		t.Fatalf("override not applied: %q", got)
	}
	if got := dict.Translate("Bailiff, approach.", domain.French); got != "Huissier, approchez." {
		t.Fatalf("new phrase not applied: %q", got)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("de:\n  \"x\": \"y\"\n"), 0o644); err != nil {
		t.Fatalf("write bad override: %v", err)
	}
	for _, path := range []string{bad, filepath.Join(dir, "missing.yaml")} {
		dict, err := NewYAMLDictionaryStore(path, nil).Load(context.Background())
		if err != nil {
			t.Fatalf("broken override must not fail load: %v", err)
		}
		if got := dict.Translate("Objection sustained.", domain.French); got != "Objection retenue." {
			t.Fatalf("expected builtin french, got %q", got)
		}
	}
}
