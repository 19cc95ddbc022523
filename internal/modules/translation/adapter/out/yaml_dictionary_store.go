package out

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"courtdesk/internal/modules/translation/domain"
	translationout "courtdesk/internal/modules/translation/port/out"
	"courtdesk/internal/platform/logger"
)

//go:embed dictionary.yaml
var builtin []byte

// YAMLDictionaryStore serves the embedded phrase table, optionally
// overlaid by a user file. A broken override is logged and skipped.
type YAMLDictionaryStore struct {
	overridePath string
	log          *logger.Logger
}

func NewYAMLDictionaryStore(overridePath string, log *logger.Logger) translationout.DictionaryStore {
	if log == nil {
		log = logger.Nop()
	}
	return &YAMLDictionaryStore{overridePath: overridePath, log: log}
}

func (s *YAMLDictionaryStore) Load(_ context.Context) (domain.Dictionary, error) {
	dict, err := decode(builtin)
	if err != nil {
		return domain.Dictionary{}, fmt.Errorf("decode builtin dictionary: %w", err)
	}
	if s.overridePath == "" {
		return dict, nil
	}
	raw, err := os.ReadFile(s.overridePath)
	if err != nil {
		s.log.Warn("dictionary override unreadable, using builtin", "path", s.overridePath, "error", err)
		return dict, nil
	}
	override, err := decode(raw)
	if err != nil {
		s.log.Warn("dictionary override invalid, using builtin", "path", s.overridePath, "error", err)
		return dict, nil
	}
	dict.Merge(override)
	return dict, nil
}

func decode(raw []byte) (domain.Dictionary, error) {
	tables := map[string]map[string]string{}
	if err := yaml.Unmarshal(raw, &tables); err != nil {
		return domain.Dictionary{}, err
	}
	dict := domain.NewDictionary()
	for code, table := range tables {
		lang, err := domain.ParseLanguage(code)
		if err != nil {
			return domain.Dictionary{}, err
		}
		for source, target := range table {
			dict.Add(lang, source, target)
		}
	}
	return dict, nil
}
