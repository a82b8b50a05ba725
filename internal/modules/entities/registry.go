package entities

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

//go:embed entity_types.yaml
var defaultEntityTypesYAML []byte

type registryFile struct {
	Types []registryEntry `yaml:"types"`
}

type registryEntry struct {
	Type                string   `yaml:"type"`
	AdditionalRelations []string `yaml:"additionalRelations"`
	NotFoundMessage     string   `yaml:"notFoundMessage"`
}

// Registry maps each entity type to the model used to load it.
type Registry struct {
	models map[entity.Type]entity.Model
}

// DefaultRegistry is built from entity.ModelFor alone.
func DefaultRegistry() *Registry {
	r := &Registry{models: map[entity.Type]entity.Model{}}
	for _, m := range entity.Models() {
		r.models[m.Type] = m
	}
	return r
}

// LoadRegistry applies the embedded entity_types.yaml, then the file at
// overridePath if one is given. A file that cannot be read or parsed is
// skipped with a warning and the models built so far are kept.
func LoadRegistry(log *logger.Logger, overridePath string) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With("component", "EntityTypeRegistry")
	r := DefaultRegistry()
	if err := r.apply(log, defaultEntityTypesYAML); err != nil {
		log.Warn("embedded entity types invalid, using compiled defaults", "error", err)
	}
	overridePath = strings.TrimSpace(overridePath)
	if overridePath == "" {
		return r
	}
	raw, err := os.ReadFile(overridePath)
	if err != nil {
		log.Warn("entity types override unreadable", "path", overridePath, "error", err)
		return r
	}
	if err := r.apply(log, raw); err != nil {
		log.Warn("entity types override invalid", "path", overridePath, "error", err)
		return r
	}
	log.Info("entity types override applied", "path", overridePath)
	return r
}

func (r *Registry) apply(log *logger.Logger, raw []byte) error {
	var file registryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse entity types: %w", err)
	}
	next := make(map[entity.Type]entity.Model, len(r.models))
	for k, v := range r.models {
		next[k] = v
	}
	for _, e := range file.Types {
		t, err := entity.ParseType(strings.TrimSpace(e.Type))
		if err != nil {
			log.Warn("ignoring entity type entry", "type", e.Type, "error", err)
			continue
		}
		m := next[t]
		if e.AdditionalRelations != nil {
			m.AdditionalRelations = append([]string(nil), e.AdditionalRelations...)
		}
		if msg := strings.TrimSpace(e.NotFoundMessage); msg != "" {
			m.NotFoundMessage = msg
		}
		next[t] = m
	}
	r.models = next
	return nil
}

// Model returns the loading model for t.
func (r *Registry) Model(t entity.Type) (entity.Model, error) {
	if r != nil {
		if m, ok := r.models[t]; ok {
			return m, nil
		}
	}
	return entity.ModelFor(t)
}
