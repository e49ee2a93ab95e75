package knowledge

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"go.yaml.in/yaml/v3"
)

//go:embed knowledge_base.yml
var defaultKnowledgeBase []byte

// entryDocument is the YAML shape of one knowledge base topic.
type entryDocument struct {
	Topic string   `yaml:"topic"`
	Facts []string `yaml:"facts"`
}

// LoadKnowledgeBase decodes and validates a knowledge base YAML document.
// The document is a sequence of topics, and its order is kept as the topic ordering.
func LoadKnowledgeBase(r io.Reader) (domain.KnowledgeBase, error) {
	var docs []entryDocument
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil && err != io.EOF {
		return domain.KnowledgeBase{}, domain.NewConfigurationErr(fmt.Sprintf("failed to decode knowledge base: %v", err))
	}

	kb := domain.KnowledgeBase{Entries: make([]domain.KnowledgeEntry, 0, len(docs))}
	for _, doc := range docs {
		kb.Entries = append(kb.Entries, domain.KnowledgeEntry{
			Topic: doc.Topic,
			Facts: doc.Facts,
		})
	}

	if err := kb.Validate(); err != nil {
		return domain.KnowledgeBase{}, err
	}
	return kb, nil
}

// DefaultKnowledgeBase returns the knowledge base shipped with the service.
func DefaultKnowledgeBase() (domain.KnowledgeBase, error) {
	return LoadKnowledgeBase(bytes.NewReader(defaultKnowledgeBase))
}

// LoadKnowledgeBaseFile loads a knowledge base from a YAML file.
// The path "-" (or an empty path) selects the embedded knowledge base.
func LoadKnowledgeBaseFile(path string) (domain.KnowledgeBase, error) {
	if path == "" || path == "-" {
		return DefaultKnowledgeBase()
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.KnowledgeBase{}, domain.NewConfigurationErr(fmt.Sprintf("failed to open knowledge base %q: %v", path, err))
	}
	defer f.Close() //nolint:errcheck

	return LoadKnowledgeBase(f)
}
