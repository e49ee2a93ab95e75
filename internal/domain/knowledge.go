package domain

import (
	"context"
	"fmt"
	"strings"
)

// KnowledgeEntry is one topic of the knowledge base and its ordered facts.
// The first fact is the most canonical statement of the topic.
type KnowledgeEntry struct {
	Topic string
	Facts []string
}

// KnowledgeBase is the static, ordered set of topics used for retrieval.
// Entry order is the stable ordering used to break similarity ties.
type KnowledgeBase struct {
	Entries []KnowledgeEntry
}

// Validate checks that the knowledge base can be served.
// Any violation is a configuration error: the service must not start with it.
func (kb KnowledgeBase) Validate() error {
	if len(kb.Entries) == 0 {
		return NewConfigurationErr("knowledge base has no topics")
	}

	seen := make(map[string]struct{}, len(kb.Entries))
	for i, entry := range kb.Entries {
		topic := strings.TrimSpace(entry.Topic)
		if topic == "" {
			return NewConfigurationErr(fmt.Sprintf("knowledge base entry %d has an empty topic", i))
		}
		if _, dup := seen[topic]; dup {
			return NewConfigurationErr(fmt.Sprintf("knowledge base topic %q is declared more than once", topic))
		}
		seen[topic] = struct{}{}

		if len(entry.Facts) == 0 {
			return NewConfigurationErr(fmt.Sprintf("knowledge base topic %q has no facts", topic))
		}
		for j, fact := range entry.Facts {
			if strings.TrimSpace(fact) == "" {
				return NewConfigurationErr(fmt.Sprintf("knowledge base topic %q has an empty fact at position %d", topic, j))
			}
		}
	}
	return nil
}

// FactCount returns the number of facts across all topics.
func (kb KnowledgeBase) FactCount() int {
	total := 0
	for _, entry := range kb.Entries {
		total += len(entry.Facts)
	}
	return total
}

// RetrievalResult is the outcome of a knowledge retrieval: the winning topic,
// its full fact list and the similarity score that selected it.
type RetrievalResult struct {
	Topic string
	Facts []string
	Score float64
}

// TopicSummary describes one indexed topic.
type TopicSummary struct {
	Topic     string
	FactCount int
}

// KnowledgeRetriever selects knowledge relevant to a free-text query.
type KnowledgeRetriever interface {
	// Retrieve returns the full fact list of the topic most similar to the query.
	Retrieve(ctx context.Context, query string) (RetrievalResult, error)
	// Topic returns the facts of one topic, or a NotFoundErr.
	Topic(name string) (KnowledgeEntry, error)
	// Topics lists the indexed topics in knowledge base order.
	Topics() []TopicSummary
}
