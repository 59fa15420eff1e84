package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"icolleague/internal/assistant"
)

// KnowledgeConfig represents the structure of the knowledge YAML file.
// Entries keep file order, which is the assistant's match priority.
type KnowledgeConfig struct {
	Fallback string                     `yaml:"fallback"`
	Policy   string                     `yaml:"policy,omitempty"` // overrides ASSISTANT_MATCH_POLICY
	Entries  []assistant.KnowledgeEntry `yaml:"entries"`
}

// LoadKnowledgeConfig reads the knowledge file at path.
// Returns nil without error if the file doesn't exist.
func LoadKnowledgeConfig(path string) (*KnowledgeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Knowledge file is optional
			return nil, nil
		}
		return nil, err
	}

	var kc KnowledgeConfig
	if err := yaml.Unmarshal(data, &kc); err != nil {
		return nil, err
	}

	return &kc, nil
}

// KnowledgeBase builds the assistant's table from the configured file,
// falling back to the built-in entries when no file is present.
func (c *Config) KnowledgeBase() (*assistant.KnowledgeBase, error) {
	kc, err := LoadKnowledgeConfig(c.KnowledgeFile)
	if err != nil {
		return nil, err
	}

	policy := assistant.MatchPolicy(c.AssistantMatchPolicy)
	if kc == nil {
		return assistant.NewKnowledgeBase(assistant.DefaultEntries(), assistant.DefaultFallback, policy)
	}
	if kc.Policy != "" {
		policy = assistant.MatchPolicy(kc.Policy)
	}
	return assistant.NewKnowledgeBase(kc.Entries, kc.Fallback, policy)
}
