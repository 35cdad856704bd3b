package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReviewConfig holds the trigger vocabulary and language default. Deployments
// can override it with a redpen.yml file next to the binary.
type ReviewConfig struct {
	TriggerPhrases  []string `yaml:"trigger_phrases"`
	DefaultLanguage string   `yaml:"default_language"`
}

// applyReviewFile overlays settings from a redpen.yml file onto cfg. A missing
// file is not an error; a present but unparsable one is, since silently
// ignoring a typo there would change which comments trigger reviews.
func applyReviewFile(path string, cfg *ReviewConfig) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var overlay ReviewConfig
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(overlay.TriggerPhrases) > 0 {
		cfg.TriggerPhrases = overlay.TriggerPhrases
	}
	if overlay.DefaultLanguage != "" {
		cfg.DefaultLanguage = overlay.DefaultLanguage
	}
	return nil
}
