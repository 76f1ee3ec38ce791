package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile decodes a TOML file into config.
func LoadTOMLFile(configPath string, config any) error {
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return err
	}
	return nil
}

// ParseTOMLWithRecovery parses a TOML file into a loose map so that
// valid sections survive a partially broken file. The file is cut at
// each top-level table header and every chunk is decoded on its own,
// trimming trailing lines until the chunk parses.
func ParseTOMLWithRecovery(configPath string) (map[string]any, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]any)
	if _, err := toml.Decode(string(data), &merged); err == nil {
		return merged, nil
	}

	recovered := 0
	for _, chunk := range splitTables(string(data)) {
		part, ok := decodeLenient(chunk)
		if !ok {
			continue
		}
		for key, val := range part {
			merged[key] = val
		}
		recovered++
	}
	if recovered == 0 {
		log.Warnf("Could not parse any valid configuration from %s", configPath)
		return nil, fmt.Errorf("no recoverable sections in %s", configPath)
	}
	return merged, nil
}

// splitTables cuts raw TOML into one chunk per top-level table so a
// malformed table cannot take the valid ones down with it.
func splitTables(raw string) []string {
	var chunks []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "[") {
			flush()
		}
		current = append(current, line)
	}
	flush()
	return chunks
}

// decodeLenient decodes the longest prefix of chunk that is valid TOML
// and yields at least one key.
func decodeLenient(chunk string) (map[string]any, bool) {
	lines := strings.Split(chunk, "\n")
	for end := len(lines); end > 0; end-- {
		part := make(map[string]any)
		if _, err := toml.Decode(strings.Join(lines[:end], "\n"), &part); err != nil {
			continue
		}
		if len(part) == 0 {
			return nil, false
		}
		return part, true
	}
	return nil, false
}

// ExtractSection pulls a named table out of parsed TOML data.
func ExtractSection(data map[string]any, sectionName string) (map[string]any, bool) {
	section, ok := data[sectionName].(map[string]any)
	return section, ok
}

// ExtractInt64 safely extracts an int value from a parsed TOML map.
func ExtractInt64(data map[string]any, key string) (int, bool) {
	if val, ok := data[key].(int64); ok {
		return int(val), true
	}
	return 0, false
}

// ExtractFloat safely extracts a float value from a parsed TOML map.
func ExtractFloat(data map[string]any, key string) (float64, bool) {
	switch val := data[key].(type) {
	case float64:
		return val, true
	case int64:
		return float64(val), true
	}
	return 0, false
}

// ExtractBool safely extracts a bool value from a parsed TOML map.
func ExtractBool(data map[string]any, key string) (bool, bool) {
	if val, ok := data[key].(bool); ok {
		return val, true
	}
	return false, false
}
