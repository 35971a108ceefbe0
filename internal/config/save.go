package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/masthead/internal/log"
)

// SaveCatalog updates the catalog section in the config file.
// This preserves comments and formatting in other sections by using yaml.Node.
func SaveCatalog(configPath string, catalog CatalogConfig) error {
	if err := ValidateCatalog(catalog); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	// Read existing file content
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	// Parse into yaml.Node to preserve comments
	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	var catalogNode yaml.Node
	if err := catalogNode.Encode(catalog); err != nil {
		return fmt.Errorf("building catalog node: %w", err)
	}

	if doc.Kind == 0 {
		// Empty or new file - create document structure
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: "catalog"},
						&catalogNode,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind != yaml.MappingNode {
			return fmt.Errorf("parsing config: top level is not a mapping")
		}
		found := false
		for i := 0; i < len(root.Content)-1; i += 2 {
			if root.Content[i].Value == "catalog" {
				mergeMapping(root.Content[i+1], &catalogNode)
				found = true
				break
			}
		}
		if !found {
			root.Content = append(root.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: "catalog"},
				&catalogNode,
			)
		}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	if err := writeAtomic(configPath, buf.Bytes()); err != nil {
		return err
	}
	log.Info(log.CatConfig, "catalog config saved", "path", configPath,
		"frequent_threshold", catalog.FrequentThreshold)
	return nil
}

// mergeMapping replaces values in dst with those in src key by key, keeping
// dst's comments and any keys src does not set.
func mergeMapping(dst, src *yaml.Node) {
	if dst.Kind != yaml.MappingNode {
		log.Warn(log.CatConfig, "catalog section is not a mapping, replacing it", "line", dst.Line)
		*dst = *src
		return
	}
	for i := 0; i < len(src.Content)-1; i += 2 {
		key, value := src.Content[i], src.Content[i+1]
		replaced := false
		for j := 0; j < len(dst.Content)-1; j += 2 {
			if dst.Content[j].Value == key.Value {
				value.LineComment = dst.Content[j+1].LineComment
				dst.Content[j+1] = value
				replaced = true
				break
			}
		}
		if !replaced {
			dst.Content = append(dst.Content, key, value)
		}
	}
}

// writeAtomic writes to a temp file in the same directory, then renames.
func writeAtomic(configPath string, data []byte) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".masthead.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
