package core

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"mb/internal/core/domain"
	"mb/internal/ports"

	"gopkg.in/yaml.v3"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	sigsyaml "sigs.k8s.io/yaml"
)

// clusterScopedKinds never receive an injected namespace.
var clusterScopedKinds = map[string]bool{
	"Namespace":                      true,
	"ClusterRole":                    true,
	"ClusterRoleBinding":             true,
	"CustomResourceDefinition":       true,
	"StorageClass":                   true,
	"PersistentVolume":               true,
	"PriorityClass":                  true,
	"IngressClass":                   true,
	"ValidatingWebhookConfiguration": true,
	"MutatingWebhookConfiguration":   true,
	"APIService":                     true,
}

// SimpleGenerator produces manifests for simple apps: pre-written YAML
// files are rendered through the templater, namespaced resources without
// a namespace get the app's, and configured files become ConfigMaps.
type SimpleGenerator struct {
	fileSystem ports.FileSystem
	templater  ports.Templater
}

func ProvideSimpleGenerator(fileSystem ports.FileSystem, templater ports.Templater) *SimpleGenerator {
	return &SimpleGenerator{
		fileSystem: fileSystem,
		templater:  templater,
	}
}

// Render returns the combined multi-document YAML for one simple app.
func (s *SimpleGenerator) Render(app domain.App) ([]byte, error) {
	files, err := s.fileSystem.Glob(filepath.Join(app.CopyFrom, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	context := map[string]interface{}{
		"name":      app.Name,
		"namespace": app.Namespace,
	}

	var documents []string
	for _, file := range files {
		data, err := s.fileSystem.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %v", file, err)
		}

		rendered, err := s.templater.Render(string(data), filepath.Base(file), context)
		if err != nil {
			return nil, fmt.Errorf("failed to render manifest %s: %v", file, err)
		}

		docs, err := injectNamespace(rendered, app.Namespace)
		if err != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %v", file, err)
		}
		documents = append(documents, docs...)
	}

	configMaps, err := s.buildConfigMaps(app)
	if err != nil {
		return nil, err
	}
	documents = append(documents, configMaps...)

	if len(documents) == 0 {
		return nil, fmt.Errorf("no manifest documents found for app %q in %s", app.Name, app.CopyFrom)
	}

	return []byte(strings.Join(documents, "---\n")), nil
}

// injectNamespace splits rendered YAML into documents and sets
// metadata.namespace on namespaced resources that lack one.
func injectNamespace(rendered, namespace string) ([]string, error) {
	decoder := yaml.NewDecoder(strings.NewReader(rendered))

	var documents []string
	for {
		var doc map[string]interface{}
		err := decoder.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(doc) == 0 {
			continue
		}

		kind, _ := doc["kind"].(string)
		if kind != "" && !clusterScopedKinds[kind] {
			metadata, _ := doc["metadata"].(map[string]interface{})
			if metadata == nil {
				metadata = make(map[string]interface{})
				doc["metadata"] = metadata
			}
			if _, ok := metadata["namespace"]; !ok {
				metadata["namespace"] = namespace
			}
		}

		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, err
		}
		documents = append(documents, string(data))
	}

	return documents, nil
}

// buildConfigMaps groups the app's config files by the first component
// of their container path and emits one ConfigMap per group, named
// <app>-<topLevelDir>.
func (s *SimpleGenerator) buildConfigMaps(app domain.App) ([]string, error) {
	if len(app.Config) == 0 {
		return nil, nil
	}

	groups := make(map[string]map[string]string)
	for containerPath, localPath := range app.Config {
		parts := strings.Split(strings.TrimPrefix(containerPath, "/"), "/")
		if parts[0] == "" {
			return nil, fmt.Errorf("config file path must be absolute for app %q: %s", app.Name, containerPath)
		}

		topLevel := parts[0]
		dataKey := "."
		if len(parts) > 1 {
			dataKey = strings.Join(parts[1:], "/")
		}

		content, err := s.fileSystem.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %v", localPath, err)
		}

		if groups[topLevel] == nil {
			groups[topLevel] = make(map[string]string)
		}
		groups[topLevel][dataKey] = string(content)
	}

	topLevels := make([]string, 0, len(groups))
	for topLevel := range groups {
		topLevels = append(topLevels, topLevel)
	}
	sort.Strings(topLevels)

	var documents []string
	for _, topLevel := range topLevels {
		configMap := corev1.ConfigMap{
			TypeMeta: metav1.TypeMeta{
				APIVersion: "v1",
				Kind:       "ConfigMap",
			},
			ObjectMeta: metav1.ObjectMeta{
				Name:      fmt.Sprintf("%s-%s", app.Name, topLevel),
				Namespace: app.Namespace,
			},
			Data: groups[topLevel],
		}

		data, err := sigsyaml.Marshal(&configMap)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal ConfigMap for app %q: %v", app.Name, err)
		}
		documents = append(documents, string(data))
	}

	return documents, nil
}
