package classifier

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const classIndex = `{"0": ["n01440764", "tench"], "1": ["n01443537", "goldfish"], "2": ["n01484850", "great_white_shark"]}`

func TestLoadLabels_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imagenet_class_index.json")
	if err := os.WriteFile(path, []byte(classIndex), 0644); err != nil {
		t.Fatalf("Failed to write labels: %v", err)
	}

	labels, err := LoadLabels(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("LoadLabels failed: %v", err)
	}

	if len(labels) != 3 {
		t.Fatalf("Expected 3 labels, got %d", len(labels))
	}
	if labels[1].ID != "n01443537" || labels[1].Name != "goldfish" {
		t.Errorf("Unexpected label 1: %+v", labels[1])
	}
}

func TestLoadLabels_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(classIndex))
	}))
	defer server.Close()

	labels, err := LoadLabels(context.Background(), server.URL+"/imagenet_class_index.json", server.Client())
	if err != nil {
		t.Fatalf("LoadLabels failed: %v", err)
	}
	if labels[2].Name != "great_white_shark" {
		t.Errorf("Unexpected label 2: %+v", labels[2])
	}
}

func TestLoadLabels_URLStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := LoadLabels(context.Background(), server.URL, server.Client()); err == nil {
		t.Error("Expected error for 404 label source")
	}
}

func TestLoadLabels_MissingFile(t *testing.T) {
	if _, err := LoadLabels(context.Background(), "/nonexistent/labels.json", nil); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParseLabels_Invalid(t *testing.T) {
	tests := map[string]string{
		"not json":     `[`,
		"empty":        `{}`,
		"sparse":       `{"0": ["a", "b"], "5": ["c", "d"]}`,
		"non numeric":  `{"zero": ["a", "b"]}`,
		"short entry":  `{"0": ["a"]}`,
		"negative key": `{"-1": ["a", "b"]}`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLabels([]byte(input))
			if !errors.Is(err, ErrInvalidLabels) {
				t.Errorf("Expected ErrInvalidLabels, got %v", err)
			}
		})
	}
}
