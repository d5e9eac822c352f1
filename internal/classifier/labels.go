package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
)

// Label is one entry of the ImageNet class index: the WordNet id and its
// human readable name.
type Label struct {
	ID   string
	Name string
}

// Labels is indexed by class position in the model's output vector.
type Labels []Label

// LoadLabels reads a Keras style class index ({"0": ["n01440764", "tench"], ...})
// from a local path or an http(s) URL.
func LoadLabels(ctx context.Context, source string, client *http.Client) (Labels, error) {
	var (
		data []byte
		err  error
	)

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = fetch(ctx, source, client)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load labels from %s: %w", source, err)
	}

	return ParseLabels(data)
}

func fetch(ctx context.Context, url string, client *http.Client) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("label source returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// ParseLabels decodes a class index and checks that it is dense (0..N-1).
func ParseLabels(data []byte) (Labels, error) {
	var index map[string][]string
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLabels, err)
	}
	if len(index) == 0 {
		return nil, fmt.Errorf("%w: empty class index", ErrInvalidLabels)
	}

	labels := make(Labels, len(index))
	seen := make([]bool, len(index))

	for key, entry := range index {
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(index) {
			return nil, fmt.Errorf("%w: unexpected class key %q", ErrInvalidLabels, key)
		}
		if len(entry) != 2 {
			return nil, fmt.Errorf("%w: class %d must have [id, name]", ErrInvalidLabels, i)
		}
		if seen[i] {
			return nil, fmt.Errorf("%w: duplicate class %d", ErrInvalidLabels, i)
		}
		seen[i] = true
		labels[i] = Label{ID: entry[0], Name: entry[1]}
	}

	return labels, nil
}
