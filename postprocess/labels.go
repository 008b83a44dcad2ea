package postprocess

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadLabels reads the class labels the detector Model was trained on from
// the given text file.  It should contain one label per line, the line
// number being the class index
func LoadLabels(file string) ([]string, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening labels file: %w", err)
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)

	var labels []string

	for scanner.Scan() {
		labels = append(labels, strings.TrimSpace(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading labels file: %w", err)
	}

	// trailing blank lines would otherwise become classes
	for len(labels) > 0 && labels[len(labels)-1] == "" {
		labels = labels[:len(labels)-1]
	}

	return labels, nil
}

// labelIndex maps each label to its class index, the first occurrence wins
func labelIndex(labels []string) map[string]int {
	idx := make(map[string]int, len(labels))

	for i, l := range labels {
		if _, exists := idx[l]; !exists && l != "" {
			idx[l] = i
		}
	}

	return idx
}
