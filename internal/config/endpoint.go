package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEndpointUnset is returned when the endpoint file is empty or still
// holds only the placeholder template.
var ErrEndpointUnset = errors.New("timetable endpoint is not configured")

// ExampleEndpoint is shown to users as a sample endpoint value.
const ExampleEndpoint = "http://localhost:8080/timetable/fri/61310"

// endpointTemplate is written when the endpoint file does not exist yet.
const endpointTemplate = "# Replace the line below with your timetable endpoint URL, e.g.\n" +
	"# " + ExampleEndpoint + "\n" +
	endpointPlaceholder + "\n"

const endpointPlaceholder = "<timetable-url>"

// IsPlaceholder reports whether a line carries no endpoint value.
func IsPlaceholder(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return true
	}
	if line == endpointPlaceholder {
		return true
	}
	return strings.Trim(line, "<>_-. ") == ""
}

// LoadEndpoint reads the endpoint URL from path. A missing file is created
// with the placeholder template and reported as ErrEndpointUnset.
func LoadEndpoint(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("reading endpoint file: %w", err)
		}
		if err := writeEndpointFile(path, []byte(endpointTemplate)); err != nil {
			return "", err
		}
		return "", ErrEndpointUnset
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if IsPlaceholder(line) {
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading endpoint file: %w", err)
	}
	return "", ErrEndpointUnset
}

// SaveEndpoint writes url as the only line of the endpoint file.
func SaveEndpoint(path, url string) error {
	url = strings.TrimSpace(url)
	if IsPlaceholder(url) {
		return ErrEndpointUnset
	}
	return writeEndpointFile(path, []byte(url+"\n"))
}

func writeEndpointFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing endpoint file: %w", err)
	}
	return nil
}

// EndpointFile resolves the endpoint stored at a fixed path.
type EndpointFile string

// Path returns the file location.
func (f EndpointFile) Path() string {
	return string(f)
}

// Endpoint loads the endpoint URL.
func (f EndpointFile) Endpoint() (string, error) {
	return LoadEndpoint(string(f))
}
