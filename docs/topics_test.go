package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded and every .md file is listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopic_NotFound(t *testing.T) {
	_, err := GetTopic("nope")
	if err == nil {
		t.Fatalf("GetTopic(%q) expected error, got nil", "nope")
	}
	if !strings.Contains(err.Error(), "quotes") {
		t.Errorf("GetTopic(%q) error = %q, want it to list the available topics", "nope", err)
	}
}

func TestGetTopics_Star(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error = %v", err)
	}
	got, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) unexpected error = %v", err)
	}
	for _, topic := range all {
		content, _ := GetTopic(topic)
		if !strings.Contains(got, content) {
			t.Errorf("GetTopics(*) does not contain topic %q", topic)
		}
	}
}

func TestHeadings(t *testing.T) {
	// Every topic starts with a level 1 heading.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))
			h, ok := root.FirstChild().(*ast.Heading)
			if !ok {
				t.Fatalf("%s does not start with a heading", file)
			}
			if h.Level != 1 {
				t.Errorf("%s first heading level = %d, want 1", file, h.Level)
			}
		})
	}
}
