package contact

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

func sampleMessage(id, name string) Message {
	return Message{
		ID:        id,
		Timestamp: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Name:      name,
		Email:     strings.ToLower(name) + "@example.com",
		Message:   "hello from " + name,
		IP:        "127.0.0.1",
	}
}

func TestSubmissionValidate(t *testing.T) {
	tests := []struct {
		name string
		sub  Submission
		ok   bool
	}{
		{"complete", Submission{"Ada", "ada@example.com", "hi"}, true},
		{"missing name", Submission{"", "ada@example.com", "hi"}, false},
		{"blank email", Submission{"Ada", "   ", "hi"}, false},
		{"missing message", Submission{"Ada", "ada@example.com", ""}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sub.Validate()
			if tt.ok && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrMissingField) {
				t.Errorf("Expected ErrMissingField, got %v", err)
			}
		})
	}
}

func TestFileStoreEmpty(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", got)
	}
}

func TestFileStoreAppend(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for _, m := range []Message{sampleMessage("1", "Ada"), sampleMessage("2", "Grace")} {
		if err := s.Append(m); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Ada" || got[1].Name != "Grace" {
		t.Fatalf("Expected Ada then Grace, got %+v", got)
	}
	if !got[0].Timestamp.Equal(sampleMessage("1", "Ada").Timestamp) {
		t.Errorf("Expected timestamp preserved, got %v", got[0].Timestamp)
	}

	raw, err := os.ReadFile(s.JSONPath())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), "[\n  {\n    \"id\": \"1\"") {
		t.Errorf("Expected pretty JSON array with two-space indent, got %q", string(raw[:min(len(raw), 40)]))
	}
	var decoded []map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}
	if decoded[0]["timestamp"] != "2025-03-14T09:26:53Z" {
		t.Errorf("Expected RFC3339 timestamp, got %v", decoded[0]["timestamp"])
	}

	text, err := os.ReadFile(s.TextPath())
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(text), "=== NEW MESSAGE ==="); n != 2 {
		t.Errorf("Expected 2 text blocks, got %d", n)
	}
	if !strings.Contains(string(text), "Email: grace@example.com\nMessage: hello from Grace\n") {
		t.Errorf("Expected readable fields in text log, got %q", string(text))
	}
}

func TestFileStoreConcurrentAppend(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := s.Append(sampleMessage(string(rune('a'+i)), "User")); err != nil {
				t.Errorf("Append %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	got, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != writers {
		t.Errorf("Expected %d messages, got %d", writers, len(got))
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.JSONPath(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.List(); err == nil {
		t.Error("Expected decode error for corrupt file")
	}
	if err := s.Append(sampleMessage("1", "Ada")); err == nil {
		t.Error("Expected Append to refuse overwriting a corrupt file")
	}
}

func TestFilter(t *testing.T) {
	messages := []Message{sampleMessage("1", "Ada"), sampleMessage("2", "Grace")}
	messages[1].Timestamp = messages[1].Timestamp.AddDate(1, 0, 0)

	tests := []struct {
		src  string
		want []string
	}{
		{`name == "Ada"`, []string{"1"}},
		{`email endsWith "@example.com"`, []string{"1", "2"}},
		{`message contains "Grace"`, []string{"2"}},
		{`timestamp > date("2026-01-01")`, []string{"2"}},
		{`ip == "10.0.0.1"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			f, err := CompileFilter(tt.src)
			if err != nil {
				t.Fatalf("CompileFilter: %v", err)
			}
			got, err := f.Apply(messages)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d matches, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("Match %d: expected id %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestFilterCompileErrors(t *testing.T) {
	for _, src := range []string{`name +`, `name`, `unknown == 1`} {
		if _, err := CompileFilter(src); err == nil {
			t.Errorf("Expected compile error for %q", src)
		}
	}
}
