package classifier

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"radar/pkg/model"
)

func TestParseRules(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   string
		wantRules int
	}{
		{
			name: "valid ordered rules",
			input: `
rules:
  - label: Retail
    keywords: [loja, store]
  - label: Agro & Rural
    keywords: [fazenda]
`,
			wantRules: 2,
		},
		{
			name:    "unknown label",
			input:   "rules:\n  - label: Mining\n    keywords: [mina]\n",
			wantErr: "unknown sector label",
		},
		{
			name:    "other is not a rule",
			input:   "rules:\n  - label: Other\n    keywords: [x]\n",
			wantErr: "unknown sector label",
		},
		{
			name:    "no keywords",
			input:   "rules:\n  - label: Food\n",
			wantErr: "no keywords",
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: "no rules",
		},
		{
			name:    "malformed yaml",
			input:   "rules: [",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := ParseRules([]byte(tt.input))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rules) != tt.wantRules {
				t.Errorf("expected %d rules, got %d", tt.wantRules, len(rules))
			}
		})
	}
}

func TestLoadRules_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sectors.yaml")
	content := "rules:\n  - label: Retail\n    keywords: [rural]\n  - label: Agro & Rural\n    keywords: [loja]\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write rules file: %v", err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}

	c := New(rules)
	if got := c.ClassifyText("loja rural"); got != model.SectorRetail {
		t.Errorf("file order should drive priority, got %q", got)
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
