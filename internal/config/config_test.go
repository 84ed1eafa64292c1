package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cardroom.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if *cfg != *def {
		t.Errorf("Load of missing file = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadParsesHCL(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
table {
  variant        = "five-card-draw"
  seats          = 6
  ante           = 5
  starting_chips = 500
}

session {
  rounds    = 25
  seed      = 42
  pacing_ms = 100
  log_level = "debug"
}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Table.Variant != "five-card-draw" {
		t.Errorf("variant = %q", cfg.Table.Variant)
	}
	if cfg.Table.Seats != 6 || cfg.Table.Ante != 5 || cfg.Table.StartingChips != 500 {
		t.Errorf("table = %+v", cfg.Table)
	}
	if cfg.Session.Rounds != 25 || cfg.Session.Seed != 42 || cfg.Session.PacingMS != 100 {
		t.Errorf("session = %+v", cfg.Session)
	}
	if cfg.Session.LogLevel != "debug" {
		t.Errorf("log_level = %q", cfg.Session.LogLevel)
	}

	// Unset fields pick up defaults.
	if cfg.Table.SmallBlind != 1 || cfg.Table.BigBlind != 2 {
		t.Errorf("blinds = %d/%d, want defaults 1/2", cfg.Table.SmallBlind, cfg.Table.BigBlind)
	}
	if cfg.Table.Decks != 1 {
		t.Errorf("decks = %d, want 1", cfg.Table.Decks)
	}
}

func TestLoadValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"unknown variant", `
table { variant = "omaha" }
session {}
`},
		{"single seat", `
table { seats = 1 }
session {}
`},
		{"big blind below small blind", `
table {
  small_blind = 10
  big_blind   = 5
}
session {}
`},
		{"negative ante", `
table { ante = -1 }
session {}
`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMalformedHCL(t *testing.T) {
	t.Parallel()

	if _, err := Load(writeConfig(t, "table { variant =")); err == nil {
		t.Error("expected parse error")
	}
}
