package wlfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Neumenon/wldat/wldat"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
strict: true
order: fortran
max_rank: 16
max_token_len: 64
plain_exponent: true
comment: solver output
compression: zstd
compression_level: 5
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	p, err := cfg.ParseOptions()
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}
	if !p.Strict || p.Order != wldat.ColumnMajor || p.MaxRank != 16 || p.MaxTokenLen != 64 {
		t.Errorf("unexpected parse options: %+v", p)
	}

	e, err := cfg.EmitOptions()
	if err != nil {
		t.Fatalf("EmitOptions failed: %v", err)
	}
	if !e.PlainExponent || e.Order != wldat.ColumnMajor || e.MaxRank != 16 {
		t.Errorf("unexpected emit options: %+v", e)
	}
	if cfg.Comment != "solver output" || cfg.Compression != "zstd" || cfg.CompressionLevel != 5 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("ParseConfig(nil) = %+v, want defaults", cfg)
	}

	cfg, err = ParseConfig([]byte("strict: true\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if !cfg.Strict || cfg.MaxRank != wldat.DefaultMaxRank || cfg.Order != "row-major" {
		t.Errorf("unset keys should keep their defaults: %+v", cfg)
	}

	p, err := DefaultConfig().ParseOptions()
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}
	if p != wldat.DefaultParseOptions() {
		t.Errorf("default config parse options = %+v", p)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"unknown key", "stric: true\n", "stric"},
		{"bad order", "order: diagonal\n", "unknown order"},
		{"bad compression", "compression: lzma\n", "unknown compression"},
		{"negative rank", "max_rank: -1\n", "max_rank"},
		{"negative token", "max_token_len: -4\n", "max_token_len"},
		{"bad yaml", "strict: [\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q should contain %q", err, tt.msg)
			}
		})
	}
}

func TestConfig_MarshalLoad(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strict = true
	cfg.Order = wldat.ColumnMajor.String()
	cfg.Compression = CompressionGzip.String()

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "wldat.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config")
	}
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in   string
		want Compression
	}{
		{"", CompressionAuto},
		{"auto", CompressionAuto},
		{"none", CompressionNone},
		{"GZ", CompressionGzip},
		{"zst", CompressionZstd},
	}
	for _, tt := range tests {
		got, err := ParseCompression(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseCompression(%q) = %v, %v", tt.in, got, err)
		}
	}
}
