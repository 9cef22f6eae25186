package cmd

import (
	"errors"
	"testing"

	"github.com/eBay/tsv-utils-sub002/split"
)

func TestParseKeyFields(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		want      []int
		wholeLine bool
		wantErr   bool
	}{
		{name: "empty", spec: "", want: nil},
		{name: "single field", spec: "2", want: []int{1}},
		{name: "ordered list", spec: "3,1", want: []int{2, 0}},
		{name: "whole line", spec: "0", wholeLine: true},
		{name: "whole line mixed with fields", spec: "0,2", wantErr: true},
		{name: "field mixed with whole line", spec: "2,0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, wholeLine, err := parseKeyFields(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if wholeLine != tt.wholeLine {
				t.Errorf("wholeLine = %v, expected %v", wholeLine, tt.wholeLine)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("indices = %v, expected %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("indices = %v, expected %v", got, tt.want)
				}
			}
		})
	}
}

func TestDefaultSuffix(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no inputs", args: nil, want: ""},
		{name: "stdin", args: []string{"-"}, want: ""},
		{name: "tsv file", args: []string{"data.tsv"}, want: ".tsv"},
		{name: "no extension", args: []string{"data"}, want: ""},
		{name: "first of several", args: []string{"a.csv", "b.tsv"}, want: ".csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultSuffix(tt.args); got != tt.want {
				t.Errorf("defaultSuffix(%v) = %q, expected %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseDelimiter(t *testing.T) {
	if _, err := parseDelimiter(""); err == nil {
		t.Error("expected an error for an empty delimiter")
	}
	if _, err := parseDelimiter("ab"); err == nil {
		t.Error("expected an error for a multi-byte delimiter")
	}
	d, err := parseDelimiter(",")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != ',' {
		t.Errorf("expected ',', got %q", d)
	}
}

func TestBuildSplitConfigHeaderConflict(t *testing.T) {
	opts := &splitOptions{numFiles: 2, header: true, headerInOnly: true, delimiter: "\t"}
	_, err := buildSplitConfig(opts, nil)
	if !errors.Is(err, split.ErrHeaderConflict) {
		t.Fatalf("expected ErrHeaderConflict, got %v", err)
	}
}

func TestResolveSeed(t *testing.T) {
	if got := resolveSeed(&splitOptions{seedValueSet: true, seedValue: 77}); got != 77 {
		t.Errorf("expected the explicit seed 77, got %d", got)
	}
	if got := resolveSeed(&splitOptions{staticSeed: true}); got != split.DefaultStaticSeed {
		t.Errorf("expected the static seed, got %d", got)
	}
}
