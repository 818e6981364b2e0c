package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-doc2nb/internal/yamlutil"
)

type sample struct {
	Kernel  string `yaml:"kernel"`
	Workers int    `yaml:"workers"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid input", func(t *testing.T) {
		t.Parallel()
		var s sample
		err := yamlutil.UnmarshalStrict([]byte("kernel: python\nworkers: 4\n"), &s)
		if err != nil {
			t.Fatalf("UnmarshalStrict() error: %v", err)
		}
		if s.Kernel != "python" || s.Workers != 4 {
			t.Errorf("got %+v", s)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()
		var s sample
		if err := yamlutil.UnmarshalStrict(nil, &s); !errors.Is(err, yamlutil.ErrEmptyInput) {
			t.Errorf("error = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()
		if err := yamlutil.UnmarshalStrict([]byte("a: 1"), nil); !errors.Is(err, yamlutil.ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()
		big := []byte("kernel: " + strings.Repeat("x", yamlutil.MaxConfigSize))
		var s sample
		if err := yamlutil.UnmarshalStrict(big, &s); !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()
		var s sample
		err := yamlutil.UnmarshalStrict([]byte("kernel: python\nmystery: 1\n"), &s)
		if err == nil {
			t.Error("UnmarshalStrict() accepted an unknown field")
		}
	})

	t.Run("parse error names the offending line", func(t *testing.T) {
		t.Parallel()
		var s sample
		err := yamlutil.UnmarshalStrict([]byte("kernel: [unclosed\n"), &s)
		if err == nil {
			t.Fatal("UnmarshalStrict() accepted malformed YAML")
		}
		if !strings.Contains(err.Error(), "yamlutil:") {
			t.Errorf("error %q missing package prefix", err)
		}
	})
}
