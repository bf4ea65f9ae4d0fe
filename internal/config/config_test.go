package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParse_AllAttributes(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
		bound      = 12
		checked    = false
		log_level  = "debug"
		log_format = "json"
	`

	// --- Act ---
	got, err := Parse([]byte(src), "settings.hcl", nil)

	// --- Assert ---
	require.NoError(t, err)
	want := &File{
		Bound:     ptr(int64(12)),
		Checked:   ptr(false),
		LogLevel:  ptr("debug"),
		LogFormat: ptr("json"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded file mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EmptyFileLeavesEverythingUnset(t *testing.T) {
	t.Parallel()

	got, err := Parse([]byte(""), "empty.hcl", nil)
	require.NoError(t, err)
	assert.Nil(t, got.Bound)
	assert.Nil(t, got.Checked)
	assert.Nil(t, got.LogLevel)
	assert.Nil(t, got.LogFormat)
}

func TestParse_Expressions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		src     string
		environ []string
		want    int64
	}{
		{name: "arithmetic", src: `bound = 5 * 2`, want: 10},
		{name: "env lookup", src: `bound = tonumber(env.SUMSQ_BOUND)`, environ: []string{"SUMSQ_BOUND=42"}, want: 42},
		{name: "env with spaces", src: `bound = tonumber(env.B)`, environ: []string{"B= 7 "}, want: 7},
		{name: "max clamps", src: `bound = max(1, -3)`, want: 1},
		{name: "min clamps", src: `bound = min(100, 20)`, want: 20},
		{name: "abs", src: `bound = abs(-4)`, want: 4},
		{name: "negative bound", src: `bound = -2`, want: -2},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse([]byte(tc.src), "expr.hcl", tc.environ)
			require.NoError(t, err)
			require.NotNil(t, got.Bound)
			assert.Equal(t, tc.want, *got.Bound)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "syntax error", src: `bound = `, wantErr: "failed to parse HCL file"},
		{name: "unknown attribute", src: `workers = 3`, wantErr: "failed to decode HCL file"},
		{name: "fractional bound", src: `bound = 2.5`, wantErr: "failed to decode HCL file"},
		{name: "non numeric string", src: `bound = tonumber("ten")`, wantErr: "failed to decode HCL file"},
		{name: "missing env key", src: `bound = tonumber(env.NOPE)`, wantErr: "failed to decode HCL file"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tc.src), "bad.hcl", []string{"OTHER=1"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads the file and the real environment", func(t *testing.T) {
		t.Setenv("SUMSQ_TEST_BOUND", "3")
		path := filepath.Join(t.TempDir(), "settings.hcl")
		require.NoError(t, os.WriteFile(path, []byte(`bound = tonumber(env.SUMSQ_TEST_BOUND)`), 0600))

		got, err := Load(context.Background(), path)
		require.NoError(t, err)
		require.NotNil(t, got.Bound)
		assert.Equal(t, int64(3), *got.Bound)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
