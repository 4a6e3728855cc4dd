package adapter

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "testgen.dev/pkg/testgen/internal/model"
)

func TestDefaultTemplateRenderer_Render(t *testing.T) {
	renderer := NewDefaultTemplateRenderer()

	got, err := renderer.Render("Bank", "withdraw")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "\n/* ====="))
	assert.Contains(t, got, "describe(`Bank / withdraw`, function () {")
	assert.Contains(t, got, "import { expect } from 'chai';")
	assert.Contains(t, got, "before(async function () {")
	assert.Equal(t, 1, strings.Count(got, "it.skip('FAILS'"))
	assert.Equal(t, 1, strings.Count(got, "it.skip('SUCCEEDS'"))
	assert.True(t, strings.HasSuffix(got, "});\n"))
}

func TestDefaultTemplateRenderer_EmptyContract(t *testing.T) {
	renderer := NewDefaultTemplateRenderer()

	got, err := renderer.Render("", "balance")
	require.NoError(t, err)
	assert.Contains(t, got, "describe(` / balance`")
}

func TestNewTemplateRenderer(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{"plain", "it('{{ .Symbol }}')\n", "it('withdraw')\n", false},
		{"both fields", "{{ .Contract }}.{{ .Symbol }}", "Bank.withdraw", false},
		{"parse error", "{{ .Symbol ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer, err := NewTemplateRenderer("custom", tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			got, err := renderer.Render("Bank", "withdraw")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplateRenderer_UnknownFieldFails(t *testing.T) {
	renderer, err := NewTemplateRenderer("custom", "{{ .Owner }}")
	require.NoError(t, err)

	_, err = renderer.Render("Bank", "withdraw")
	require.Error(t, err)
}

func TestNewTemplateRendererFromFile(t *testing.T) {
	ctx := context.Background()
	fsAdapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "stub.tmpl")
	writeTestFile(t, path, "test('{{ .Contract }}::{{ .Symbol }}')\n")

	renderer, err := NewTemplateRendererFromFile(ctx, fsAdapter, m.Path(path))
	require.NoError(t, err)

	got, err := renderer.Render("Vault", "deposit")
	require.NoError(t, err)
	assert.Equal(t, "test('Vault::deposit')\n", got)

	_, err = NewTemplateRendererFromFile(ctx, fsAdapter, m.Path(path+".missing"))
	require.Error(t, err)
}
