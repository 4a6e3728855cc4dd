package domain_test

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"testgen.dev/pkg/testgen/internal/adapter"
	adaptermocks "testgen.dev/pkg/testgen/internal/adapter/mocks"
	"testgen.dev/pkg/testgen/internal/domain"
	m "testgen.dev/pkg/testgen/internal/model"
)

func fn(name string, visibility m.Visibility) m.Symbol {
	return m.Symbol{Kind: m.KindFunction, Name: name, Visibility: visibility}
}

func variable(name, typ string) m.Symbol {
	return m.Symbol{Kind: m.KindVariable, Name: name, Type: typ, Visibility: m.VisibilityPublic}
}

func newLocalEmitter(opts domain.EmitOptions) domain.StubEmitter {
	return domain.NewStubEmitter(adapter.NewLocalSourceFSAdapter(), adapter.NewDefaultTemplateRenderer(), opts)
}

func readString(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(name)
	require.NoError(t, err)

	return string(data)
}

func joinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(path.Join(elem...))
}

func TestStubEmitter_EmitCreatesOneFilePerSymbol(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	emitter := newLocalEmitter(domain.EmitOptions{})

	result := emitter.Emit(ctx, m.Path(dir), "Bank", []m.Symbol{
		variable("owner", "address"),
		fn("deposit", m.VisibilityExternal),
		fn("withdraw", m.VisibilityPublic),
	})

	require.Empty(t, result.Failures)
	require.Len(t, result.Created, 3)

	for _, name := range []string{"owner", "deposit", "withdraw"} {
		content := readString(t, filepath.Join(dir, name+".test.ts"))
		assert.Contains(t, content, "describe(`Bank / "+name+"`")
		assert.Contains(t, content, "it.skip(")
	}

	assert.Equal(t, "withdraw.test.ts", result.Created[2].FileName)
	assert.Equal(t, m.Path(filepath.Join(dir, "withdraw.test.ts")), result.Created[2].TargetPath)
}

func TestStubEmitter_WriteModes(t *testing.T) {
	tests := []struct {
		name       string
		mode       m.WriteMode
		multiplier int
	}{
		{"append accumulates", m.WriteAppend, 2},
		{"overwrite replaces", m.WriteOverwrite, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			dir := t.TempDir()
			emitter := newLocalEmitter(domain.EmitOptions{Mode: tt.mode})
			symbols := []m.Symbol{fn("withdraw", m.VisibilityPublic)}
			target := filepath.Join(dir, "withdraw.test.ts")

			require.Empty(t, emitter.Emit(ctx, m.Path(dir), "Bank", symbols).Failures)
			once := readString(t, target)

			require.Empty(t, emitter.Emit(ctx, m.Path(dir), "Bank", symbols).Failures)
			twice := readString(t, target)

			assert.Len(t, twice, len(once)*tt.multiplier)
		})
	}
}

func TestStubEmitter_CustomExtension(t *testing.T) {
	dir := t.TempDir()
	emitter := newLocalEmitter(domain.EmitOptions{Extension: ".spec.js"})

	result := emitter.Emit(context.Background(), m.Path(dir), "Bank", []m.Symbol{fn("deposit", m.VisibilityExternal)})

	require.Len(t, result.Created, 1)
	assert.Equal(t, "deposit.spec.js", result.Created[0].FileName)
	assert.FileExists(t, filepath.Join(dir, "deposit.spec.js"))
}

func TestStubEmitter_CollisionPolicies(t *testing.T) {
	overloaded := []m.Symbol{
		fn("transfer", m.VisibilityExternal),
		fn("transfer", m.VisibilityPublic),
		fn("approve", m.VisibilityPublic),
	}

	t.Run("duplicate shares one file", func(t *testing.T) {
		dir := t.TempDir()
		emitter := newLocalEmitter(domain.EmitOptions{Collision: m.CollisionDuplicate, Mode: m.WriteOverwrite})

		result := emitter.Emit(context.Background(), m.Path(dir), "Token", overloaded)

		require.Empty(t, result.Failures)
		assert.Len(t, result.Created, 3)

		content := readString(t, filepath.Join(dir, "transfer.test.ts"))
		assert.Equal(t, 2, strings.Count(content, "describe(`Token / transfer`"))
	})

	t.Run("fail rejects every colliding symbol", func(t *testing.T) {
		dir := t.TempDir()
		emitter := newLocalEmitter(domain.EmitOptions{Collision: m.CollisionFail})

		result := emitter.Emit(context.Background(), m.Path(dir), "Token", overloaded)

		require.Len(t, result.Failures, 2)
		for _, failure := range result.Failures {
			assert.Equal(t, "transfer", failure.Symbol)
			assert.ErrorIs(t, failure.Err, domain.ErrSymbolCollision)
		}

		require.Len(t, result.Created, 1)
		assert.Equal(t, "approve", result.Created[0].Symbol.Name)
		assert.NoFileExists(t, filepath.Join(dir, "transfer.test.ts"))
	})

	t.Run("suffix adds the visibility", func(t *testing.T) {
		dir := t.TempDir()
		emitter := newLocalEmitter(domain.EmitOptions{Collision: m.CollisionSuffix})

		result := emitter.Emit(context.Background(), m.Path(dir), "Token", append(overloaded, fn("transfer", m.VisibilityPublic)))

		require.Empty(t, result.Failures)

		var files []string
		for _, stub := range result.Created {
			files = append(files, stub.FileName)
		}

		assert.Equal(t, []string{
			"transfer.test.ts",
			"transfer_public.test.ts",
			"approve.test.ts",
			"transfer_public_2.test.ts",
		}, files)
	})
}

func TestStubEmitter_WriteFailureDoesNotStopSiblings(t *testing.T) {
	ctx := context.Background()
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	writeErr := errors.New("disk full")

	fsAdapter.EXPECT().JoinPath(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(joinPath)
	fsAdapter.EXPECT().AppendFile(mock.Anything, m.Path("out/deposit.test.ts"), mock.Anything).Return(writeErr)
	fsAdapter.EXPECT().AppendFile(mock.Anything, m.Path("out/withdraw.test.ts"), mock.Anything).Return(nil)

	emitter := domain.NewStubEmitter(fsAdapter, adapter.NewDefaultTemplateRenderer(), domain.EmitOptions{Parallel: 2})

	result := emitter.Emit(ctx, "out", "Bank", []m.Symbol{
		fn("deposit", m.VisibilityExternal),
		fn("withdraw", m.VisibilityPublic),
	})

	require.Len(t, result.Failures, 1)
	assert.Equal(t, "deposit", result.Failures[0].Symbol)
	assert.Equal(t, m.Path("out/deposit.test.ts"), result.Failures[0].Target)
	assert.ErrorIs(t, result.Failures[0].Err, domain.ErrStubWrite)
	assert.ErrorIs(t, result.Failures[0].Err, writeErr)

	require.Len(t, result.Created, 1)
	assert.Equal(t, "withdraw", result.Created[0].Symbol.Name)
}

func TestStubEmitter_RenderFailure(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	renderer := adaptermocks.NewMockTemplateRenderer(t)
	renderErr := errors.New("bad template")

	renderer.EXPECT().Render(m.ContractName("Bank"), "deposit").Return("", renderErr)
	renderer.EXPECT().Render(m.ContractName("Bank"), "withdraw").Return("stub\n", nil)

	emitter := domain.NewStubEmitter(adapter.NewLocalSourceFSAdapter(), renderer, domain.EmitOptions{})

	result := emitter.Emit(ctx, m.Path(dir), "Bank", []m.Symbol{
		fn("deposit", m.VisibilityExternal),
		fn("withdraw", m.VisibilityPublic),
	})

	require.Len(t, result.Failures, 1)
	assert.ErrorIs(t, result.Failures[0].Err, domain.ErrTemplateRender)
	assert.NoFileExists(t, filepath.Join(dir, "deposit.test.ts"))
	assert.Equal(t, "stub\n", readString(t, filepath.Join(dir, "withdraw.test.ts")))
}

func TestStubEmitter_ParallelLimit(t *testing.T) {
	const limit = 2

	ctx := context.Background()
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)

	var (
		running int32
		peak    int32
		mu      sync.Mutex
		written []m.Path
	)

	fsAdapter.EXPECT().JoinPath(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(joinPath)
	fsAdapter.EXPECT().WriteFile(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, target m.Path, _ []byte) error {
			now := atomic.AddInt32(&running, 1)
			defer atomic.AddInt32(&running, -1)

			for {
				old := atomic.LoadInt32(&peak)
				if now <= old || atomic.CompareAndSwapInt32(&peak, old, now) {
					break
				}
			}

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			written = append(written, target)
			mu.Unlock()

			return nil
		})

	emitter := domain.NewStubEmitter(fsAdapter, adapter.NewDefaultTemplateRenderer(), domain.EmitOptions{
		Mode:     m.WriteOverwrite,
		Parallel: limit,
	})

	var symbols []m.Symbol
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		symbols = append(symbols, fn(name, m.VisibilityPublic))
	}

	result := emitter.Emit(ctx, "out", "Bank", symbols)

	require.Empty(t, result.Failures)
	assert.Len(t, result.Created, len(symbols))
	assert.Len(t, written, len(symbols))
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(limit))
}

func TestStubEmitter_PlanNewFile(t *testing.T) {
	dir := t.TempDir()
	emitter := newLocalEmitter(domain.EmitOptions{})

	plans, failures := emitter.Plan(context.Background(), m.Path(dir), "Bank", []m.Symbol{fn("deposit", m.VisibilityExternal)})

	require.Empty(t, failures)
	require.Len(t, plans, 1)

	plan := plans[0]
	assert.False(t, plan.Exists)
	assert.Equal(t, []string{"deposit"}, plan.Symbols)
	assert.True(t, strings.HasPrefix(plan.Diff, "--- /dev/null"), plan.Diff)
	assert.Contains(t, plan.Diff, "+describe(`Bank / deposit`")
	assert.NoFileExists(t, filepath.Join(dir, "deposit.test.ts"))
}

func TestStubEmitter_PlanExistingFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	target := filepath.Join(dir, "deposit.test.ts")
	require.NoError(t, os.WriteFile(target, []byte("// existing\n"), 0o600))

	t.Run("append keeps the existing lines", func(t *testing.T) {
		emitter := newLocalEmitter(domain.EmitOptions{Mode: m.WriteAppend})

		plans, failures := emitter.Plan(ctx, m.Path(dir), "Bank", []m.Symbol{fn("deposit", m.VisibilityExternal)})

		require.Empty(t, failures)
		require.Len(t, plans, 1)
		assert.True(t, plans[0].Exists)
		assert.Equal(t, m.WriteAppend, plans[0].Mode)
		assert.True(t, strings.HasPrefix(plans[0].Diff, "--- "+target), plans[0].Diff)
		assert.NotContains(t, plans[0].Diff, "-// existing")
	})

	t.Run("overwrite removes them", func(t *testing.T) {
		emitter := newLocalEmitter(domain.EmitOptions{Mode: m.WriteOverwrite})

		plans, failures := emitter.Plan(ctx, m.Path(dir), "Bank", []m.Symbol{fn("deposit", m.VisibilityExternal)})

		require.Empty(t, failures)
		require.Len(t, plans, 1)
		assert.Contains(t, plans[0].Diff, "-// existing")
	})

	assert.Equal(t, "// existing\n", readString(t, target))
}
