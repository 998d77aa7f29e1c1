package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockit/internal/app/docking"
	"github.com/bnema/dockit/internal/application/usecase"
	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/bnema/dockit/internal/infrastructure/statexml"
)

func newRestoreTarget() *docking.Manager {
	cfg := docking.NewEngineConfig()
	cfg.SetAutoHideFlags(docking.DefaultAutoHideConfig)
	return docking.New(ctxForTest(), docking.Options{Config: cfg, Scheduler: docking.NewManualScheduler()})
}

func TestRestoreLayoutUseCase_Execute(t *testing.T) {
	state := savedLayout(t, true)
	m := newRestoreTarget()

	created, err := usecase.NewRestoreLayoutUseCase().Execute(ctxForTest(), m, state, 7)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"files", "log", "props", "outline"}, created)
	assert.True(t, m.FindDockWidget("log").IsClosed())
	assert.True(t, m.FindDockWidget("props").IsFloating())
	assert.True(t, m.FindDockWidget("outline").IsAutoHide())
	assert.False(t, m.FindDockWidget("files").IsFloating())
}

func TestRestoreLayoutUseCase_KeepsExistingWidgets(t *testing.T) {
	state := savedLayout(t, false)
	m := newRestoreTarget()
	files := m.CreateDockWidget("files")
	m.AddDockWidgetFloating(files)

	created, err := usecase.NewRestoreLayoutUseCase().Execute(ctxForTest(), m, state, 7)
	require.NoError(t, err)

	assert.NotContains(t, created, "files")
	assert.Same(t, files, m.FindDockWidget("files"))
	assert.False(t, files.IsFloating(), "restore docks it back")
}

func TestRestoreLayoutUseCase_Errors(t *testing.T) {
	uc := usecase.NewRestoreLayoutUseCase()

	_, err := uc.Execute(ctxForTest(), newRestoreTarget(), []byte("<nope/>"), 0)
	assert.ErrorIs(t, err, statexml.ErrInvalidRootElement)

	_, err = uc.Execute(ctxForTest(), newRestoreTarget(), savedLayout(t, false), 8)
	assert.ErrorIs(t, err, statexml.ErrUserVersionMismatch)
}

func TestRestoreLayoutUseCase_CentralWidget(t *testing.T) {
	src := newRestoreTarget()
	_, err := src.SetCentralWidgetErr(src.CreateDockWidget("editor"))
	require.NoError(t, err)
	require.NotNil(t, src.AddDockWidget(entity.LeftDockWidgetArea, src.CreateDockWidget("files"), nil))
	state, err := src.SaveStateErr(0)
	require.NoError(t, err)

	m := newRestoreTarget()
	created, err := usecase.NewRestoreLayoutUseCase().Execute(ctxForTest(), m, state, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"editor", "files"}, created)
	require.NotNil(t, m.CentralWidget())
	assert.Equal(t, "editor", m.CentralWidget().Name())
}
