package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantviewer/internal/models"
)

func newTestRepo(t *testing.T) (SettingsRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "common", "settings.json")
	return NewSettingsRepository(path), path
}

func writeRaw(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSettingsRepository_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	cases := []models.SettingsRecord{
		{},
		{IModelName: "m1", ProjectName: "p1", DrawingName: "d1"},
		{IModelName: `quote " inside`, ProjectName: `back\slash`, DrawingName: "new\nline\ttab"},
		{IModelName: "<html>&amp;", ProjectName: "{\"nested\":[1,2]}", DrawingName: "ünïcødé ✓"},
		{IModelName: "\u0000ctl\u001f", ProjectName: " ", DrawingName: "/"},
	}

	for i, want := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			repo, _ := newTestRepo(t)
			require.NoError(t, repo.Save(ctx, &want))

			got, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, *got)
		})
	}
}

func TestSettingsRepository_SaveWritesAllKeys(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, repo.Save(context.Background(), &models.SettingsRecord{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"imodel_name":"","project_name":"","drawing_name":""}`, string(data))
}

func TestSettingsRepository_UpdatePreservesOtherFields(t *testing.T) {
	repo, path := newTestRepo(t)
	writeRaw(t, path, `{"imodel_name":"A","project_name":"old","drawing_name":"B"}`)

	before, after, err := repo.Update(context.Background(), models.FieldProjectName, "X")
	require.NoError(t, err)
	assert.Equal(t, "old", before.ProjectName)
	assert.Equal(t, models.SettingsRecord{IModelName: "A", ProjectName: "X", DrawingName: "B"}, *after)

	stored, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, *after, *stored)
}

func TestSettingsRepository_UpdateDrawingNameUsesSettingsFile(t *testing.T) {
	repo, path := newTestRepo(t)
	writeRaw(t, path, `{"imodel_name":"m1","project_name":"p1","drawing_name":"d1"}`)

	_, _, err := repo.Update(context.Background(), models.FieldDrawingName, "d2")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"imodel_name":"m1","project_name":"p1","drawing_name":"d2"}`, string(data))

	_, err = os.Stat(filepath.Join(filepath.Dir(path), LegacyDrawingFile))
	assert.True(t, os.IsNotExist(err), "drawing updates must not touch config.json")
}

func TestSettingsRepository_UpdateSeesExternalEdits(t *testing.T) {
	repo, path := newTestRepo(t)
	writeRaw(t, path, `{"imodel_name":"m1","project_name":"p1","drawing_name":"d1"}`)
	ctx := context.Background()

	_, _, err := repo.Update(ctx, models.FieldIModelName, "m2")
	require.NoError(t, err)

	// Another writer changes the project between our updates.
	writeRaw(t, path, `{"imodel_name":"m2","project_name":"external","drawing_name":"d1"}`)

	_, after, err := repo.Update(ctx, models.FieldDrawingName, "d9")
	require.NoError(t, err)
	assert.Equal(t, "external", after.ProjectName)
}

func TestSettingsRepository_UpdateMissingFileStartsEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	before, after, err := repo.Update(context.Background(), models.FieldIModelName, "m1")
	require.NoError(t, err)
	assert.Equal(t, models.SettingsRecord{}, *before)
	assert.Equal(t, models.SettingsRecord{IModelName: "m1"}, *after)
}

func TestSettingsRepository_UpdateMalformedLeavesFileAlone(t *testing.T) {
	repo, path := newTestRepo(t)
	writeRaw(t, path, `{not json`)

	_, _, err := repo.Update(context.Background(), models.FieldProjectName, "X")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSettingsMalformed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{not json`, string(data))
}

func TestSettingsRepository_UpdateUnknownField(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, _, err := repo.Update(context.Background(), models.SettingsField("theme"), "dark")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSettingsRepository_LoadErrors(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrSettingsNotFound)

	writeRaw(t, path, `["not","an","object"]`)
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, ErrSettingsMalformed)
}

func TestSettingsRepository_LoadStripsBOM(t *testing.T) {
	repo, path := newTestRepo(t)
	writeRaw(t, path, "\xef\xbb\xbf"+`{"imodel_name":"m","project_name":"p","drawing_name":"d"}`)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "m", got.IModelName)
}

func TestSettingsRepository_CanceledContext(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, _, err = repo.Update(ctx, models.FieldIModelName, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSettingsRepository_EnsureDefault(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SettingsRecord{}, *got)

	writeRaw(t, path, `{"imodel_name":"keep","project_name":"","drawing_name":""}`)
	created, err = repo.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "keep", got.IModelName)
}

func TestSettingsRepository_LegacyDrawing(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()
	legacy := filepath.Join(filepath.Dir(path), LegacyDrawingFile)

	_, found, err := repo.LegacyDrawing(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	writeRaw(t, legacy, `{"imodel_name":"m1","project_name":"p1","drawing_name":"legacy"}`)
	name, found, err := repo.LegacyDrawing(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "legacy", name)

	require.NoError(t, repo.RetireLegacyDrawing(ctx))
	_, err = os.Stat(legacy)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(legacy + ".migrated")
	assert.NoError(t, err)

	// Retiring twice is harmless.
	assert.NoError(t, repo.RetireLegacyDrawing(ctx))
}

func TestSettingsRepository_NoTempFilesLeft(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, _, err := repo.Update(ctx, models.FieldIModelName, fmt.Sprintf("m%d", i))
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "settings.json", entries[0].Name())
}

func TestSettingsRepository_ConcurrentWritersKeepFileParseable(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, &models.SettingsRecord{IModelName: "m0", ProjectName: "p0", DrawingName: "d0"}))

	// A second repository on the same path stands in for another process:
	// it does not share the first one's lock.
	external := NewSettingsRepository(path)

	const rounds = 50
	var wg sync.WaitGroup
	stop := make(chan struct{})
	readErrs := make(chan error, 1)

	go func() {
		for {
			select {
			case <-stop:
				return
			default:
			}
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			var rec models.SettingsRecord
			if err := json.Unmarshal(data, &rec); err != nil {
				select {
				case readErrs <- fmt.Errorf("partial file %q: %w", data, err):
				default:
				}
				return
			}
		}
	}()

	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, _, err := repo.Update(ctx, models.FieldProjectName, fmt.Sprintf("p%d", i))
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, _, err := repo.Update(ctx, models.FieldIModelName, fmt.Sprintf("m%d", i))
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			rec := models.SettingsRecord{IModelName: "ext", ProjectName: "ext", DrawingName: strings.Repeat("x", i)}
			assert.NoError(t, external.Save(ctx, &rec))
		}
	}()
	wg.Wait()
	close(stop)

	select {
	case err := <-readErrs:
		t.Fatal(err)
	default:
	}

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
