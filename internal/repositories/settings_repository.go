package repositories

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"plantviewer/internal/models"
)

//go:embed default_settings.json
var defaultSettings []byte

// LegacyDrawingFile is the file an older drawing updater wrote to instead of
// settings.json. It is only read during migration.
const LegacyDrawingFile = "config.json"

var (
	ErrSettingsNotFound  = errors.New("settings file not found")
	ErrSettingsMalformed = errors.New("settings file is malformed")
	ErrUnknownField      = errors.New("unknown settings field")
)

type SettingsRepository interface {
	Path() string
	Load(ctx context.Context) (*models.SettingsRecord, error)
	Save(ctx context.Context, record *models.SettingsRecord) error
	Update(ctx context.Context, field models.SettingsField, value string) (before, after *models.SettingsRecord, err error)
	EnsureDefault(ctx context.Context) (bool, error)
	LegacyDrawing(ctx context.Context) (string, bool, error)
	RetireLegacyDrawing(ctx context.Context) error
}

type settingsFileRepository struct {
	path string
	mu   sync.Mutex
}

func NewSettingsRepository(path string) SettingsRepository {
	return &settingsFileRepository{path: filepath.Clean(path)}
}

func (r *settingsFileRepository) Path() string {
	return r.path
}

func (r *settingsFileRepository) Load(ctx context.Context) (*models.SettingsRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return readRecord(r.path)
}

func (r *settingsFileRepository) Save(ctx context.Context, record *models.SettingsRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if record == nil {
		return errors.New("settings record is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeRecord(r.path, record)
}

// Update re-reads the current record, changes one field and writes the result
// back. A missing file starts from the empty record; a malformed one is left
// untouched.
func (r *settingsFileRepository) Update(ctx context.Context, field models.SettingsField, value string) (*models.SettingsRecord, *models.SettingsRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if !field.Valid() {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := readRecord(r.path)
	switch {
	case err == nil:
	case errors.Is(err, ErrSettingsNotFound):
		current = &models.SettingsRecord{}
	default:
		return nil, nil, err
	}

	before := *current
	after, err := current.With(field, value)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if err := writeRecord(r.path, &after); err != nil {
		return nil, nil, err
	}
	return &before, &after, nil
}

// EnsureDefault writes the packaged default record when no settings file
// exists yet. It reports whether a file was created.
func (r *settingsFileRepository) EnsureDefault(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat settings %s: %w", r.path, err)
	}

	var record models.SettingsRecord
	if err := json.Unmarshal(defaultSettings, &record); err != nil {
		return false, fmt.Errorf("packaged default settings: %w", err)
	}
	if err := writeRecord(r.path, &record); err != nil {
		return false, err
	}
	return true, nil
}

// LegacyDrawing returns the drawing_name stored in config.json next to the
// settings file, if that file exists.
func (r *settingsFileRepository) LegacyDrawing(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	record, err := readRecord(r.legacyPath())
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return record.DrawingName, true, nil
}

func (r *settingsFileRepository) RetireLegacyDrawing(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	legacy := r.legacyPath()
	if err := os.Rename(legacy, legacy+".migrated"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("retire %s: %w", legacy, err)
	}
	return nil
}

func (r *settingsFileRepository) legacyPath() string {
	return filepath.Join(filepath.Dir(r.path), LegacyDrawingFile)
}

func readRecord(path string) (*models.SettingsRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
		}
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	// Files edited on Windows sometimes carry a UTF-8 BOM.
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var record models.SettingsRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSettingsMalformed, path, err)
	}
	return &record, nil
}

func writeRecord(path string, record *models.SettingsRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}

// writeFileAtomic replaces path with data through a temp file in the same
// directory, so readers only ever see the old or the new content.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
