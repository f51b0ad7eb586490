package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/logger"
)

// Loaded is a decoded recipe file.
type Loaded struct {
	Recipes  domain.RecipeCollection
	Info     FileInfo
	Warnings []Warning
}

// Persister saves and loads recipe collections by logical file name.
type Persister struct {
	files FileStore
	codec *Codec
}

// NewPersister creates a persister over files. A nil codec validates against
// the built-in recipe schema.
func NewPersister(files FileStore, codec *Codec) *Persister {
	if codec == nil {
		codec = NewCodec(nil)
	}
	return &Persister{files: files, codec: codec}
}

// Codec returns the persister's codec.
func (p *Persister) Codec() *Codec {
	return p.codec
}

// Load reads folder/file, where file is the unsanitized name.
func (p *Persister) Load(ctx context.Context, folder, file string, env FileInfo) (*Loaded, error) {
	log := logger.FromContext(ctx)
	name := SanitizeFileName(file)

	data, err := p.files.Read(ctx, folder, name)
	if err != nil {
		return nil, err
	}
	recipes, info, warnings, err := p.codec.Decode(data, env)
	if err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", folder, name, err)
	}
	for _, w := range warnings {
		log.Warn(LogMsgDecodeWarning, "folder", folder, "file", name, "code", w.Code, "message", w.Message)
	}
	log.Debug(LogMsgDocumentRead, "folder", folder, "file", name, "recipes", len(recipes))
	return &Loaded{Recipes: recipes, Info: info, Warnings: warnings}, nil
}

// Save encodes and writes the collection, returning the written path.
func (p *Persister) Save(ctx context.Context, folder, file string, recipes domain.RecipeCollection, info FileInfo) (string, error) {
	data, err := p.codec.Encode(recipes, info)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}
	return p.WriteDocument(ctx, folder, file, data)
}

// WriteDocument writes an already encoded document.
func (p *Persister) WriteDocument(ctx context.Context, folder, file string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	if folder == "" || file == "" {
		return "", fmt.Errorf("%w: folder %q file %q", domain.ErrInvalidInput, folder, file)
	}
	name := SanitizeFileName(file)

	if err := p.files.EnsureFolder(ctx, folder); err != nil {
		log.Error(LogMsgPersistenceFailed, "folder", folder, "file", name, "error", err)
		return "", persistenceError(err)
	}
	written, err := p.files.Write(ctx, folder, name, data)
	if err != nil {
		log.Error(LogMsgPersistenceFailed, "folder", folder, "file", name, "error", err)
		return "", persistenceError(err)
	}
	if written == "" {
		log.Error(LogMsgPersistenceFailed, "folder", folder, "file", name, "error", "empty path")
		return "", fmt.Errorf("%w: store returned no path for %s", domain.ErrPersistenceFailure, name)
	}

	log.Info(LogMsgDocumentWritten, "path", written, "bytes", len(data))
	return written, nil
}

// List returns the file names in folder.
func (p *Persister) List(ctx context.Context, folder string) ([]string, error) {
	return p.files.List(ctx, folder)
}

func persistenceError(err error) error {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrPersistenceFailure) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
}
