// Package storage reads and writes recipe files.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/validation"
)

// FileInfo records where a recipe file was written.
type FileInfo struct {
	System string `json:"system"`
	World  string `json:"world"`
}

func (f FileInfo) IsZero() bool {
	return f.System == "" && f.World == ""
}

// Warning is a non-fatal decode finding the caller may surface to users.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Codec converts between recipe collections and file documents.
type Codec struct {
	validator validation.SchemaValidator
}

// NewCodec creates a codec validating against the built-in recipe schema.
func NewCodec(v validation.SchemaValidator) *Codec {
	if v == nil {
		v = validation.NewSchemaValidator()
	}
	return &Codec{validator: v}
}

// Decode parses a recipe file. The file's own info is returned, or env when the
// file carries none. Recipes come back with edit mode off and visible.
func (c *Codec) Decode(data []byte, env FileInfo) (domain.RecipeCollection, FileInfo, []Warning, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domain.RecipeCollection{}, env, []Warning{{
			Code:    WarningEmptyFile,
			Message: "file is empty",
		}}, nil
	}

	if err := c.validator.ValidateBytes(trimmed, validation.RecipesSchema); err != nil {
		return nil, FileInfo{}, nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, FileInfo{}, nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	info, warnings, err := takeFileInfo(fields, env)
	if err != nil {
		return nil, FileInfo{}, nil, err
	}

	recipes := make(domain.RecipeCollection, len(fields))
	for id, raw := range fields {
		var r domain.Recipe
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, FileInfo{}, nil, fmt.Errorf("%w: recipe %s: %v", domain.ErrValidation, id, err)
		}
		r.ID = id
		r.EditMode = false
		r.IsVisible = true
		recipes[id] = &r
	}
	return recipes, info, warnings, nil
}

// takeFileInfo removes the header keys from fields and compares the header to env.
func takeFileInfo(fields map[string]json.RawMessage, env FileInfo) (FileInfo, []Warning, error) {
	var info FileInfo
	if raw, ok := fields[KeyFileInfo]; ok {
		if err := json.Unmarshal(raw, &info); err != nil {
			return FileInfo{}, nil, fmt.Errorf("%w: fileInfo: %v", domain.ErrValidation, err)
		}
		delete(fields, KeyFileInfo)
	}
	// Older files put the header fields at the top level.
	for key, dst := range map[string]*string{keyLegacySystem: &info.System, keyLegacyWorld: &info.World} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && *dst == "" {
			*dst = s
		}
		delete(fields, key)
	}

	var warnings []Warning
	if info.IsZero() {
		warnings = append(warnings, Warning{
			Code:    WarningMissingFileInfo,
			Message: "file has no system or world information",
		})
		return env, warnings, nil
	}
	if env.System != "" && info.System != "" && !strings.EqualFold(info.System, env.System) {
		warnings = append(warnings, Warning{
			Code:    WarningSystemMismatch,
			Message: fmt.Sprintf("file was made for system %q, current system is %q", info.System, env.System),
		})
	}
	if env.World != "" && info.World != "" && info.World != env.World {
		warnings = append(warnings, Warning{
			Code:    WarningWorldMismatch,
			Message: fmt.Sprintf("file was made in world %q, current world is %q", info.World, env.World),
		})
	}
	return info, warnings, nil
}

// Encode writes the collection as one document with fileInfo first and
// recipes in id order.
func (c *Codec) Encode(recipes domain.RecipeCollection, info FileInfo) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteString(`{"` + KeyFileInfo + `":`)
	header, err := json.Marshal(info)
	if err != nil {
		return nil, err
	}
	compact.Write(header)

	for _, id := range recipes.IDs() {
		r := recipes[id]
		if r == nil {
			continue
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		body, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("encode recipe %s: %w", id, err)
		}
		compact.WriteByte(',')
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(body)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", encodeIndent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
