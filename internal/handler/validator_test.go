package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tagStruct struct {
	Tag  string `json:"tag" validate:"required,tagname"`
	Type string `json:"type" validate:"omitempty,oneof=text items tags"`
}

func TestValidator_TagName(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		tag     string
		wantErr bool
	}{
		{"plain", "metal", false},
		{"underscore and digits", "ore_2", false},
		{"unicode letters", "Eisenerz", false},

		{"empty fails required", "", true},
		{"space", "iron ore", true},
		{"dot", "ore.iron", true},
		{"hyphen", "ore-iron", true},
		{"slash", "ore/iron", true},
		{"percent", "50%", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tagStruct{Tag: tt.tag})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_RecipeType(t *testing.T) {
	v := GetValidator()

	for _, typ := range []string{"", "text", "items", "tags"} {
		assert.NoError(t, v.ValidateStruct(tagStruct{Tag: "ok", Type: typ}), typ)
	}
	assert.Error(t, v.ValidateStruct(tagStruct{Tag: "ok", Type: "potion"}))
}

func TestFormatValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("non validation error", func(t *testing.T) {
		errs := FormatValidationError(errors.New("boom"))
		assert.Equal(t, "Invalid request format", errs["error"])
	})

	t.Run("field messages use json names", func(t *testing.T) {
		err := GetValidator().ValidateStruct(tagStruct{Tag: "bad tag", Type: "potion"})
		require.Error(t, err)

		errs := FormatValidationError(err)
		assert.Equal(t, "Tag names may not contain special symbols", errs["tag"])
		assert.Equal(t, "Must be one of: text items tags", errs["type"])
	})

	t.Run("required", func(t *testing.T) {
		err := GetValidator().ValidateStruct(tagStruct{})
		require.Error(t, err)
		assert.Equal(t, "This field is required", FormatValidationError(err)["tag"])
	})

	t.Run("camel case json name", func(t *testing.T) {
		type req struct {
			RecipeID string `json:"recipeId" validate:"required"`
		}
		err := GetValidator().ValidateStruct(req{})
		require.Error(t, err)
		assert.Contains(t, FormatValidationError(err), "recipeId")
	})
}
