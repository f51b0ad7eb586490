//go:build tools

package tools

// Tool dependencies pinned in go.mod: swag regenerates docs/, goose applies
// the SQL migrations by hand.

import (
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
)
