package catalog

import "context"

// Prompt kinds
const (
	PromptDeleteRecipe       = "delete-recipe"
	PromptClearFile          = "clear-file"
	PromptIngredientIsTarget = "ingredient-is-target"
	PromptSaveOnClose        = "save-on-close"
)

// Prompt is a yes/no question put to the user before a destructive action.
type Prompt struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Confirmer asks the user to confirm a prompt. A false answer declines the
// action; an error means the prompt was cancelled.
type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, p Prompt) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, p Prompt) (bool, error) {
	return f(ctx, p)
}

var (
	// Deny declines every prompt.
	Deny = ConfirmFunc(func(context.Context, Prompt) (bool, error) { return false, nil })
	// Accept confirms every prompt.
	Accept = ConfirmFunc(func(context.Context, Prompt) (bool, error) { return true, nil })
)

type confirmerKey struct{}

// WithConfirmer attaches c to ctx.
func WithConfirmer(ctx context.Context, c Confirmer) context.Context {
	return context.WithValue(ctx, confirmerKey{}, c)
}

// ConfirmerFrom returns the context's confirmer, or Deny.
func ConfirmerFrom(ctx context.Context) Confirmer {
	if c, ok := ctx.Value(confirmerKey{}).(Confirmer); ok && c != nil {
		return c
	}
	return Deny
}
