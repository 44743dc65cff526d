// Package synthesis turns free-form French text produced by an AI
// assistant into structured workout, recipe, shopping and nutrition
// data. Every exported function is total: it never returns an error
// and always degrades to a generic, well-typed default when no
// heuristic matches.
package synthesis

// matcher is one extraction strategy in a cascade. It returns nil (or
// an empty slice) when it has nothing confident to contribute.
type matcher[T any] func(text string) []T

// tryInOrder runs matchers in priority order and returns the results
// of the first one that yields anything. Callers supply the final
// generic-default rung themselves.
func tryInOrder[T any](text string, matchers ...matcher[T]) []T {
	for _, m := range matchers {
		if out := m(text); len(out) > 0 {
			return out
		}
	}
	return nil
}

func truncate[T any](items []T, max int) []T {
	if len(items) > max {
		return items[:max]
	}
	return items
}
