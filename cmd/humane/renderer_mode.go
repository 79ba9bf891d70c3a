package main

import (
	"fmt"
	"strings"

	"humane/snippet"
)

func readRendererMode(value string) (snippet.Style, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "default":
		return snippet.StyleClassic, nil
	case "nu", "nu-like":
		return snippet.StyleNu, nil
	default:
		return snippet.StyleClassic, fmt.Errorf("invalid renderer %q (expected default|nu-like)", value)
	}
}
