package main

import (
	"fmt"
	"os"

	"humane/locate"
	"humane/snippet"
	"humane/source"

	_ "humane/tomlerr"
)

const brokenManifest = `[package]
name = "demo"
version = 0.1.0

[render]
context = 2
`

func main() {
	doc := source.New("humane.toml", []byte(brokenManifest))

	adapter, ok := locate.ForPath("humane.toml")
	if !ok {
		fmt.Println("no toml adapter registered")
		os.Exit(1)
	}
	decodeErr := adapter.Validate(doc)
	if decodeErr == nil {
		fmt.Println("expected the manifest to be broken")
		os.Exit(1)
	}
	pos, located := adapter.Position(decodeErr, doc)
	if !located {
		fmt.Printf("no position in %v\n", decodeErr)
		os.Exit(1)
	}
	fmt.Printf("located %s error at %d:%d\n\n", adapter.Name, pos.Line, pos.Column)

	dumpBlock(doc, pos, snippet.StyleClassic)
	dumpBlock(doc, pos, snippet.StyleNu)
}

func dumpBlock(doc *source.Document, pos locate.Position, style snippet.Style) {
	req := snippet.Request{
		Cause:   pos.Cause,
		Line:    pos.Line,
		Column:  pos.Column,
		Context: snippet.DefaultContext,
		Notes:   []string{"quote the version string", "bare 0.1.0 parses as a broken float"},
		Style:   style,
	}
	if err := snippet.Write(os.Stdout, doc, req); err != nil {
		fmt.Printf("render error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
