package web

import "embed"

// StaticFS is the stylesheet served under /static/.
//
//go:embed static/*
var StaticFS embed.FS

// helpMarkdown is the source of the help panel under the catalog.
//
//go:embed content/help.md
var helpMarkdown string
