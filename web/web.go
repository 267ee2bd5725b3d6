// Package web embeds the site templates, marketing copy and stylesheet so the
// server ships as a single binary.
package web

import "embed"

// Files holds templates/*.html, content/*.md and static/*.
//
//go:embed templates/*.html content/*.md static/*
var Files embed.FS
