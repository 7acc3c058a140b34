// Package templates holds the templ components shared by every page.
// Edit the .templ files and run `go tool templ generate`; the *_templ.go
// files are generated.
package templates
