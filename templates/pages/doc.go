// Package pages holds the templ components rendered by the application.
package pages

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.943 generate
