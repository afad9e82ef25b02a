//go:build tools
// +build tools

// Package tools documents development tool dependencies of the locker panel.
// They are run with `go run pkg@version` or installed with `go install` and are
// not tracked in go.mod.
package tools

// Development tools:
//
// mockgen - regenerates internal/mocks (go generate ./internal/mocks)
//   Run: go run go.uber.org/mock/mockgen@v0.6.0
//   Docs: https://github.com/uber-go/mock
//
// Air - live reload for cmd/locker-panel; pair with DEV=true so templates and
// static files are read from frontend/ on every request
//   Install: go install github.com/air-verse/air@v1.63.0
//   Docs: https://github.com/air-verse/air
