// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gemmatrix/internal/adapters/config"
	_ "go.trai.ch/gemmatrix/internal/adapters/hasher"
	_ "go.trai.ch/gemmatrix/internal/adapters/logger"
	_ "go.trai.ch/gemmatrix/internal/adapters/render"
	_ "go.trai.ch/gemmatrix/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/gemmatrix/internal/app"
	_ "go.trai.ch/gemmatrix/internal/engine/matrix"
)
