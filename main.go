/*
Ace testbed: opens a window and renders the demo scene from ./assets.
*/
package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/ace/engine"
	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/testbed"
)

func main() {
	configPath := flag.String("config", "ace.toml", "path to the application config")
	flag.Parse()

	config, err := engine.LoadApplicationConfig(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			core.LogFatal("failed to load config", "path", *configPath, "err", err)
		}
		core.LogWarn("config not found, using defaults", "path", *configPath)
		config = engine.DefaultApplicationConfig()
	}

	tb := testbed.NewTestGame(config)

	e, err := engine.New(tb.Game)
	if err != nil {
		core.LogFatal("failed to create engine", "err", err)
	}

	if err := e.Initialize(); err != nil {
		_ = e.Shutdown()
		core.LogFatal("failed to initialize engine", "err", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// the loop owns the GL context, so signals only ask it to stop
	go func() {
		<-sigCh
		e.RequestQuit()
	}()

	// run engine
	if err := e.Run(); err != nil {
		core.LogFatal("engine stopped with an error", "err", err)
	}
}
