//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds and runs the testbed with ace.toml.
func (Run) Demo() error {
	mg.Deps(Build.Demo)
	fmt.Println("Run demo...")
	if _, err := executeCmd(demoBinary, withArgs("-config", "ace.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
