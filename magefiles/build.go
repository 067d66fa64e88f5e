//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

var demoBinary = filepath.Join("bin", "ace")

// Tidies the module and builds the testbed binary into bin/.
func (Build) Demo() error {
	mg.Deps(goTidy)
	if _, err := executeCmd("go", withArgs("build", "-o", demoBinary, "."), withEnv("CGO_ENABLED=1"), withStream()); err != nil {
		return err
	}
	return nil
}
