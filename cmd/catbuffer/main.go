package main

import (
	"github.com/ssargent/catbuffer/cmd/catbuffer/cmd"
	"github.com/ssargent/catbuffer/pkg/di"
)

func main() {
	// Initialize dependency injection container
	container := di.NewContainer()

	// Inject dependencies into cmd package
	cmd.SetContainer(container)

	cmd.Execute()
}
