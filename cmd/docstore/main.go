// Package main is the entry point for the docstore command line client.
package main

import "github.com/unifiedui/docstore-service/internal/cli"

func main() {
	cli.Execute()
}
