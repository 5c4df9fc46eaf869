package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aspirantsclub/core/core/shell"
	"github.com/aspirantsclub/core/deps"
)

func main() {
	root := &cobra.Command{
		Use:   "club",
		Short: "Aspirants Club terminal client.",
		Run: func(cmd *cobra.Command, args []string) {
			deps.Bootstrap()
			shell.RunShell()
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the client version.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("aspirants-club client 0.1")
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
