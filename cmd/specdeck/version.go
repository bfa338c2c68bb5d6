package main

import (
	"fmt"

	"github.com/specdeck/specdeck/internal/ui"
	"github.com/specdeck/specdeck/internal/update"
)

func runVersion() {
	fmt.Printf("specdeck version %s\n", ui.Version)

	if ui.Version == "dev" {
		fmt.Println("Development build — update check skipped.")
		return
	}

	rel, err := update.Check(ui.Version)
	if err != nil {
		fmt.Printf("Update check failed: %v\n", err)
		return
	}

	if rel != nil {
		fmt.Printf("Update available: v%s. Run \"specdeck update\" to install.\n", rel.Version)
	} else {
		fmt.Println("You are up to date.")
	}
}

func runUpdate() error {
	rel, err := update.Apply(ui.Version)
	if err != nil {
		return err
	}
	fmt.Printf("Updated to v%s.\n", rel.Version)
	return nil
}
