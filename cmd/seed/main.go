// Command seed prints a summary of the embedded dataset the server
// starts with. Useful as a smoke check after editing fixtures.
package main

import (
	"fmt"
	"log"

	"docuforge/internal/seed"
)

func main() {
	fixtures, err := seed.Load()
	if err != nil {
		log.Fatalf("Failed to load seed fixtures: %v", err)
	}

	fmt.Printf("projects:   %d\n", len(fixtures.Projects))
	for _, project := range fixtures.Projects {
		fmt.Printf("  %-28s %-8s %-14s docs=%d\n", project.Name, project.Status, project.Type, project.DocsCount)
	}

	fmt.Printf("documents:  %d\n", len(fixtures.Documents))
	for _, document := range fixtures.Documents {
		fmt.Printf("  %-36s %-9s %s\n", document.Title, document.Status, document.Version)
	}

	fmt.Printf("activities: %d\n", len(fixtures.Activities))
}
