package main

import (
	"flag"
	"fmt"
	"os"

	"skin-forge/internal/skindoc"
)

func main() {
	out := flag.String("out", "skin.yaml", "Path to write the document")
	name := flag.String("name", "", "Skin name (default: Basic Outfit)")
	force := flag.Bool("force", false, "Overwrite an existing file")

	flag.Parse()

	if !*force {
		if _, err := os.Stat(*out); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %s already exists (use -force to overwrite)\n", *out)
			os.Exit(1)
		}
	}

	doc := skindoc.Default()
	if *name != "" {
		doc.Name = *name
	}

	if err := doc.Save(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing document: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%s)\n", *out, doc.Name)
}
