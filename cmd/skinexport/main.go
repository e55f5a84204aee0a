package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"skin-forge/internal/compose"
	"skin-forge/internal/export"
	"skin-forge/internal/preview"
	"skin-forge/internal/session"
	"skin-forge/internal/skindoc"
)

const appName = "skin_forge"

func main() {
	// CLI flags
	skinFile := flag.String("skin", "", "Path to skin document YAML (default: last session)")
	outDir := flag.String("out", ".", "Output directory for the archive")
	name := flag.String("name", "", "Override the skin name")
	preset := flag.String("preset", "", "Preview preset: Standing, Loadout, or Knocked")
	spritesOnly := flag.Bool("sprites-only", false, "Archive the sprites without config, manifest, or preview")
	noSession := flag.Bool("no-session", false, "Do not read or update the saved session")

	flag.Parse()

	var store *session.Store
	if !*noSession {
		var err error
		store, err = session.Open(appName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: session store: %v\n", err)
		}
	}

	// Load document: explicit file wins, then the saved session, then defaults.
	var doc skindoc.Document
	if *skinFile != "" {
		var err error
		doc, err = skindoc.Load(*skinFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading skin document: %v\n", err)
			os.Exit(1)
		}
	} else {
		var err error
		doc, err = store.LoadLast()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
	}

	// Flag overrides
	if *name != "" {
		doc.Name = *name
	}
	if *preset != "" {
		if _, ok := preview.Presets()[*preset]; !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown preset %q (have %s)\n",
				*preset, strings.Join(preview.PresetNames, ", "))
			os.Exit(1)
		}
		doc.Preset = *preset
	}

	fmt.Printf("Skin: %s (%s mode, preset %s)\n", doc.Name, doc.Mode(), doc.Preset)

	start := time.Now()

	bundle, err := compose.Bundle(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building export: %v\n", err)
		os.Exit(1)
	}

	suffix := ""
	if *spritesOnly {
		bundle = bundle.SpritesOnly()
		suffix = "-sprites"
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	archivePath := filepath.Join(*outDir, bundle.Ident+suffix+".zip")
	f, err := os.Create(archivePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating archive: %v\n", err)
		os.Exit(1)
	}
	if err := bundle.Write(f); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error writing archive: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing archive: %v\n", err)
		os.Exit(1)
	}

	if err := store.SaveLast(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: session save: %v\n", err)
	}

	fmt.Printf("Sprites: %d\n", len(bundle.Sprites))
	for _, part := range []string{export.PartBase, export.PartHands, export.PartFeet, export.PartBackpack, export.PartLoot, export.PartBorder, export.PartInner, export.PartFront} {
		if file := bundle.Filenames[part]; file != "" && bundle.Sprites[part] != "" {
			fmt.Printf("  %-8s %s\n", part, export.EnsureExtension(file, "svg"))
		}
	}
	fmt.Printf("Archive: %s (%.2fs)\n", archivePath, time.Since(start).Seconds())
}
