package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"skin-forge/internal/compose"
	"skin-forge/internal/preview"
	"skin-forge/internal/skindoc"
)

func main() {
	skinFile := flag.String("skin", "", "Path to skin document YAML (default: stock document)")
	out := flag.String("out", "preview.html", "Output HTML file")
	preset := flag.String("preset", "", "Preview preset (default: document's preset)")
	listPresets := flag.Bool("list", false, "List presets and exit")

	flag.Parse()

	if *listPresets {
		presets := preview.Presets()
		for _, name := range preview.PresetNames {
			fmt.Printf("%-10s %s\n", name, presets[name].Description)
		}
		return
	}

	doc := skindoc.Default()
	if *skinFile != "" {
		var err error
		doc, err = skindoc.Load(*skinFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading skin document: %v\n", err)
			os.Exit(1)
		}
	}
	if *preset != "" {
		if _, ok := preview.Presets()[*preset]; !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown preset %q (have %s)\n",
				*preset, strings.Join(preview.PresetNames, ", "))
			os.Exit(1)
		}
		doc.Preset = *preset
	}

	sprites, overlay, err := compose.Sprites(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building sprites: %v\n", err)
		os.Exit(1)
	}
	page := compose.PreviewPage(doc, sprites, overlay)

	if err := os.WriteFile(*out, []byte(page), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing preview: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Preview: %s (%s, preset %s)\n", *out, doc.Name, doc.Preset)
}
