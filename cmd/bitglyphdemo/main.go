// Command bitglyphdemo renders a line of text as a monochrome bitmap and
// prints it to the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/bitglyph/bitglyph"
	"github.com/bitglyph/bitglyph/text"
)

func main() {
	var (
		input    = flag.String("text", "hello, world", "text to render")
		size     = flag.Float64("size", 24, "pixel size")
		fontPath = flag.String("font", "", "TTF/OTF font file (default: Go Regular)")
		output   = flag.String("output", "", "optional PNG output file")
		harfbuzz = flag.Bool("harfbuzz", false, "use HarfBuzz (GPOS) kerning")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		bitglyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var (
		source *text.FontSource
		err    error
	)
	if *fontPath != "" {
		source, err = text.NewFontSourceFromFile(*fontPath)
	} else {
		source, err = text.NewFontSource(goregular.TTF)
	}
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	face, err := source.Face(*size)
	if err != nil {
		log.Fatalf("Failed to create face: %v", err)
	}
	defer func() {
		_ = face.Close()
	}()

	var opts []text.RendererOption
	if *harfbuzz {
		kerner, err := text.NewGoTextKerner(source, *size)
		if err != nil {
			log.Fatalf("Failed to create kerner: %v", err)
		}
		opts = append(opts, text.WithKerning(kerner))
	}

	renderer := text.NewRenderer(face, opts...)

	bm, err := renderer.Render(*input)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	fmt.Println(bm)

	if *output != "" {
		if err := bm.SavePNG(*output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Saved to %s (%dx%d)\n", *output, bm.Width(), bm.Height())
	}
}
