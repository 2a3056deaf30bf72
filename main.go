package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"

	"arrocha/pkg/engine/rng"
	"arrocha/pkg/game/devtools"
	"arrocha/pkg/game/generator"
	"arrocha/pkg/game/level"
	"arrocha/pkg/game/renderer"
	ebitenrenderer "arrocha/pkg/game/renderer/ebiten"
	"arrocha/pkg/game/renderer/tui"
)

// tr looks up a message key. It is a variable so vet does not treat the
// keys as format strings.
var tr = gotext.Get

func initGettext(lang string) {
	gotext.Configure("locales", lang, "default")
}

// buildLevel generates the level the flags ask for, or the dev map.
func buildLevel(cols, rows int, seed int64, devMap bool, logger *log.Logger) (*level.Level, error) {
	if devMap {
		return devtools.DevMap(), nil
	}

	cfg := generator.DefaultConfig()
	cfg.Logger = logger
	gen := &generator.RoomMazeGenerator{Config: cfg}
	return level.Generate(gen, cols, rows, seed)
}

func main() {
	cols := flag.Int("cols", 130, "level width in tiles")
	rows := flag.Int("rows", 32, "level height in tiles")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	out := flag.String("out", "map.ppm", "dump file (empty to skip)")
	format := flag.String("format", "", "dump format: ppm, png or txt (default from -out extension)")
	dump := flag.Bool("dump", false, "also write a full text dump next to -out")
	html := flag.Bool("html", false, "also write a timestamped HTML snapshot")
	preview := flag.Bool("preview", false, "print a coloured preview to the terminal")
	view := flag.Bool("view", false, "open the level in a window")
	devMap := flag.Bool("devmap", false, "use the hand-built developer map instead of generating")
	lang := flag.String("locale", "en_GB", "message locale")
	verbose := flag.Bool("v", false, "log generation phases")
	flag.Parse()

	initGettext(*lang)

	genLog := log.New(io.Discard, "", 0)
	if *verbose {
		genLog = log.New(os.Stderr, "generator: ", log.LstdFlags)
	}

	if *seed == 0 {
		_, *seed = rng.NewFromEntropy()
	}

	l, err := buildLevel(*cols, *rows, *seed, *devMap, genLog)
	if err != nil {
		log.Fatal(tr("GENERATE_FAILED", err))
	}
	log.Print(tr("GENERATED", l.Cols, l.Rows, l.Seed, len(l.Loops), l.MoverCount()))

	if err := l.Validate(); err != nil {
		log.Fatal(tr("VALIDATE_FAILED", err))
	}

	if *out != "" {
		name := *format
		if name == "" {
			name = filepath.Ext(*out)
		}
		f, err := devtools.ParseFormat(name)
		if err != nil {
			log.Fatal(tr("BAD_FORMAT", err))
		}
		path, err := devtools.DumpImageToFile(l.Tiles, *out, f)
		if err != nil {
			log.Fatal(tr("WRITE_FAILED", err))
		}
		log.Print(tr("WROTE_FILE", path))

		if *dump {
			dumpPath := *out + ".dump.txt"
			path, err := devtools.DumpLevelToFile(l, dumpPath)
			if err != nil {
				log.Fatal(tr("WRITE_FAILED", err))
			}
			log.Print(tr("WROTE_FILE", path))
		}
	}

	if *html {
		path, err := devtools.SaveScreenshotHTML(l)
		if err != nil {
			log.Fatal(tr("WRITE_FAILED", err))
		}
		log.Print(tr("WROTE_FILE", path))
	}

	if *preview {
		renderer.SetRenderer(tui.New())
		if err := renderer.Render(l); err != nil {
			log.Fatal(tr("RENDER_FAILED", err))
		}
	}

	if *view {
		renderer.SetRenderer(ebitenrenderer.New(1600, 900))
		if err := renderer.Render(l); err != nil {
			log.Fatal(tr("RENDER_FAILED", err))
		}
	}
}
