package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nullobject/rygar/internal/debug"
	"github.com/nullobject/rygar/internal/emulator"
	"github.com/nullobject/rygar/internal/host"
	"github.com/nullobject/rygar/internal/romimage"
)

func main() {
	programROM := flag.String("program-rom", "", "Path to the 48KiB program ROM")
	bankedROM := flag.String("banked-rom", "", "Path to the 32KiB banked ROM")
	charROM := flag.String("char-rom", "", "Path to the character tile ROM")
	fgROM := flag.String("fg-rom", "", "Path to the foreground tile ROM")
	bgROM := flag.String("bg-rom", "", "Path to the background tile ROM")
	spriteROM := flag.String("sprite-rom", "", "Path to the sprite tile ROM")
	scale := flag.Int("scale", 3, "Display scale (1-6)")
	enableLog := flag.Bool("log", false, "Enable host logging")
	flag.Parse()

	roms, err := loadROMs(*programROM, *bankedROM, *charROM, *fgROM, *bgROM, *spriteROM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rygar: %v\n", err)
		os.Exit(1)
	}

	if *scale < 1 || *scale > 6 {
		fmt.Fprintln(os.Stderr, "rygar: scale must be between 1 and 6")
		os.Exit(1)
	}

	var logger *debug.Logger
	if *enableLog {
		logger = debug.NewLogger()
		logger.SetComponentEnabled(debug.ComponentHost, true)
		logger.SetComponentEnabled(debug.ComponentSystem, true)
	}
	if logger != nil {
		logger.LogSystem(debug.LogLevelInfo, "roms loaded", map[string]interface{}{
			"program": *programROM,
			"banked":  *bankedROM,
		})
	}

	emu := emulator.New(roms, logger)

	win, err := host.New(emu, *scale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rygar: %v\n", err)
		os.Exit(1)
	}
	defer win.Close()

	if err := win.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "rygar: %v\n", err)
		os.Exit(1)
	}
}

func loadROMs(programPath, bankedPath, charPath, fgPath, bgPath, spritePath string) (*romimage.Set, error) {
	for name, path := range map[string]string{
		"program-rom": programPath,
		"banked-rom":  bankedPath,
		"char-rom":    charPath,
		"fg-rom":      fgPath,
		"bg-rom":      bgPath,
		"sprite-rom":  spritePath,
	} {
		if path == "" {
			return nil, fmt.Errorf("missing -%s", name)
		}
	}

	program, err := os.ReadFile(programPath)
	if err != nil {
		return nil, fmt.Errorf("reading program ROM: %w", err)
	}
	banked, err := os.ReadFile(bankedPath)
	if err != nil {
		return nil, fmt.Errorf("reading banked ROM: %w", err)
	}
	char, err := os.ReadFile(charPath)
	if err != nil {
		return nil, fmt.Errorf("reading char ROM: %w", err)
	}
	fg, err := os.ReadFile(fgPath)
	if err != nil {
		return nil, fmt.Errorf("reading fg ROM: %w", err)
	}
	bg, err := os.ReadFile(bgPath)
	if err != nil {
		return nil, fmt.Errorf("reading bg ROM: %w", err)
	}
	sprite, err := os.ReadFile(spritePath)
	if err != nil {
		return nil, fmt.Errorf("reading sprite ROM: %w", err)
	}

	return &romimage.Set{
		ProgramROM: program,
		BankedROM:  banked,
		CharROM:    char,
		FgROM:      fg,
		BgROM:      bg,
		SpriteROM:  sprite,
	}, nil
}
