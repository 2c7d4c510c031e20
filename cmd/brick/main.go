package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/aferranti/go-brick/brick"
	"github.com/aferranti/go-brick/brick/backend"
	"github.com/aferranti/go-brick/brick/backend/headless"
	"github.com/aferranti/go-brick/brick/backend/terminal"
)

func main() {
	app := cli.NewApp()
	app.Name = "brick"
	app.Description = "A DMG Game Boy emulator"
	app.Usage = "brick [options] <ROM file>"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a display",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "progress",
			Usage: "Log progress every N frames in headless mode (0 = off)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "battery",
			Usage: "Path to the battery save file (loaded on start, written on exit)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() == 0 {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
		romPath = c.Args().Get(0)
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}

	emu, err := brick.New(rom)
	if err != nil {
		return fmt.Errorf("loading cartridge: %w", err)
	}

	batteryPath := c.String("battery")
	if batteryPath != "" {
		if data, err := os.ReadFile(batteryPath); err == nil {
			if err := emu.LoadBatteryRAM(data); err != nil {
				return fmt.Errorf("loading battery RAM: %w", err)
			}
			slog.Info("Battery RAM loaded", "path", batteryPath, "bytes", len(data))
		}
	}

	var be backend.Backend
	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames with a positive value")
		}
		h := headless.New(frames)
		h.Progress = c.Int("progress")
		be = h
	} else {
		be = terminal.New()
	}

	runErr := be.Run(emu)

	if batteryPath != "" {
		if data := emu.BatteryRAM(); data != nil {
			if err := os.WriteFile(batteryPath, data, 0o644); err != nil {
				slog.Error("Failed to write battery RAM", "path", batteryPath, "error", err)
			} else {
				slog.Info("Battery RAM saved", "path", batteryPath, "bytes", len(data))
			}
		}
	}

	return runErr
}
