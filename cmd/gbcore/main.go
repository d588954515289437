// Command gbcore inspects a Game Boy ROM image and reports its cartridge
// header contents.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/richardwooding/lr35902/internal/cartridge"
	"github.com/richardwooding/lr35902/internal/rom"
)

// CLI is the top-level command structure.
type CLI struct {
	Info InfoCmd `cmd:"" help:"Display cartridge header information." default:"1"`
}

// InfoCmd prints a ROM's name, kind, and checksum validity.
type InfoCmd struct {
	ROM string `arg:"" type:"existingfile" help:"Path to ROM file."`
}

// Run reads the ROM at c.ROM, validates it, and prints header information.
func (c *InfoCmd) Run() error {
	data, err := os.ReadFile(c.ROM)
	if err != nil {
		return fmt.Errorf("failed to read ROM: %w", err)
	}

	r, err := rom.New(data)
	if err != nil {
		return fmt.Errorf("failed to load cartridge: %w", err)
	}

	fmt.Printf("Name:                   %s\n", r.Name())
	fmt.Printf("Kind:                   %s (0x%02X)\n", r.Kind(), byte(r.Kind()))
	fmt.Printf("Size:                   %d KiB\n", r.Size()/1024)
	fmt.Printf("Valid logo:             %v\n", r.HasValidLogo())
	fmt.Printf("Valid header checksum:  %v\n", r.HasValidHeaderChecksum())
	fmt.Printf("Valid global checksum:  %v\n", r.HasValidGlobalChecksum())

	cart, err := cartridge.New(r)
	if err != nil {
		fmt.Printf("Has battery:            unknown (%v)\n", err)
		return nil
	}
	fmt.Printf("Has battery:            %v\n", cart.HasBattery())

	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("gbcore"),
		kong.Description("Game Boy cartridge and instruction-decoder core."),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
