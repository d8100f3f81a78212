// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/ezrec/minibios/demo"
	"github.com/ezrec/minibios/emulator"
	"github.com/ezrec/minibios/internal"
	"github.com/ezrec/minibios/layout"
	"github.com/ezrec/minibios/swi"
)

func main() {
	var script string
	var program string
	var frames int
	var service string
	var defines bool
	var verbose bool

	flag.StringVar(&script, "l", "", ".star layout script to use")
	flag.StringVar(&program, "p", "", "Client program to run (band, vblank)")
	flag.IntVar(&frames, "n", 1, "Frames to run the vblank program for")
	flag.StringVar(&service, "x", "", "BIOS service to call, with the arguments as r0-r3")
	flag.BoolVar(&defines, "d", false, "Dump defines, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if len(service) == 0 && flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	lay := &layout.GBA
	if len(script) != 0 {
		inf, err := os.Open(script)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
		defer inf.Close()

		lay, err = layout.Load(script, inf, &layout.GBA)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
	}

	emu, err := emulator.NewEmulator(lay)
	if err != nil {
		log.Fatalf("%v: %v", lay.Name, err)
	}

	if defines {
		for name, value := range internal.IterSeq2Sorted(emu.Defines()) {
			fmt.Printf("%v=%v\n", name, value)
		}
		return
	}

	emu.Verbose = verbose
	emu.Debug.Output = os.Stdout

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch program {
	case "":
	case "band":
		err = demo.Mode3Band(ctx, emu)
	case "vblank":
		err = demo.VBlankFill(ctx, emu, frames)
	default:
		log.Fatalf("%v: unknown program", program)
	}
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	if len(service) != 0 {
		ordinal, err := swi.Parse(service)
		if err != nil {
			log.Fatal(err)
		}

		var args []uint32
		for _, arg := range flag.Args() {
			value, err := strconv.ParseUint(arg, 0, 32)
			if err != nil {
				log.Fatalf("%v: %v", service, err)
			}
			args = append(args, uint32(value))
		}

		err = emu.Swi(ordinal, args...)
		if err != nil {
			log.Fatalf("%v: %v", service, err)
		}
	}

	fmt.Print(emu.String())
	fmt.Printf("cycles: %v, frames: %v\n", emu.Cycles, emu.Frames())
}
