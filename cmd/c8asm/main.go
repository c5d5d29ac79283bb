// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/chip8asm/asm"
	"github.com/ezrec/chip8asm/config"
	"github.com/ezrec/chip8asm/isa"
)

func main() {
	var configFile string
	var reserved string
	var listing bool
	var verbose bool

	flag.StringVar(&configFile, "c", "", ".star configuration file")
	flag.StringVar(&reserved, "r", "", "Reserved low memory; addresses below are rejected")
	flag.BoolVar(&listing, "l", false, "Print a listing of the program")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] infile outfile\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	infile := flag.Arg(0)
	outfile := flag.Arg(1)

	cfg := &config.Config{}
	if len(configFile) != 0 {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
	}

	// Flags override the configuration file.
	if len(reserved) != 0 {
		value, err := isa.ParseNumber(reserved, 12)
		if err != nil {
			log.Fatalf("-r: %v", err)
		}
		cfg.Reserved = value
	}
	if verbose {
		cfg.Verbose = true
	}

	inf, err := os.Open(infile)
	if err != nil {
		log.Fatalf("%v: %v", infile, err)
	}
	defer inf.Close()

	assembler := &asm.Assembler{
		Verbose:  cfg.Verbose,
		Reserved: cfg.Reserved,
	}
	prog, err := assembler.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", infile, err)
	}

	if listing {
		for addr, code := range prog.Codes() {
			fmt.Printf("%#04x: %v  %v\n", addr, code, prog.Debug(addr).Line)
		}
	}

	err = os.WriteFile(outfile, prog.Binary(), 0o644)
	if err != nil {
		log.Fatalf("%v: %v", outfile, err)
	}
}
