package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/abi-codec/coder"
)

func main() {
	var (
		dataHex     = flag.String("data", "", "Hex encoded input (0x prefix optional)")
		file        = flag.String("file", "", "File holding hex encoded input")
		sig         = flag.String("sig", "", "Function signature or type list to decode with")
		params      = flag.Bool("params", true, "Decode a type list as function parameters rather than a single tuple")
		configPath  = flag.String("config", "", "TOML file with decoder limits")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Debug logging and Go value dumps")
	)
	flag.Parse()

	if *dataHex == "" && *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: abidump -data <hex> [-sig 'f(uint256,bytes)'] [-config limits.toml]")
		fmt.Fprintln(os.Stderr, "       abidump -file <path> -sig '(address,uint256[])' [-params=false]")
		fmt.Fprintln(os.Stderr, "       abidump -data <hex> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		coder.SetLogger(logger)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	input, err := readInput(*dataHex, *file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	req := decodeRequest{sig: *sig, params: *params, verbose: *verbose, cfg: cfg}

	if *interactive {
		if err := runInteractive(input, req); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(input, req); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(input []byte, req decodeRequest) error {
	st := stdoutStyles()
	cd := splitInput(input)

	fmt.Printf("%s %d bytes, %d words\n\n", st.title.Render("abidump"), len(input), len(cd.args)/32)
	fmt.Print(formatDump(cd, annotate(cd.args), st))

	if req.sig == "" {
		return nil
	}

	args, err := decodeInput(cd, req)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Printf("\n%s\n", st.title.Render(req.sig))
	fmt.Print(formatArgs(args, req.verbose, st))
	return nil
}
