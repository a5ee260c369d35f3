package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	cbor "github.com/glvi/cbor/runtime"
)

// CLI defines the cbordump command-line interface.
//
// We deliberately keep it minimal:
//   - input: a file, or stdin when omitted
//   - format: diagnostic notation (default) or JSON
//   - sequence: decode a CBOR sequence (RFC 8742) instead of one item
type CLI struct {
	Input    string `short:"i" help:"Input file (defaults to stdin)"`
	Format   string `short:"f" help:"Output format: diag or json" default:"diag" enum:"diag,json"`
	Sequence bool   `short:"s" help:"Decode a CBOR sequence (RFC 8742) instead of a single item"`
	Validate bool   `help:"Only validate well-formedness; print nothing on success"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cbordump"),
		kong.Description("Decode CBOR from a file or stdin to diagnostic notation or JSON."),
	)

	if err := run(&cli); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	b, err := readInput(cli.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if cli.Validate {
		return cbor.ValidateWellFormed(b)
	}

	if cli.Sequence {
		values, err := cbor.DecodeSequence(b)
		if err != nil {
			return err
		}
		for _, v := range values {
			printValue(cli.Format, v)
		}
		return nil
	}

	v, err := cbor.Decode(b)
	if err != nil {
		return err
	}
	printValue(cli.Format, v)
	return nil
}

func printValue(format string, v cbor.CBORValue) {
	switch format {
	case "json":
		fmt.Println(cbor.ToJSON(v))
	default:
		fmt.Println(cbor.Diag(v))
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
