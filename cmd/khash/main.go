// Command khash computes SHA3, cSHAKE256, and KMACXOF256 digests.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	keccaktool "github.com/sprocketlabs/keccaktool"
	"github.com/sprocketlabs/keccaktool/internal/cliutil"
)

func main() {
	fs := flag.NewFlagSet("khash", flag.ExitOnError)
	op := fs.String("op", "SHA3", "mode of operation: SHA3, cSHAKE256, or KMACXOF256")
	inputFile := fs.String("f", "", "input file (reads stdin if omitted)")
	keyFile := fs.String("k", "", "key file (required for KMACXOF256)")
	custom := fs.String("cs", "", "customization string (cSHAKE256 only)")
	bitLen := fs.Int("l", 512, "output length in bits")
	outFile := fs.String("w", "", "optional path to write raw output bytes")
	fs.Parse(os.Args[1:])

	in, inputSource, err := readInput(*inputFile)
	if err != nil {
		fatal("%v", err)
	}

	var out []byte
	switch *op {
	case "SHA3":
		out, err = keccaktool.SHA3(in, *bitLen)
	case "cSHAKE256":
		out, err = keccaktool.CSHAKE256(in, *bitLen, "", *custom)
	case "KMACXOF256":
		if *keyFile == "" {
			fatal("KMACXOF256 mode requires a key file (-k)")
		}
		var key []byte
		key, err = cliutil.ReadFile(*keyFile)
		if err != nil {
			fatal("%v", err)
		}
		out, err = keccaktool.KMACXOF256(key, in, *bitLen, "")
	default:
		fatal("unrecognized mode of operation: %s (want SHA3, cSHAKE256, or KMACXOF256)", *op)
	}
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("%s %d bits (%s):\n%s\n", *op, *bitLen, inputSource, hex.EncodeToString(out))

	if *outFile != "" {
		if err := cliutil.WriteFile(*outFile, out); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Output successfully written to %s\n", *outFile)
	}
}

func readInput(path string) (data []byte, source string, err error) {
	if path == "" {
		data, err = cliutil.ReadStdin()
		return data, "stdin", err
	}
	data, err = cliutil.ReadFile(path)
	return data, path, err
}

// exitFunc is overridden in tests so fatal's callers can be exercised
// without terminating the test binary.
var exitFunc = os.Exit

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}
