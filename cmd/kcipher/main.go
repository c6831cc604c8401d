// Command kcipher encrypts and decrypts files with the password-based
// symmetric authenticated encryption scheme.
package main

import (
	"flag"
	"fmt"
	"os"

	keccaktool "github.com/sprocketlabs/keccaktool"
	"github.com/sprocketlabs/keccaktool/internal/cliutil"
)

func main() {
	fs := flag.NewFlagSet("kcipher", flag.ExitOnError)
	encrypt := fs.Bool("e", false, "encrypt the input file")
	decrypt := fs.Bool("d", false, "decrypt the input file")
	inputFile := fs.String("f", "", "input file")
	pwdStr := fs.String("pws", "", "password, given directly")
	pwdFile := fs.String("pwf", "", "file containing the password")
	outFile := fs.String("o", "", "output file")
	ignoreTag := fs.Bool("i", false, "write decrypted output even if the authentication tag does not match")
	fs.Parse(os.Args[1:])

	if err := validateArgs(*encrypt, *decrypt, *pwdStr, *pwdFile, *outFile); err != nil {
		fatal("%v", err)
	}

	password, err := resolvePassword(*pwdStr, *pwdFile)
	if err != nil {
		fatal("%v", err)
	}

	input, err := cliutil.ReadFile(*inputFile)
	if err != nil {
		fatal("%v", err)
	}

	if *encrypt {
		record, err := keccaktool.Encrypt(password, input)
		if err != nil {
			fatal("%v", err)
		}
		if err := cliutil.WriteFile(*outFile, record); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Successfully wrote encrypted file to %s\n", *outFile)
		return
	}

	plaintext, valid, err := keccaktool.Decrypt(password, input)
	if err != nil {
		fatal("%v", err)
	}

	if !valid && !*ignoreTag {
		fmt.Println("Warning: Computed MAC did not match transmitted MAC. No data was written to disk.")
		fmt.Println("This behavior can be disabled with the -i flag.")
		return
	}

	if err := cliutil.WriteFile(*outFile, plaintext); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Successfully wrote decrypted file to %s\n", *outFile)
	if valid {
		fmt.Println("Authentication tag is valid.")
	} else {
		fmt.Println("Authentication tag is invalid.")
	}
}

func validateArgs(encrypt, decrypt bool, pwdStr, pwdFile, outFile string) error {
	if encrypt == decrypt {
		return fmt.Errorf("exactly one of -e or -d is required")
	}
	if (pwdStr == "") == (pwdFile == "") {
		return fmt.Errorf("exactly one of -pws or -pwf is required")
	}
	if outFile == "" {
		return fmt.Errorf("an output file (-o) is required")
	}
	return nil
}

func resolvePassword(pwdStr, pwdFile string) ([]byte, error) {
	if pwdFile != "" {
		return cliutil.ReadFile(pwdFile)
	}
	return []byte(pwdStr), nil
}

// exitFunc is overridden in tests so fatal's callers can be exercised
// without terminating the test binary.
var exitFunc = os.Exit

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}
