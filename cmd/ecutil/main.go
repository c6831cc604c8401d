// Command ecutil generates EC key pairs and provides ECDHIES encryption
// and Schnorr signing services over E_521.
package main

import (
	"flag"
	"fmt"
	"os"

	keccaktool "github.com/sprocketlabs/keccaktool"
	"github.com/sprocketlabs/keccaktool/internal/cliutil"
)

func main() {
	fs := flag.NewFlagSet("ecutil", flag.ExitOnError)
	op := fs.String("op", "", "operation: keygen, encrypt, decrypt, sign, or verify")
	pubFile := fs.String("pub", "", "public key file")
	prvFile := fs.String("prv", "", "private key file")
	genPwd := fs.String("pwd", "", "password to generate a private key directly (keygen, or decrypt/sign without -prv)")
	prvPwd := fs.String("rpwd", "", "password under which -prv is encrypted")
	dataFile := fs.String("f", "", "input data file (encrypt/decrypt/sign/verify)")
	sigFile := fs.String("s", "", "signature file (verify)")
	outFile := fs.String("o", "", "output file")
	fs.Parse(os.Args[1:])

	if err := validateArgs(*op, *pubFile, *prvFile, *genPwd, *prvPwd, *dataFile, *sigFile, *outFile); err != nil {
		fatal("%v", err)
	}

	switch *op {
	case "keygen":
		keygen(*genPwd, *prvPwd, *pubFile, *prvFile)
	case "encrypt":
		encryptData(*pubFile, *dataFile, *outFile)
	case "decrypt":
		decryptData(*prvFile, *prvPwd, *genPwd, *dataFile, *outFile)
	case "sign":
		signFile(*prvFile, *prvPwd, *genPwd, *dataFile, *outFile)
	case "verify":
		verifySignature(*pubFile, *sigFile, *dataFile)
	default:
		fatal("unrecognized operation: %s (want keygen, encrypt, decrypt, sign, or verify)", *op)
	}
}

func keygen(genPwd, prvPwd, pubFile, prvFile string) {
	filePass := prvPwd
	if filePass == "" {
		filePass = genPwd
	}

	kp, err := keccaktool.DeriveKeyPairFromPassword(genPwd)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println("New EC key pair successfully generated.")

	if err := keccaktool.WritePrivateKeyFile(kp, []byte(filePass), prvFile); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Private key encrypted and written to %s\n", prvFile)

	if err := keccaktool.WritePublicKeyFile(kp, pubFile); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Public key written to %s\n", pubFile)
}

func encryptData(pubFile, dataFile, outFile string) {
	pub, err := keccaktool.ReadPublicKeyFile(pubFile)
	if err != nil {
		fatal("%v", err)
	}
	in, err := cliutil.ReadFile(dataFile)
	if err != nil {
		fatal("%v", err)
	}
	out, err := keccaktool.EncryptEC(pub, in)
	if err != nil {
		fatal("%v", err)
	}
	if err := cliutil.WriteFile(outFile, out); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Successfully encrypted %s under public key %s.\nEncrypted data written to %s\n", dataFile, pubFile, outFile)
}

func decryptData(prvFile, prvPwd, genPwd, dataFile, outFile string) {
	kp := resolveKeyPair(prvFile, prvPwd, genPwd)

	in, err := cliutil.ReadFile(dataFile)
	if err != nil {
		fatal("%v", err)
	}
	plaintext, valid, err := keccaktool.DecryptEC(kp.PrvScalar, in)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println("Data decryption attempted.")

	if !valid {
		fmt.Println("The decrypted data could not be validated, no data was written to disk.")
		return
	}
	if err := cliutil.WriteFile(outFile, plaintext); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Message authentication code OK. Decrypted data written to %s\n", outFile)
}

func signFile(prvFile, prvPwd, genPwd, dataFile, outFile string) {
	kp := resolveKeyPair(prvFile, prvPwd, genPwd)

	in, err := cliutil.ReadFile(dataFile)
	if err != nil {
		fatal("%v", err)
	}
	sig, err := keccaktool.SchnorrSign(kp.PrvScalar, in)
	if err != nil {
		fatal("%v", err)
	}
	if err := cliutil.WriteFile(outFile, sig); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Signature generated and written to %s\n", outFile)
}

func verifySignature(pubFile, sigFile, dataFile string) {
	pub, err := keccaktool.ReadPublicKeyFile(pubFile)
	if err != nil {
		fatal("%v", err)
	}
	sig, err := cliutil.ReadFile(sigFile)
	if err != nil {
		fatal("%v", err)
	}
	msg, err := cliutil.ReadFile(dataFile)
	if err != nil {
		fatal("%v", err)
	}

	ok, err := keccaktool.SchnorrVerify(sig, pub, msg)
	if err != nil {
		fatal("%v", err)
	}
	if ok {
		fmt.Printf("Signature OK.\nSignature %s of file %s is valid for public key %s\n", sigFile, dataFile, pubFile)
		return
	}
	fmt.Printf("Signature NOT VALID.\nSignature %s of file %s is not valid for %s\n", sigFile, dataFile, pubFile)
	os.Exit(1)
}

func resolveKeyPair(prvFile, prvPwd, genPwd string) *keccaktool.KeyPair {
	if prvFile != "" {
		kp, err := keccaktool.ReadPrivateKeyFile(prvFile, []byte(prvPwd))
		if err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Successfully read private key from %s\n", prvFile)
		return kp
	}
	kp, err := keccaktool.DeriveKeyPairFromPassword(genPwd)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println("Successfully generated private key from password.")
	return kp
}

func validateArgs(op, pubFile, prvFile, genPwd, prvPwd, dataFile, sigFile, outFile string) error {
	switch op {
	case "keygen":
		if pubFile == "" || prvFile == "" || genPwd == "" {
			return fmt.Errorf("keygen requires -pub, -prv, and -pwd")
		}
	case "encrypt":
		if pubFile == "" || dataFile == "" || outFile == "" {
			return fmt.Errorf("encrypt requires -pub, -f, and -o")
		}
	case "decrypt":
		if err := requireKeySource(prvFile, prvPwd, genPwd); err != nil {
			return fmt.Errorf("decrypt %w", err)
		}
		if dataFile == "" || outFile == "" {
			return fmt.Errorf("decrypt requires -f and -o")
		}
	case "sign":
		if err := requireKeySource(prvFile, prvPwd, genPwd); err != nil {
			return fmt.Errorf("sign %w", err)
		}
		if dataFile == "" || outFile == "" {
			return fmt.Errorf("sign requires -f and -o")
		}
	case "verify":
		if pubFile == "" || sigFile == "" || dataFile == "" {
			return fmt.Errorf("verify requires -pub, -s, and -f")
		}
	default:
		return fmt.Errorf("unrecognized operation: %s (want keygen, encrypt, decrypt, sign, or verify)", op)
	}
	return nil
}

// requireKeySource enforces that the private key has a source: a password
// to derive it fresh, or a key file plus the password it is encrypted
// under. Giving both is accepted; resolveKeyPair then uses the key file.
func requireKeySource(prvFile, prvPwd, genPwd string) error {
	if prvFile == "" && genPwd == "" {
		return fmt.Errorf("requires either -pwd or -prv (with -rpwd)")
	}
	if prvFile != "" && prvPwd == "" {
		return fmt.Errorf("requires -rpwd when -prv is given")
	}
	return nil
}

// exitFunc is overridden in tests so fatal's callers can be exercised
// without terminating the test binary.
var exitFunc = os.Exit

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}
