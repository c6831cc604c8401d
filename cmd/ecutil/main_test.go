package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	keccaktool "github.com/sprocketlabs/keccaktool"
)

func TestValidateArgs(t *testing.T) {
	cases := []struct {
		name                                                             string
		op, pubFile, prvFile, genPwd, prvPwd, dataFile, sigFile, outFile string
		wantErr                                                          bool
	}{
		{"keygen ok", "keygen", "pub.bin", "prv.bin", "pwd", "", "", "", "", false},
		{"keygen missing pwd", "keygen", "pub.bin", "prv.bin", "", "", "", "", "", true},
		{"encrypt ok", "encrypt", "pub.bin", "", "", "", "in.bin", "", "out.bin", false},
		{"encrypt missing pub", "encrypt", "", "", "", "", "in.bin", "", "out.bin", true},
		{"decrypt with password", "decrypt", "", "", "pwd", "", "in.bin", "", "out.bin", false},
		{"decrypt with no key source", "decrypt", "", "", "", "", "in.bin", "", "out.bin", true},
		{"sign with key file needs rpwd", "sign", "", "prv.bin", "", "", "in.bin", "", "out.bin", true},
		{"sign with key file and rpwd", "sign", "", "prv.bin", "", "rpwd", "in.bin", "", "out.bin", false},
		{"verify ok", "verify", "pub.bin", "", "", "", "in.bin", "sig.bin", "", false},
		{"verify missing sig", "verify", "pub.bin", "", "", "", "in.bin", "", "", true},
		{"unrecognized op", "bogus", "pub.bin", "", "", "", "", "", "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := validateArgs(c.op, c.pubFile, c.prvFile, c.genPwd, c.prvPwd, c.dataFile, c.sigFile, c.outFile)
			if (err != nil) != c.wantErr {
				t.Errorf("validateArgs(%q, ...) err = %v, wantErr %v", c.op, err, c.wantErr)
			}
		})
	}
}

func TestRequireKeySource(t *testing.T) {
	cases := []struct {
		name                    string
		prvFile, prvPwd, genPwd string
		wantErr                 bool
	}{
		{"password only", "", "", "pwd", false},
		{"key file with password", "prv.bin", "rpwd", "", false},
		{"neither given", "", "", "", true},
		{"key file without password", "prv.bin", "", "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := requireKeySource(c.prvFile, c.prvPwd, c.genPwd)
			if (err != nil) != c.wantErr {
				t.Errorf("requireKeySource(...) err = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestResolveKeyPairFromPassword(t *testing.T) {
	kp := resolveKeyPair("", "", "correct horse battery staple")
	if kp == nil {
		t.Fatal("resolveKeyPair with a password should not return nil")
	}

	want, err := keccaktool.DeriveKeyPairFromPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("DeriveKeyPairFromPassword: %v", err)
	}
	if kp.PrvScalar.Cmp(want.PrvScalar) != 0 {
		t.Error("resolveKeyPair(password) did not derive the same scalar as DeriveKeyPairFromPassword")
	}
}

func TestResolveKeyPairFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prv.bin")

	want, err := keccaktool.DeriveKeyPairFromPassword("file-backed password")
	if err != nil {
		t.Fatalf("DeriveKeyPairFromPassword: %v", err)
	}
	if err := keccaktool.WritePrivateKeyFile(want, []byte("filepwd"), path); err != nil {
		t.Fatalf("WritePrivateKeyFile: %v", err)
	}

	kp := resolveKeyPair(path, "filepwd", "")
	if kp == nil {
		t.Fatal("resolveKeyPair with a key file should not return nil")
	}
	if kp.PrvScalar.Cmp(want.PrvScalar) != 0 {
		t.Error("resolveKeyPair(file) did not recover the written scalar")
	}
}

func TestResolveKeyPairBadFileCallsFatal(t *testing.T) {
	originalExitFunc := exitFunc
	defer func() { exitFunc = originalExitFunc }()

	var exitCode int
	exitFunc = func(code int) { exitCode = code }

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	resolveKeyPair(filepath.Join(t.TempDir(), "missing.bin"), "pwd", "")

	w.Close()
	os.Stderr = oldStderr
	var buf bytes.Buffer
	buf.ReadFrom(r)

	if exitCode != 1 {
		t.Errorf("exitCode = %d, want 1", exitCode)
	}
	if buf.Len() == 0 {
		t.Error("resolveKeyPair on a missing key file should print a diagnostic")
	}
}

func TestFatalExitsWithCode1(t *testing.T) {
	originalExitFunc := exitFunc
	defer func() { exitFunc = originalExitFunc }()

	var exitCode int
	exitFunc = func(code int) { exitCode = code }

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	fatal("unrecognized operation: %s", "bogus")

	w.Close()
	os.Stderr = oldStderr
	var buf bytes.Buffer
	buf.ReadFrom(r)

	if exitCode != 1 {
		t.Errorf("exitCode = %d, want 1", exitCode)
	}
	if !strings.Contains(buf.String(), "unrecognized operation: bogus") {
		t.Errorf("stderr = %q, missing expected message", buf.String())
	}
}
