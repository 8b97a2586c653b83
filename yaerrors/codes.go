package yaerrors

import "fmt"

// Code is a numeric failure code. Zero means success, every failure is negative,
// so a code can be reported the same way a C crypto library reports its return value.
type Code int

const (
	CodeOK Code = 0

	CodeUnknown         Code = -0x0001
	CodeStorageInit     Code = -0x0010
	CodeFileOpen        Code = -0x0011
	CodeFileRead        Code = -0x0012
	CodeFileEmpty       Code = -0x0013
	CodeFileTooLarge    Code = -0x0014
	CodeKeyParse        Code = -0x0020
	CodeKeyType         Code = -0x0021
	CodeKeySizeMismatch Code = -0x0022
	CodeSeed            Code = -0x0030
	CodeBadInput        Code = -0x0040
	CodeEncrypt         Code = -0x0041
	CodeDecrypt         Code = -0x0042
	CodeOutputTooLarge  Code = -0x0043
	CodeConfig          Code = -0x0050
	CodeTeapot          Code = -0x0418
)

var codeText = map[Code]string{
	CodeOK:              "success",
	CodeUnknown:         "unknown error",
	CodeStorageInit:     "STORAGE - volume initialization failed",
	CodeFileOpen:        "STORAGE - failed to open file",
	CodeFileRead:        "STORAGE - failed to read file",
	CodeFileEmpty:       "STORAGE - file is empty",
	CodeFileTooLarge:    "STORAGE - file exceeds buffer capacity",
	CodeKeyParse:        "PK - invalid key tag or value",
	CodeKeyType:         "PK - key type is not RSA",
	CodeKeySizeMismatch: "PK - key size does not match the configured size",
	CodeSeed:            "DRBG - the entropy source failed",
	CodeBadInput:        "RSA - bad input parameters to function",
	CodeEncrypt:         "RSA - the public key operation failed",
	CodeDecrypt:         "RSA - the private key operation failed",
	CodeOutputTooLarge:  "RSA - the output buffer for decryption is not large enough",
	CodeConfig:          "CONFIG - invalid configuration",
	CodeTeapot:          "backend developer is a teapot",
}

// Hex renders the code with its sign in front of the hex digits: "-0x0042", "0x0000".
func (c Code) Hex() string {
	if c < 0 {
		return fmt.Sprintf("-0x%04X", -int(c))
	}

	return fmt.Sprintf("0x%04X", int(c))
}

// String translates the code into a human readable description.
// Unknown codes are rendered with their hex value.
func (c Code) String() string {
	if text, ok := codeText[c]; ok {
		return text
	}

	if c < 0 {
		return fmt.Sprintf("UNKNOWN ERROR CODE (-%04X)", -int(c))
	}

	return fmt.Sprintf("UNKNOWN ERROR CODE (%04X)", int(c))
}
