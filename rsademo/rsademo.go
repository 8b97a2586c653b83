// Package rsademo runs the key volume demo: it loads a DER key pair from a
// removable volume, encrypts a fixed message with the public key, decrypts it
// with the private key and reports every step on a text console.
//
// The procedure is strictly sequential and stops at the first failure. Nothing
// is retried and no partial result is returned.
package rsademo

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"io"

	"github.com/YaCodeDev/GoYaRSADemo/yaconsole"
	"github.com/YaCodeDev/GoYaRSADemo/yaerrors"
	"github.com/YaCodeDev/GoYaRSADemo/yalogger"
	"github.com/YaCodeDev/GoYaRSADemo/yarsa"
	"github.com/YaCodeDev/GoYaRSADemo/yastorage"
	"github.com/spf13/afero"
)

// Deps are the outside resources the demo touches.
type Deps struct {
	// FS holds the key volume, afero.NewOsFs() in production.
	FS afero.Fs
	// Console receives the human readable report.
	Console *yaconsole.Console
	// Log receives diagnostics.
	Log yalogger.Logger
	// Entropy seeds the generator, crypto/rand.Reader when nil.
	Entropy io.Reader
}

// Result is what a successful run produced.
type Result struct {
	PublicKeySize  int64
	PrivateKeySize int64
	Ciphertext     []byte
	Plaintext      []byte
}

// keyPair is the parsed content of the volume.
type keyPair struct {
	public  *rsa.PublicKey
	private *rsa.PrivateKey
}

type demo struct {
	cfg     Config
	console *yaconsole.Console
	log     yalogger.Logger
	entropy io.Reader
	fs      afero.Fs
}

// Run executes the demo once. On failure the returned error has already been
// reported on the console; the caller decides how to halt (see Halt).
func Run(ctx context.Context, cfg Config, deps Deps) (*Result, yaerrors.Error) {
	d := demo{
		cfg:     cfg,
		console: deps.Console,
		log:     deps.Log,
		entropy: deps.Entropy,
		fs:      deps.FS,
	}

	if d.console == nil {
		d.console = yaconsole.New(io.Discard)
	}

	if d.log == nil {
		d.log = yalogger.NewBaseLogger(nil).NewLogger()
	}

	if d.entropy == nil {
		d.entropy = rand.Reader
	}

	if d.fs == nil {
		d.fs = afero.NewOsFs()
	}

	d.log = d.log.WithComponent("rsademo")

	return d.run(ctx)
}

func (d *demo) run(ctx context.Context) (*Result, yaerrors.Error) {
	if err := d.console.WaitReady(ctx, d.cfg.StartupDelay); err != nil {
		return nil, yaerrors.FromError(yaerrors.CodeUnknown, err, "console is not ready")
	}

	d.console.Println("")
	d.console.Println("Wio Terminal RSA Encryption Demo Starting...")

	vol, yaerr := yastorage.Mount(d.fs, d.cfg.VolumeRoot)
	if yaerr != nil {
		d.console.Println("SD card initialization failed!")

		return nil, yaerr.WrapWithLog("mount key volume", d.log)
	}

	d.console.Println("SD card initialized successfully.")
	d.log.WithField("root", vol.Root()).Debug("Key volume mounted")

	publicDER, yaerr := d.loadKey(vol, d.cfg.PublicKeyFile)
	if yaerr != nil {
		d.console.Println("Failed to load public key!")

		return nil, yaerr.WrapWithLog("load public key", d.log)
	}

	privateDER, yaerr := d.loadKey(vol, d.cfg.PrivateKeyFile)
	if yaerr != nil {
		d.console.Println("Failed to load private key!")

		return nil, yaerr.WrapWithLog("load private key", d.log)
	}

	d.console.Println("Keys loaded successfully!")

	drbg, yaerr := yarsa.NewSeededReader(d.entropy, d.cfg.Personalization)
	if yaerr != nil {
		d.console.Status("Failed to seed random number generator", yaerr)

		return nil, yaerr.WrapWithLog("seed generator", d.log)
	}

	result := &Result{}

	if result.PublicKeySize, yaerr = vol.Size(d.cfg.PublicKeyFile); yaerr != nil {
		d.console.Status("Failed to read public key size", yaerr)

		return nil, yaerr.WrapWithLog("stat public key", d.log)
	}

	if result.PrivateKeySize, yaerr = vol.Size(d.cfg.PrivateKeyFile); yaerr != nil {
		d.console.Status("Failed to read private key size", yaerr)

		return nil, yaerr.WrapWithLog("stat private key", d.log)
	}

	d.console.Printf("Public key size: %d", result.PublicKeySize)
	d.console.Printf("Private key size: %d", result.PrivateKeySize)

	keys, yaerr := d.parseKeys(publicDER, privateDER)
	if yaerr != nil {
		return nil, yaerr
	}

	d.console.Println("Keys parsed successfully!")

	return d.roundTrip(drbg, keys, result)
}

// loadKey reads one key file and reports its size on the console.
func (d *demo) loadKey(vol *yastorage.Volume, name string) ([]byte, yaerrors.Error) {
	data, yaerr := vol.Load(name, d.cfg.MaxKeyFileSize)
	if yaerr != nil {
		switch yaerr.Code() {
		case yaerrors.CodeFileOpen:
			d.console.Printf("Failed to open file: %s", name)
		case yaerrors.CodeFileEmpty:
			d.console.Printf("Loaded 0 bytes from %s", name)
		}

		return nil, yaerr
	}

	d.console.Printf("Loaded %d bytes from %s", len(data), name)
	d.log.WithFields(map[string]any{"file": name, "bytes": len(data)}).Debug("Key file loaded")

	return data, nil
}

func (d *demo) parseKeys(publicDER, privateDER []byte) (*keyPair, yaerrors.Error) {
	public, yaerr := yarsa.ParsePublicKeyDER(publicDER)
	if yaerr == nil {
		yaerr = yarsa.RequireKeyBits(public, d.cfg.KeyBits)
	}

	if yaerr != nil {
		d.console.Status("Failed to parse public key", yaerr)

		return nil, yaerr.WrapWithLog("parse public key", d.log)
	}

	private, yaerr := yarsa.ParsePrivateKeyFile(privateDER)
	if yaerr == nil {
		yaerr = yarsa.RequireKeyBits(&private.PublicKey, d.cfg.KeyBits)
	}

	if yaerr != nil {
		d.console.Status("Failed to parse private key", yaerr)

		return nil, yaerr.WrapWithLog("parse private key", d.log)
	}

	return &keyPair{public: public, private: private}, nil
}

// roundTrip is the only place a cryptographic operation happens.
func (d *demo) roundTrip(drbg io.Reader, keys *keyPair, result *Result) (*Result, yaerrors.Error) {
	d.console.Printf("Original message: %s", d.cfg.Message)
	d.console.Println("Encrypting...")

	ciphertext, yaerr := yarsa.Encrypt(drbg, keys.public, []byte(d.cfg.Message), d.cfg.Padding)
	if yaerr != nil {
		d.console.Status("Encryption failed", yaerr)

		return nil, yaerr.WrapWithLog("encrypt message", d.log)
	}

	d.console.Hex("Encrypted message (hex): ", ciphertext)
	d.log.WithFields(map[string]any{
		"padding": d.cfg.Padding.String(),
		"bytes":   len(ciphertext),
	}).Debug("Message encrypted")

	d.console.Println("Decrypting...")

	plaintext, yaerr := yarsa.Decrypt(
		drbg,
		keys.private,
		ciphertext,
		d.cfg.Padding,
		d.cfg.MaxMessageLength,
	)
	if yaerr != nil {
		d.console.Status("Decryption failed", yaerr)

		return nil, yaerr.WrapWithLog("decrypt message", d.log)
	}

	d.console.Printf("Decrypted message: %s", plaintext)
	d.console.Println("Demo completed!")
	d.log.Info("Demo completed")

	result.Ciphertext = ciphertext
	result.Plaintext = plaintext

	return result, nil
}
