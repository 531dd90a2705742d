//go:build !tinygo

package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/dextero/evil-android/sprite"
)

func main() {
	var inPath string
	var pixPath string
	var maskPath string
	flag.StringVar(&inPath, "in", "", "Input PNG image.")
	flag.StringVar(&pixPath, "out-pix", "", "Output RGB565 pixel file.")
	flag.StringVar(&maskPath, "out-mask", "", "Output 1bpp mask file.")
	flag.Parse()

	if inPath == "" || pixPath == "" || maskPath == "" {
		fmt.Fprintln(os.Stderr, "error: -in, -out-pix and -out-mask are required")
		os.Exit(2)
	}

	if err := run(inPath, pixPath, maskPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(inPath, pixPath, maskPath string) error {
	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %q: %w", inPath, err)
	}

	w, h, pix, mask := sprite.Encode(img)

	if err := os.WriteFile(pixPath, pix, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", pixPath, err)
	}
	if err := os.WriteFile(maskPath, mask, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", maskPath, err)
	}

	fmt.Printf("%s: %dx%d, %d pixel bytes, %d mask bytes\n", inPath, w, h, len(pix), len(mask))
	return nil
}
