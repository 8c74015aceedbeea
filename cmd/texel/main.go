// Package main provides the texel CLI.
package main

import (
	"fmt"
	"os"

	"github.com/texel-ml/texel/shader"
	"github.com/texel-ml/texel/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("texel %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("texel - GLSL shader compiler for texture-backed tensors")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Print a compiled elementwise-add shader")
}

// demo compiles a small elementwise-add kernel with the quantized codec and
// prints the generated source.
func demo() {
	layout := tensor.NewLayout(tensor.Shape{2, 3}, tensor.TexShape{Rows: 2, Cols: 3})
	codec := shader.ChooseCodec(false, shader.DefaultCodecConfig())

	src, err := shader.Compile(
		[]shader.Input{{Name: "a", Layout: layout}, {Name: "b", Layout: layout}},
		layout,
		`void main() {
  setOutput(getAAtOutCoords() + getBAtOutCoords());
}
`,
		false,
		codec,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(src)
}
