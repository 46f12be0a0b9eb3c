package main

import (
	"fmt"
	"os"

	"min_triangle_path/internal"
)

func main() {
	if err := internal.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
