package main

import (
	"context"
	"fmt"
	"os"

	"github.com/proxionix/unit-tools/internal/app"
)

func main() {
	ctx := context.Background()

	a, err := app.New(ctx, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "materiel: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "materiel: %v\n", err)
		os.Exit(1)
	}
}
