package main

import (
	"context"

	"landcheck/cmd"
)

func main() {
	ctx := context.Background()
	cmd.Execute(ctx)
}
