package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/propertyparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const groupCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate fixed-arity property group facades",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  groupCountKey,
				Usage: "Largest group arity to generate",
				Value: 4,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for property groups started!")
	defer func() {
		log.Printf("Codegen for property groups finished in %v", time.Since(start))
	}()

	groupCount := cmd.Uint(groupCountKey)
	log.Printf("Largest group arity: %d", groupCount)

	contents := templates.GroupGen(int(groupCount))
	if err := os.WriteFile("property/group_gen.go", []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}
