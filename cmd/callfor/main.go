// Command callfor queries the animal sounds backend without opening a window.
//
//	callfor -animals
//	callfor -animal Dog
//	callfor -animal Dog -sound Bark
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ytget/animal-sounds/internal/config"
	"github.com/ytget/animal-sounds/internal/controller"
	"github.com/ytget/animal-sounds/internal/logging"
	"github.com/ytget/animal-sounds/internal/lookup"
	"github.com/ytget/animal-sounds/internal/model"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fs := flag.NewFlagSet("callfor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	server := fs.String("server", env.ServerURL, "backend base URL")
	animal := fs.String("animal", "", "animal to look up")
	sound := fs.String("sound", "", "sound to explain (requires -animal)")
	listAnimals := fs.Bool("animals", false, "list the animals offered by the server")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := config.ValidateServerURL(*server); err != nil {
		fmt.Fprintf(stderr, "invalid -server: %v\n", err)
		return 2
	}

	logger := logging.NewWithWriter(stderr, env.Log)
	client := lookup.NewClient(*server, lookup.WithTimeout(env.RequestTimeout), lookup.WithLogger(logger))

	switch {
	case *listAnimals:
		animals, err := client.ListAnimals(ctx)
		if err != nil {
			logger.Error("list animals failed", "error", err)
			return 1
		}
		for _, a := range animals {
			fmt.Fprintln(stdout, a)
		}
	case *animal == "":
		fmt.Fprintln(stderr, controller.MsgSelectBoth)
		fs.Usage()
		return 2
	case *sound == "":
		sounds, err := client.GetSounds(ctx, *animal)
		if err != nil {
			logger.Error("fetch sounds failed", "animal", *animal, "error", err)
			return 1
		}
		if len(sounds) == 0 {
			fmt.Fprintln(stdout, model.PlaceholderNoSounds)
			return 0
		}
		for _, s := range sounds {
			fmt.Fprintln(stdout, s)
		}
	default:
		callFor, err := client.GetCallFor(ctx, *animal, *sound)
		if err != nil {
			logger.Error("get call-for failed", "animal", *animal, "sound", *sound, "error", err)
			return 1
		}
		if callFor == "" {
			fmt.Fprintln(stdout, controller.MsgNoInformation)
			return 0
		}
		fmt.Fprintln(stdout, callFor)
	}

	return 0
}
