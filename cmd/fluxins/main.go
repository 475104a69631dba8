// Command fluxins evaluates arithmetic expressions given as arguments
// or, with no arguments, one per line of stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/flowthorn/fluxins"
	"github.com/flowthorn/fluxins/builtins"
)

func main() {
	log.SetFlags(0)

	var (
		verb string
		with [][2]string
	)
	addWith := func(s string) error {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("variable definitions must be \"name=value\", not %q", s)
		}
		with = append(with, [2]string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])})
		return nil
	}
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("with", "name=value variable definition (any number of times)", addWith)
	flag.Parse()

	ctx := fluxins.NewContext()
	builtins.Populate(ctx)
	cfg := builtins.DefaultConfig()

	for _, d := range with {
		v, err := fluxins.Express(d[1], cfg, ctx)
		if err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
		ctx.SetVariable(d[0], v)
	}

	verb += "\n"
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			evalAndPrint(arg, cfg, ctx, verb)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		evalAndPrint(line, cfg, ctx, verb)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func evalAndPrint(src string, cfg *fluxins.Config, ctx *fluxins.Context, verb string) {
	v, err := fluxins.Express(src, cfg, ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf(verb, v)
}
