// Command tomathml translates EquationText into Content-MathML,
// reading from a file argument or from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cellml-text/tomathml/pkg/tomathml"
)

func main() {
	plain := flag.Bool("plain", false, "parse without CellML domain-aware grammar (no unit blocks)")
	classify := flag.Bool("classify", false, "classify the first statement instead of translating it")
	flag.Parse()

	text, err := readInput(flag.Arg(0))
	if err != nil {
		panic(err)
	}

	domainAware := !*plain

	if *classify {
		statement, err := tomathml.ProcessStatement(text, domainAware)
		if err != nil {
			fmt.Fprint(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(statement)
		return
	}

	fmt.Print(tomathml.Process(text, domainAware))
}

func readInput(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}

	b, err := os.ReadFile(path)
	return string(b), err
}
