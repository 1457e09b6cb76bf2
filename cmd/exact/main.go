package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/zephyrtronium/exact"
)

func main() {
	log.SetFlags(0)
	var (
		inname           string
		nl, echo, raw, f bool
	)
	flag.StringVar(&inname, "in", "", "input file of terms (default stdin if no args given)")
	flag.BoolVar(&nl, "n", false, "treat separate input lines as separate sums")
	flag.BoolVar(&echo, "echo", false, "print expression trees before and after simplifying")
	flag.BoolVar(&raw, "raw", false, "calculate without simplifying first")
	flag.BoolVar(&f, "f64", false, "print results as float64 instead of exact decimals")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] term...\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Each term is a decimal literal such as 10, -2.5, or .1. A leading ~ negates")
		fmt.Fprintln(flag.CommandLine.Output(), "the term, so \"10 ~15\" is 10 + -(15). The terms are summed.")
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
	}
	flag.Parse()

	var sums [][]string
	in, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if in != nil {
		sums, err = readTerms(in, nl)
		if err != nil {
			log.Fatal(err)
		}
	}
	if flag.NArg() > 0 {
		sums = append(sums, flag.Args())
	}

	for _, terms := range sums {
		e, err := build(terms)
		if err != nil {
			log.Fatal(err)
		}
		if echo {
			fmt.Printf("%v : ", e)
		}
		if !raw {
			e = e.Simplify()
			if echo {
				fmt.Printf("%v : ", e)
			}
		}
		r := e.Calculate()
		if f {
			fmt.Println(r.Float64())
			continue
		}
		fmt.Println(r)
	}
}

// build creates the sum of the given terms.
func build(terms []string) (*exact.Node, error) {
	nodes := make([]*exact.Node, 0, len(terms))
	for _, t := range terms {
		n, err := term(t)
		if err != nil {
			return nil, errors.Wrapf(err, "term %q", t)
		}
		nodes = append(nodes, n)
	}
	return exact.Sum(nodes...), nil
}

// term parses a single term, which is a literal optionally preceded by any
// number of ~ negations.
func term(s string) (*exact.Node, error) {
	if strings.HasPrefix(s, "~") {
		n, err := term(s[1:])
		if err != nil {
			return nil, err
		}
		return exact.Negate(n), nil
	}
	if strings.Contains(s, ".") {
		x, err := exact.ParseFloat(s)
		if err != nil {
			return nil, err
		}
		return exact.FloatNode(x), nil
	}
	x, err := exact.ParseInt(s)
	if err != nil {
		return nil, err
	}
	return exact.IntNode(x), nil
}

// readTerms reads whitespace-separated terms. If lines is set, each non-empty
// line is a separate sum; otherwise all terms form one sum.
func readTerms(in io.Reader, lines bool) ([][]string, error) {
	var sums [][]string
	sc := bufio.NewScanner(in)
	if !lines {
		sc.Split(bufio.ScanWords)
		var terms []string
		for sc.Scan() {
			terms = append(terms, sc.Text())
		}
		if len(terms) > 0 {
			sums = append(sums, terms)
		}
		return sums, sc.Err()
	}
	for sc.Scan() {
		if terms := strings.Fields(sc.Text()); len(terms) > 0 {
			sums = append(sums, terms)
		}
	}
	return sums, sc.Err()
}

func infile(inname string, std bool) (io.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
