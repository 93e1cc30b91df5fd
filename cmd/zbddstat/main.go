// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command zbddstat reads a line-delimited JSON dump of zbdd.Stats, as an
// embedding application might write by encoding Engine.StatsStruct() once per
// line, and pretty-prints each snapshot. It never touches a live Engine: it
// is a read-only report over stats someone else already computed.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jgremmen/zbdd"
)

func main() {
	path := flag.String("f", "-", "path to a newline-delimited JSON dump of zbdd.Stats (- for stdin)")
	flag.Parse()

	in := os.Stdin
	if *path != "-" {
		f, err := os.Open(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "zbddstat:", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := report(in, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "zbddstat:", err)
		os.Exit(1)
	}
}

// report decodes one zbdd.Stats value per line of r and writes its tab
// aligned rendering to w, separating successive snapshots with a blank line.
func report(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var s zbdd.Stats
		if err := json.Unmarshal(line, &s); err != nil {
			return fmt.Errorf("decoding snapshot %d: %w", n, err)
		}
		if n > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "snapshot %d (used %d of %d slots):\n", n, s.Used(), s.Capacity)
		fmt.Fprint(w, s.String())
		n++
	}
	return scanner.Err()
}
