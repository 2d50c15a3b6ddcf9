package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	treedec "github.com/reoring/treedec"
	"github.com/reoring/treedec/source/jsontree"
	"github.com/reoring/treedec/source/yamltree"
	"github.com/reoring/treedec/tree"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "inspect":
		inspectCmd(os.Args[2:])
	case "convert":
		convertCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "treedec CLI\n\nUsage:\n  treedec inspect file.{json,yaml}\n  treedec convert file.{json,yaml}\n\ninspect prints every leaf location and its kind; convert re-emits the\ndocument as compact JSON.")
}

func loadFile(name string) (tree.Value, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return tree.Value{}, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return yamltree.Parse(data)
	default:
		return jsontree.Parse(data)
	}
}

func inspectCmd(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	v, err := loadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "inspect:", err)
		os.Exit(1)
	}
	walk(treedec.Root, v)
}

func walk(p treedec.Path, v tree.Value) {
	switch v.Kind() {
	case tree.KindArray:
		items, _ := v.Items()
		if len(items) == 0 {
			fmt.Printf("%s\tarray(empty)\n", p)
			return
		}
		for i, e := range items {
			walk(p.Child(treedec.Index(i)), e)
		}
	case tree.KindObject:
		members, _ := v.Members()
		if len(members) == 0 {
			fmt.Printf("%s\tobject(empty)\n", p)
			return
		}
		for _, m := range members {
			walk(p.Child(treedec.Field(m.Key)), m.Value)
		}
	default:
		fmt.Printf("%s\t%s\t%s\n", p, v.Kind(), v)
	}
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	v, err := loadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "convert:", err)
		os.Exit(1)
	}
	fmt.Println(v.String())
}
