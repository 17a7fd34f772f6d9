package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/docopt/docopt-go"
	log "github.com/sirupsen/logrus"

	"github.com/Y-Gwork/Granite/exporter"
	"github.com/Y-Gwork/Granite/vfs"
)

const usage = `glbinspect prints the container framing and a document summary of a
binary glTF 2.0 file.

Usage:
  glbinspect [--dump] <file>
  glbinspect -h | --help

Options:
  --dump     Dump the full decoded JSON document.
  -h --help  Show this help.`

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatal(err)
	}
	path, _ := opts.String("<file>")
	dump, _ := opts.Bool("--dump")

	fsys := vfs.OS{}
	f, err := fsys.Open(path)
	if err != nil {
		log.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	jsonData, bin, err := exporter.ReadGLB(f)
	if err != nil {
		log.Fatalf("failed to parse %s: %v", path, err)
	}

	fmt.Printf("%s:\n", path)
	fmt.Printf("  JSON chunk: %d bytes\n", len(jsonData))
	fmt.Printf("  BIN chunk:  %d bytes\n", len(bin))

	var doc map[string]interface{}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		log.Fatalf("document is not valid JSON: %v", err)
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if array, ok := doc[key].([]interface{}); ok {
			fmt.Printf("  %-20s %d entries\n", key, len(array))
		}
	}

	if dump {
		spew.Dump(doc)
	}
}
