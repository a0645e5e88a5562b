// Command luisc compiles YAML training-corpus files into a LUIS-style
// model document.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/conversekit/luisc/pkg/luisc"
	"github.com/conversekit/luisc/pkg/luisc/corpus"
	"github.com/conversekit/luisc/pkg/luisc/store/sqlite"
)

func main() {
	var (
		inFiles       = flag.String("in", "", "comma-separated corpus files, merged in order (required)")
		culture       = flag.String("culture", "en-us", "culture code for normalization (e.g. en-us, es-es)")
		appName       = flag.String("name", "", "application name for the model (required)")
		desc          = flag.String("desc", "", "model description (default: generation timestamp)")
		schemaVersion = flag.String("schema-version", luisc.DefaultSchemaVersion, "schema version to emit")
		outPath       = flag.String("out", "-", "output path for the model JSON, '-' for stdout")
		archivePath   = flag.String("archive", "", "optional sqlite path to record the build in")
	)
	flag.Parse()

	if *inFiles == "" || *appName == "" {
		log.Fatal("--in and --name are required")
	}

	paths := strings.Split(*inFiles, ",")
	for i := range paths {
		paths[i] = strings.TrimSpace(paths[i])
	}

	doc, overwritten, err := corpus.LoadAll(paths)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}
	for _, key := range overwritten {
		log.Printf("merge: key %q overwritten by a later file", key)
	}

	description := *desc
	if description == "" {
		description = fmt.Sprintf("Built with luisc on %s", time.Now().UTC().Format(time.RFC3339))
	}

	ctx := context.Background()

	opts := luisc.Options{
		AppName:       *appName,
		Description:   description,
		Culture:       *culture,
		SchemaVersion: *schemaVersion,
	}
	if *archivePath != "" {
		archive, err := sqlite.OpenSQLite(ctx, *archivePath)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		defer archive.Close()
		opts.Archive = archive
	}

	compiler, err := luisc.New(opts)
	if err != nil {
		log.Fatalf("configure compiler: %v", err)
	}

	m, err := compiler.Compile(ctx, doc)
	if err != nil {
		log.Fatalf("compile: %v", err)
	}

	data, err := m.JSON()
	if err != nil {
		log.Fatalf("encode model: %v", err)
	}
	data = append(data, '\n')

	// Output is written only after the whole run succeeded; a failed run
	// never leaves a partial model behind.
	if *outPath == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("write model: %v", err)
		}
		return
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		log.Fatalf("write model: %v", err)
	}
	log.Printf("wrote %s: %d intents, %d entities, %d utterances",
		*outPath, len(m.Intents), len(m.Entities), len(m.Utterances))
}
