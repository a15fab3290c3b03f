// Command bplusdb is a small demo CLI exercising the catalog: it
// creates a database and table, inserts a few records, prints the
// underlying tree and, when -snapshot is given, saves a snapshot and
// reloads it into a fresh catalog to show the round trip. Purely
// presentational, per spec.md
// §1's carve-out for CLI/logging/visualization.
//
// Shaped after Sahilb315-Storage-Engine/main.go (a bare tree demo) and
// BibekPathak-shark-db/cmd/sharkdb/main.go (a catalog-backed demo),
// generalized to this repo's cmd/<name>/main.go layout
// (l00pss-treego/*/example/main.go).
package main

import (
	"flag"
	"log"

	"bplusdb/catalog"
	"bplusdb/table"
)

func main() {
	path := flag.String("snapshot", "", "path to save/load a catalog snapshot (optional)")
	flag.Parse()

	c := catalog.New()
	if err := c.CreateDatabase("demo"); err != nil {
		log.Fatalf("create database: %v", err)
	}

	schema := table.Schema{"id": table.TypeInt, "name": table.TypeString}
	people, err := catalog.CreateTable[int](c, "demo", "people", schema, 4, "id")
	if err != nil {
		log.Fatalf("create table: %v", err)
	}

	records := []table.Record{
		{"id": 1, "name": "ada"},
		{"id": 2, "name": "grace"},
		{"id": 3, "name": "margaret"},
		{"id": 4, "name": "katherine"},
	}
	for _, r := range records {
		if err := people.Insert(r); err != nil {
			log.Fatalf("insert %v: %v", r, err)
		}
	}

	log.Printf("table %q now has %d records", people.Name, len(people.GetAll()))
	people.Data.PrettyPrint()

	if *path == "" {
		return
	}

	snapPath := catalog.NormalizeSnapshotPath(*path)
	if err := c.SaveDatabase(snapPath); err != nil {
		log.Fatalf("save database: %v", err)
	}
	log.Printf("saved snapshot to %s", snapPath)

	fresh := catalog.New()
	if err := fresh.LoadDatabase(snapPath); err != nil {
		log.Fatalf("load database: %v", err)
	}
	reloaded, err := catalog.GetTable[int](fresh, "demo", "people")
	if err != nil {
		log.Fatalf("get table after reload: %v", err)
	}
	log.Printf("reloaded table %q has %d records", reloaded.Name, len(reloaded.GetAll()))
}
