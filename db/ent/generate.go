package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Regenerates the ent client under gen/ent from the schemas in
// db/ent/schema. Run from the repository root: go run ./db/ent
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent",
			Schema:  "github.com/priya-sndrs/InstSys-CaseStudy-sub000/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
