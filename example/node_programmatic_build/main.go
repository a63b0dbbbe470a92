// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: builds a document graph by hand, including a node shared by two
// parents and a mapping that contains itself, and writes it as YAML.

package main

import (
	"fmt"
	"log"

	"go.yaml.in/yamldom"
)

func main() {
	fmt.Println("=== Building YAML Nodes Programmatically ===")

	defaults := yamldom.NewMapping(
		yamldom.Entry{Key: yamldom.NewScalar("adapter"), Value: yamldom.NewScalar("postgres")},
		yamldom.Entry{Key: yamldom.NewScalar("host"), Value: yamldom.NewScalar("localhost")},
	).WithStyle(yamldom.BlockStyle)

	root := yamldom.NewMapping().WithStyle(yamldom.BlockStyle)
	root.Set(yamldom.NewScalar("development"), defaults)
	root.Set(yamldom.NewScalar("test"), defaults)
	root.Set(yamldom.NewScalar("self"), root)

	data, err := yamldom.Format(yamldom.NewDocument(root), yamldom.WithIndent(2))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", data)

	doc, err := yamldom.Parse(data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Loaded back equal:", doc.Equal(yamldom.NewDocument(root)))
}
