// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: anchors and aliases load as shared nodes. Editing the shared
// node through one alias is visible through every other.

package main

import (
	"fmt"
	"log"

	"go.yaml.in/yamldom"
)

const input = `base: &base
  retries: 3
first: *base
second: *base
`

func main() {
	doc, err := yamldom.Parse([]byte(input))
	if err != nil {
		log.Fatal(err)
	}
	root := doc.Root.(*yamldom.Mapping)
	base, _ := root.Lookup("base")
	first, _ := root.Lookup("first")
	fmt.Println("same node:", base == first)

	retries, _ := first.(*yamldom.Mapping).Lookup("retries")
	retries.(*yamldom.Scalar).SetValue("5")

	count := 0
	for range doc.AllNodes() {
		count++
	}
	fmt.Println("distinct nodes:", count)

	data, err := yamldom.Format(doc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))
}
