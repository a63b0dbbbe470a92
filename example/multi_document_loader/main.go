// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Multi-Document Loader demonstrates loading multiple YAML documents.

package main

import (
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yamldom"
)

func main() {
	fmt.Println("Example 2: Multi-Document Loader")

	multiDoc := `---
name: app1
version: 1.0.0
---
name: app2
version: 2.0.0
tags:
  - experimental
---
name: app3
version: 3.0.0
`

	loader, err := yamldom.NewLoader(strings.NewReader(multiDoc))
	if err != nil {
		panic(err)
	}

	docNum := 1
	for {
		doc, err := loader.Load()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}
		root := doc.Root.(*yamldom.Mapping)
		name, _ := root.Lookup("name")
		_, tagged := root.Lookup("tags")
		fmt.Printf("Document %d: name=%s entries=%d tags=%t\n",
			docNum, name.(*yamldom.Scalar).Value(), root.Len(), tagged)
		docNum++
	}
}
