// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// hwyvet checks that the Go declarations of the assembly kernels agree
// with their TEXT blocks: argument names, offsets, sizes and frame sizes
// (asmdecl), and that no kernel clobbers the frame pointer (framepointer).
//
// Usage:
//
//	GOARCH=amd64 go run ./cmd/hwyvet ./hwy/...
package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/asmdecl"
	"golang.org/x/tools/go/analysis/passes/framepointer"
)

var analyzers = []*analysis.Analyzer{
	asmdecl.Analyzer,
	framepointer.Analyzer,
}

func main() {
	multichecker.Main(analyzers...)
}
