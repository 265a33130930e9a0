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

// Package asm holds the hand-written SSSE3 kernels behind package hwy.
//
// The kernels only exist in amd64 builds without the noasm tag. There are
// no stubs for other targets: code that references them must carry the
// same build constraint, so a missing instruction set surfaces as a build
// error instead of a runtime fault.
package asm
