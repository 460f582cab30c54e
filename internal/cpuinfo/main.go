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

// Package main provides a diagnostic tool to print the CPU features and
// precision-mode dispatch decisions the engine package would use on this
// machine.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/deepzoom/mandelcore/engine"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Engine dispatch level: %s\n", engine.CurrentLevel())
	fmt.Printf("Engine dispatch width: %d lanes\n", engine.LaneWidth())
	fmt.Printf("Engine dispatch name:  %s\n", engine.CurrentName())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}

	fmt.Println()
	fmt.Println("=== precision mode boundaries ===")
	printModeBoundary("0.0", "1.0", 1920)                    // w = 1: double
	printModeBoundary("0.0", "0.000000000000001", 1920)      // w = 1e-15: extended
	printModeBoundary("0.0", "0.00000000000000000001", 1920) // w = 1e-20: perturbation
}

func printModeBoundary(xmin, xmax string, width int) {
	mode, err := engine.ChooseMode(xmin, xmax, width)
	if err != nil {
		fmt.Printf("  [%s, %s] width=%d: error: %v\n", xmin, xmax, width, err)
		return
	}
	fmt.Printf("  [%s, %s] width=%d: %s\n", xmin, xmax, width, mode)
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasFPHP:     %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
	fmt.Printf("  HasATOMICS:  %v (Large System Extensions)\n", cpu.ARM64.HasATOMICS)
	fmt.Println("  (arm64 has no archsimd perturbation kernel in this build; engine falls back to scalar)")
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
	fmt.Printf("  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
	fmt.Printf("  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasSSE2:     %v\n", cpu.X86.HasSSE2)
}
