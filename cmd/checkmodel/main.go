// checkmodel verifies that the ONNX runtime shared library and the
// autopilot policy model can both be loaded on this machine.
package main

import (
	"fmt"
	"os"

	"github.com/playbits/termsnake/pkg/config"
	"github.com/playbits/termsnake/pkg/game"
)

func main() {
	path := config.DefaultModelPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	fmt.Println("Checking ONNX runtime and policy model...")
	if err := game.StartPolicyService(path); err != nil {
		fmt.Printf("FAIL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("SUCCESS: policy model loaded from %s\n", path)
}
