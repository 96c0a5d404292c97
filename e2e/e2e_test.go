package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KromDaniel/dfagen/pkg/dfagen"
)

// TestCase names a description and the extra words checked by the
// generated test file.
type TestCase struct {
	Description string   `json:"description"`
	Words       []string `json:"words"`
}

// TestE2E generates a matcher for every description and runs its generated
// tests with the go tool.
func TestE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e tests in short mode")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not found")
	}

	data, err := os.ReadFile("testdata.json")
	if err != nil {
		t.Fatalf("Failed to read test data: %v", err)
	}

	var testCases []TestCase
	if err := json.Unmarshal(data, &testCases); err != nil {
		t.Fatalf("Failed to parse test data: %v", err)
	}

	if len(testCases) == 0 {
		t.Fatal("No test cases found in testdata.json")
	}

	t.Logf("Running %d e2e test cases", len(testCases))

	tempDir := t.TempDir()

	for i, tc := range testCases {
		testName := fmt.Sprintf("Automaton%02d", i+1)

		t.Run(testName, func(t *testing.T) {
			caseDir := filepath.Join(tempDir, testName)
			if err := os.MkdirAll(caseDir, 0755); err != nil {
				t.Fatalf("Failed to create test directory: %v", err)
			}

			t.Logf("Generating code for %s", tc.Description)
			outputFile := filepath.Join(caseDir, fmt.Sprintf("%s.go", testName))

			opts := dfagen.GenerateOptions{
				Options: dfagen.Options{
					Input: tc.Description,
					Words: tc.Words,
				},
				Name:             testName,
				OutputFile:       outputFile,
				Package:          "generated",
				GenerateTestFile: true,
			}

			if err := dfagen.Generate(context.Background(), opts); err != nil {
				t.Fatalf("Failed to generate code: %v", err)
			}

			testFile := filepath.Join(caseDir, fmt.Sprintf("%s_test.go", testName))
			if _, err := os.Stat(testFile); os.IsNotExist(err) {
				t.Fatalf("Generated test file does not exist: %s", testFile)
			}

			initCmd := exec.Command("go", "mod", "init", "testmodule")
			initCmd.Dir = caseDir
			if output, err := initCmd.CombinedOutput(); err != nil {
				t.Fatalf("Failed to initialize go module:\nOutput: %s\nError: %v", string(output), err)
			}

			cmd := exec.Command("go", "test", "-v")
			cmd.Dir = caseDir

			output, err := cmd.CombinedOutput()
			if err != nil {
				t.Fatalf("Generated tests failed:\nOutput: %s\nError: %v", string(output), err)
			}

			if testCount := countTests(string(output)); testCount == 0 {
				t.Fatalf("No tests were executed! Output: %s", string(output))
			}
		})
	}
}

// countTests counts the "=== RUN" lines of go test -v output.
func countTests(output string) int {
	count := 0
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "=== RUN") {
			count++
		}
	}
	return count
}
