package main

import "github.com/spf13/pflag"

const (
	// FlagWord adds a word to test, may be repeated
	FlagWord = "word"
	// FlagVerbose prints the normalization steps
	FlagVerbose = "verbose"
	// FlagTable prints word results as a table
	FlagTable = "table"
	// FlagCrossCheck compares the DFA against the input automaton
	FlagCrossCheck = "cross-check"
	// FlagSimulate evaluates words on the input automaton
	FlagSimulate = "simulate"
	// FlagConcurrency bounds the word evaluation goroutines
	FlagConcurrency = "concurrency"
	// FlagSave stores the final DFA as a description
	FlagSave = "save"
	// FlagName is the type name of the generated matcher
	FlagName = "name"
	// FlagPackage is the package of the generated matcher
	FlagPackage = "package"
	// FlagOutput is the generated file
	FlagOutput = "output"
	// FlagTestFile also generates a test file
	FlagTestFile = "test-file"
)

// addWordFlag registers the repeatable --word flag.
func addWordFlag(fs *pflag.FlagSet, words *[]string, usage string) {
	fs.StringArrayVar(words, FlagWord, nil, usage+" (repeatable)")
}

// addVerboseFlag registers --verbose.
func addVerboseFlag(fs *pflag.FlagSet, verbose *bool) {
	fs.BoolVar(verbose, FlagVerbose, false, "Print every normalization step to stderr")
}
