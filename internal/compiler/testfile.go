package compiler

import (
	"fmt"
	"strings"

	"github.com/KromDaniel/dfagen/internal/automaton"
	"github.com/KromDaniel/dfagen/internal/codegen"
	"github.com/dave/jennifer/jen"
	"github.com/pkg/errors"
)

// TestFilePath returns the path of the test file generated next to output.
func TestFilePath(output string) string {
	return strings.TrimSuffix(output, ".go") + "_test.go"
}

// generateTestFile writes a table test asserting the verdict of every test
// word, as computed now by the automaton package.
func (c *Compiler) generateTestFile() error {
	path := TestFilePath(c.config.OutputFile)
	f := jen.NewFile(c.config.Package)
	f.HeaderComment("Code generated by dfagen. DO NOT EDIT.")

	ev := automaton.NewEvaluator(c.config.Automaton)
	cases := make([]jen.Code, 0, len(c.config.TestWords))
	for _, w := range c.config.TestWords {
		cases = append(cases, jen.Values(jen.Lit(w), jen.Lit(ev.Accept(w))))
	}

	testName := fmt.Sprintf("Test%sMatchString", c.config.Name)
	f.Func().Id(testName).Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
		jen.Id("tests").Op(":=").Index().Struct(
			jen.Id(codegen.InputName).String(),
			jen.Id("want").Bool(),
		).Values(cases...),
		jen.Line(),
		jen.For(jen.List(jen.Id("_"), jen.Id("tt")).Op(":=").Range().Id("tests")).Block(
			jen.If(
				jen.Id("got").Op(":=").Id(codegen.CompiledName(c.config.Name)).Dot("MatchString").Call(jen.Id("tt").Dot(codegen.InputName)),
				jen.Id("got").Op("!=").Id("tt").Dot("want"),
			).Block(
				jen.Id("t").Dot("Errorf").Call(
					jen.Lit("MatchString(%q) = %v, want %v"),
					jen.Id("tt").Dot(codegen.InputName), jen.Id("got"), jen.Id("tt").Dot("want"),
				),
			),
		),
	)

	if err := f.Save(path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	c.logger.Log("Wrote %s (%d cases)", path, len(cases))
	return formatFile(path)
}
