package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	katachi "github.com/katachi-dev/katachi"
	"github.com/katachi-dev/katachi/descriptor"
	"github.com/katachi-dev/katachi/i18n"
)

var (
	schemaPath string
	lang       string
)

func main() {
	root := &cobra.Command{
		Use:           "katachi",
		Short:         "Validate JSON and YAML documents against katachi schema descriptors",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	vet := &cobra.Command{
		Use:   "vet [documents...]",
		Short: "Validate documents against a schema descriptor",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runVet,
	}
	vet.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema descriptor file (.json/.yaml)")
	vet.Flags().StringVar(&lang, "lang", "en", "message language (en/ja)")
	_ = vet.MarkFlagRequired("schema")
	root.AddCommand(vet)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runVet(cmd *cobra.Command, args []string) error {
	i18n.SetLanguage(lang)
	schema, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}
	s := katachi.New[any](schema.Check)

	okMark := color.New(color.FgGreen).SprintFunc()
	failMark := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	failed := 0
	for _, path := range args {
		res, err := vetDocument(s, path)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n", failMark("fail"), path, err)
			continue
		}
		if res.Success {
			fmt.Fprintf(cmd.OutOrStdout(), "%s   %s\n", okMark("ok"), path)
			continue
		}
		failed++
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", failMark("fail"), path)
		for _, it := range res.Issues {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s %s %s\n", dim(it.Path.Pointer()), it.Message, dim("["+it.Code+"]"))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
	}
	return nil
}

func loadSchema(path string) (katachi.AnySchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isYAML(path) {
		return descriptor.CompileYAML(data)
	}
	return descriptor.CompileJSON(data)
}

func vetDocument(s katachi.Schema[any], path string) (katachi.Result[any], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return katachi.Result[any]{}, err
	}
	if isYAML(path) {
		return katachi.SafeParseYAML(s, data), nil
	}
	return katachi.SafeParseJSON(s, data), nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
