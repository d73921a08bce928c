// Package invocation renders relevant options as a copy-pasteable
// openapi-zod-client command line.
package invocation

import (
	"strings"

	"github.com/thoreinstein/zodplay/internal/errors"
	"github.com/thoreinstein/zodplay/internal/option"
)

// Defaults used by Compose.
const (
	DefaultProgram = "pnpx openapi-zod-client"
	DefaultInput   = "./petstore.yaml"
)

// FlagTable maps every option that has a command-line flag to that flag.
// useMainResponseDescriptionAsEndpointDefinitionFallback is the only option
// without one.
var FlagTable = map[option.Name]string{
	option.NoWithAlias:               "--no-with-alias",
	option.BaseURL:                   "--base-url",
	option.APIClientName:             "--api-client-name",
	option.APIClientConstructorName:  "--api-client-constructor-name",
	option.IsErrorStatus:             "--error-expr",
	option.IsMainResponseStatus:      "--success-expr",
	option.ShouldExportAllSchemas:    "--export-schemas",
	option.ShouldExportAllTypes:      "--export-types",
	option.IsMediaTypeAllowed:        "--media-type-expr",
	option.WithImplicitRequiredProps: "--implicit-required",
	option.WithDeprecatedEndpoints:   "--with-deprecated",
	option.GroupStrategy:             "--group-strategy",
	option.ComplexityThreshold:       "--complexity-threshold",
	option.DefaultStatusBehavior:     "--default-status",
}

// Flag returns the command-line flag of n. It panics with an assertion
// failure when n has no flag: relevant options handed to the composer
// always come from the closed option set minus the playground-only option.
func Flag(n option.Name) string {
	flag, ok := FlagTable[n]
	if !ok {
		panic(errors.AssertionFailedf("option %q has no command-line flag", n))
	}
	return flag
}

// Composer builds command lines for a program and sample input.
type Composer struct {
	Program string
	Input   string
}

// Default is the composer used by Compose.
var Default = Composer{Program: DefaultProgram, Input: DefaultInput}

// Compose renders relevant with the default composer.
func Compose(outputPath string, relevant option.Record) string {
	return Default.Compose(outputPath, relevant)
}

// Compose renders
//
//	<program> <input> -o ./<outputPath>
//	     <flag>="<value>" ...
//
// with one flag per entry of relevant, in entry order.
func (c Composer) Compose(outputPath string, relevant option.Record) string {
	var sb strings.Builder
	sb.WriteString(c.Program)
	sb.WriteByte(' ')
	sb.WriteString(c.Input)
	sb.WriteString(" -o ./")
	sb.WriteString(outputPath)
	sb.WriteString("\n    ")
	for name, value := range relevant.All() {
		sb.WriteByte(' ')
		sb.WriteString(Flag(name))
		sb.WriteString(`="`)
		sb.WriteString(value.String())
		sb.WriteByte('"')
	}
	sb.WriteString("\n    ")
	return sb.String()
}

// Args returns the same invocation as an argument vector, for callers that
// execute rather than display it.
func (c Composer) Args(outputPath string, relevant option.Record) []string {
	args := append(strings.Fields(c.Program), c.Input, "-o", "./"+outputPath)
	for name, value := range relevant.All() {
		args = append(args, Flag(name)+"="+value.String())
	}
	return args
}
