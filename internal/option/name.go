package option

// Name identifies one openapi-zod-client template context option.
type Name string

// The closed set of option names.
const (
	NoWithAlias                                            Name = "noWithAlias"
	BaseURL                                                Name = "baseUrl"
	APIClientName                                          Name = "apiClientName"
	APIClientConstructorName                               Name = "apiClientConstructorName"
	IsErrorStatus                                          Name = "isErrorStatus"
	IsMainResponseStatus                                   Name = "isMainResponseStatus"
	ShouldExportAllSchemas                                 Name = "shouldExportAllSchemas"
	ShouldExportAllTypes                                   Name = "shouldExportAllTypes"
	IsMediaTypeAllowed                                     Name = "isMediaTypeAllowed"
	WithImplicitRequiredProps                              Name = "withImplicitRequiredProps"
	WithDeprecatedEndpoints                                Name = "withDeprecatedEndpoints"
	GroupStrategy                                          Name = "groupStrategy"
	ComplexityThreshold                                    Name = "complexityThreshold"
	DefaultStatusBehavior                                  Name = "defaultStatusBehavior"
	UseMainResponseDescriptionAsEndpointDefinitionFallback Name = "useMainResponseDescriptionAsEndpointDefinitionFallback"
)

// BooleansKey is the carrier key under which option forms submit a list of
// enabled boolean option names. It is never an option itself.
const BooleansKey = "booleans"

var names = []Name{
	NoWithAlias,
	BaseURL,
	APIClientName,
	APIClientConstructorName,
	IsErrorStatus,
	IsMainResponseStatus,
	ShouldExportAllSchemas,
	ShouldExportAllTypes,
	IsMediaTypeAllowed,
	WithImplicitRequiredProps,
	WithDeprecatedEndpoints,
	GroupStrategy,
	ComplexityThreshold,
	DefaultStatusBehavior,
	UseMainResponseDescriptionAsEndpointDefinitionFallback,
}

var kinds = map[Name]Kind{
	NoWithAlias:               KindBool,
	BaseURL:                   KindString,
	APIClientName:             KindString,
	APIClientConstructorName:  KindString,
	IsErrorStatus:             KindString,
	IsMainResponseStatus:      KindString,
	ShouldExportAllSchemas:    KindBool,
	ShouldExportAllTypes:      KindBool,
	IsMediaTypeAllowed:        KindString,
	WithImplicitRequiredProps: KindBool,
	WithDeprecatedEndpoints:   KindBool,
	GroupStrategy:             KindString,
	ComplexityThreshold:       KindNumber,
	DefaultStatusBehavior:     KindString,
	UseMainResponseDescriptionAsEndpointDefinitionFallback: KindBool,
}

// choices lists the accepted values of enumerated string options.
var choices = map[Name][]string{
	GroupStrategy:         {"none", "tag", "method", "tag-file", "method-file"},
	DefaultStatusBehavior: {"spec-compliant", "auto-correct"},
}

// Names returns every option name in canonical order.
func Names() []Name {
	out := make([]Name, len(names))
	copy(out, names)
	return out
}

// Known reports whether n belongs to the closed option set.
func (n Name) Known() bool {
	_, ok := kinds[n]
	return ok
}

// Kind returns the value kind the option expects. Unknown names report
// KindInvalid.
func (n Name) Kind() Kind {
	return kinds[n]
}

// Choices returns the accepted values of an enumerated option, or nil.
func (n Name) Choices() []string {
	return choices[n]
}

// rank orders names canonically; unknown names sort after every known one.
func (n Name) rank() int {
	for i, k := range names {
		if k == n {
			return i
		}
	}
	return len(names)
}
