package option

// Defaults holds the documented default of every option except
// apiClientConstructorName, which has none.
var Defaults = NewRecord(
	Entry{NoWithAlias, Bool(false)},
	Entry{BaseURL, String("")},
	Entry{APIClientName, String("api")},
	Entry{IsErrorStatus, String("!(status >= 200 && status < 300)")},
	Entry{IsMainResponseStatus, String("status >= 200 && status < 300")},
	Entry{ShouldExportAllSchemas, Bool(false)},
	Entry{ShouldExportAllTypes, Bool(false)},
	Entry{IsMediaTypeAllowed, String(`mediaType === "application/json"`)},
	Entry{WithImplicitRequiredProps, Bool(false)},
	Entry{WithDeprecatedEndpoints, Bool(false)},
	Entry{GroupStrategy, String("none")},
	Entry{ComplexityThreshold, Number(4)},
	Entry{DefaultStatusBehavior, String("spec-compliant")},
	Entry{UseMainResponseDescriptionAsEndpointDefinitionFallback, Bool(false)},
)

// Project reduces rec to the options worth showing: every name in booleans
// is first set to true, then an entry survives only if its value is truthy,
// its name is not BooleansKey, and it differs from its default. Options
// without a default survive whenever they are truthy.
//
// Falsy overrides are dropped even when they differ from the default; an
// explicit false never shows up in the projection.
//
// The result may hold options that have no CLI flag; pass it through
// Record.ForCommand before handing it to invocation.Compose.
func Project(rec Record, booleans []string) Record {
	return project(rec, booleans, Defaults)
}

func project(rec Record, booleans []string, defaults Record) Record {
	merged := rec.Clone()
	for _, b := range booleans {
		merged.Set(Name(b), Bool(true))
	}

	var out Record
	for _, e := range merged.entries {
		if !e.Value.Truthy() || e.Name == BooleansKey {
			continue
		}
		if def, ok := defaults.Get(e.Name); ok && def.Equal(e.Value) {
			continue
		}
		out.entries = append(out.entries, e)
	}
	return out
}

// Merge returns rec with the relevant options layered on top, so every
// boolean flag in booleans is stored as true. This is the record kept when
// the options form is saved.
func Merge(rec Record, booleans []string) Record {
	out := rec.Clone()
	for n, v := range Project(rec, booleans).All() {
		out.Set(n, v)
	}
	return out
}
