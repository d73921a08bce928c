// Package validator provides the validation framework shared by options
// files and the playground file form.
//
// Validation never stops at the first problem: checks append [Issue]
// values to a [Result], which callers either report in full with a
// [Reporter] or collapse into a single error with [Result.Err].
//
//	result := &validator.Result{}
//	if name == "" {
//		result.AddError("name", "File name is required", nil)
//	}
//	return result.Err(ErrInvalidFile)
package validator
