// Package ruleset loads form rule bindings from YAML or JSON files.
//
// A document carries display flags, initial form data and bindings:
//
//	options:
//	  showAfterBlur: true
//	initialFormData:
//	  val: [a, b]
//	  comparisonValue: 2
//	rules:
//	  - path: val
//	    ruleSet:
//	      - required
//	      - rule: listSize
//	        equalTo: {expr: "formData.comparisonValue"}
//	    dependantPaths: [comparisonValue]
//
// Parameters written as {expr: "..."} are CEL expressions over the variable
// formData. They are compiled by Parse and evaluated on every validation pass,
// so an expression error at runtime surfaces as a configuration error of the
// binding, not as a validation failure.
//
//	doc, err := ruleset.Load("signup.yaml")
//	if err != nil {
//		return err
//	}
//	f, err := form.New(doc.Options()...)
package ruleset
