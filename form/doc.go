// Package form loads question lists from YAML and asks them in order.
//
// A form uses the same envelope as the other firebird-suite schemas:
//
//	apiVersion: v1
//	kind: Form
//	name: setup
//	spec:
//	  questions:
//	    - name: port
//	      title: "Port:"
//	      type: int
//	      default: 8080
//	      min: 1
//	      max: 65535
//	    - name: config
//	      type: fileselect
//	      directory: ./configs
//	      filter: [yml, .yaml]
//	      output: relative
//
// Parsing is strict: unknown fields are rejected, and validation errors carry
// the field path and the line they were found on.
//
// Usage:
//
//	def, err := form.Parse("setup.perch.yml")
//	if err != nil {
//	    return err
//	}
//	answers, err := form.Run(input.New(nil), def, form.Defaults{})
//	if err != nil {
//	    return err
//	}
//	out, _ := answers.YAML()
package form
