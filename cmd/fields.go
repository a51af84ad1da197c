package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/marc-transform/rules"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List handled field groups and deliberately ignored codes",
	Long: `Fields prints the field groups the rule table handles, with their
paired/unique flags, followed by the codes the table deliberately
ignores. Useful when triaging records that carry unexpected fields.`,
	Run: runFields,
}

func runFields(cmd *cobra.Command, args []string) {
	// The transformer is only inspected, never run; no gateway needed.
	tr := rules.NewTransformer(nil, nil, nil, nil)

	fmt.Println("Handled field groups:")
	for _, r := range tr.FieldGroups() {
		var flags []string
		if r.Paired {
			flags = append(flags, "paired")
		}
		if r.Unique {
			flags = append(flags, "unique")
		}
		suffix := ""
		if len(flags) > 0 {
			suffix = " (" + strings.Join(flags, ", ") + ")"
		}
		fmt.Printf("  %s%s\n", strings.Join(r.Fields, " + "), suffix)
	}

	fmt.Println("\nIgnored codes:")
	for _, code := range tr.IgnoredCodes() {
		fmt.Printf("  %s\n", code)
	}
}
