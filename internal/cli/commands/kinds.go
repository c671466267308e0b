package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapjc/pkg/token"
)

// KindInfo describes one token kind.
type KindInfo struct {
	Name     string `json:"name" yaml:"name"`
	Spelling string `json:"spelling,omitempty" yaml:"spelling,omitempty"`
	Tag      string `json:"tag" yaml:"tag"`
	Category string `json:"category" yaml:"category"`
}

func category(k token.Kind) string {
	switch {
	case k.IsLiteral():
		return "literal"
	case k.IsKeyword():
		return "keyword"
	case k.IsOperator():
		return "operator"
	}
	return "special"
}

// NewKindsCommand creates the kinds command.
func NewKindsCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List token kinds",
		Long:  `List every token kind with its spelling, payload tag and category.`,
		Example: `  leapjc kinds
  leapjc kinds --category keyword -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			r := cc.Renderer

			var kinds []KindInfo
			for _, k := range token.Kinds() {
				info := KindInfo{
					Name:     k.Name(),
					Spelling: k.Spelling(),
					Tag:      k.Tag().String(),
					Category: category(k),
				}
				if filter != "" && !strings.EqualFold(filter, info.Category) {
					continue
				}
				kinds = append(kinds, info)
			}

			if r.EffectiveMode().IsStructured() {
				return r.Encode(kinds)
			}
			r.Header(1, "token kinds")
			rows := make([][]any, len(kinds))
			for i, k := range kinds {
				rows[i] = []any{k.Name, k.Spelling, k.Tag, k.Category}
			}
			r.Table([]string{"Kind", "Spelling", "Tag", "Category"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "category", "", "Only list kinds of this category (keyword|operator|literal|special)")
	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"keyword", "operator", "literal", "special"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
